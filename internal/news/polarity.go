package news

import (
	"strings"
	"unicode"
)

// LexiconAnalyzer scores headline text with market-tuned word lists. Scores
// land in [-1, 1]: the net weight of positive words over all sentiment-bearing
// words found.
type LexiconAnalyzer struct {
	positive     map[string]bool
	negative     map[string]bool
	negators     map[string]bool
	intensifiers map[string]bool
}

// NewLexiconAnalyzer creates an analyzer with the default word lists.
func NewLexiconAnalyzer() *LexiconAnalyzer {
	return &LexiconAnalyzer{
		positive:     loadPositiveWords(),
		negative:     loadNegativeWords(),
		negators:     loadNegators(),
		intensifiers: loadIntensifiers(),
	}
}

// Polarity scores one piece of text. Text with no sentiment-bearing words
// scores 0.
func (a *LexiconAnalyzer) Polarity(text string) float64 {
	words := tokenize(strings.ToLower(text))

	posWeight, negWeight := 0.0, 0.0
	for i, w := range words {
		pos, neg := a.positive[w], a.negative[w]
		if !pos && !neg {
			continue
		}

		weight := 1.0
		if i > 0 && a.intensifiers[words[i-1]] {
			weight = 1.5
		}
		// A negator within the two preceding words flips the word's direction.
		if (i > 0 && a.negators[words[i-1]]) || (i > 1 && a.negators[words[i-2]]) {
			pos, neg = neg, pos
		}

		if pos {
			posWeight += weight
		} else {
			negWeight += weight
		}
	}

	total := posWeight + negWeight
	if total == 0 {
		return 0
	}
	return (posWeight - negWeight) / total
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func loadPositiveWords() map[string]bool {
	return wordSet(
		"rally", "rallies", "surge", "surges", "soars", "soar", "jumps", "jump",
		"gains", "gain", "gainers", "record", "bullish", "upbeat", "optimism",
		"optimistic", "strong", "strength", "beats", "beat", "boost", "boosts",
		"recovery", "recovers", "rebound", "rebounds", "upgrade", "upgrades",
		"profit", "profits", "growth", "advances", "advance", "outperform",
		"outperforms", "buying", "climbs", "climb", "positive", "high", "highs",
		"momentum", "breakout", "winners", "rises", "rise", "rising", "up",
	)
}

func loadNegativeWords() map[string]bool {
	return wordSet(
		"slump", "slumps", "crash", "crashes", "falls", "fall", "falling",
		"bearish", "losses", "loss", "losers", "selloff", "plunge", "plunges",
		"plummets", "weak", "weakness", "misses", "miss", "downgrade",
		"downgrades", "fears", "fear", "concerns", "concern", "pressure",
		"decline", "declines", "drops", "drop", "tumbles", "tumble",
		"slowdown", "recession", "cuts", "cut", "warning", "warns", "low",
		"lows", "negative", "volatile", "turmoil", "rout", "sinks", "sink",
		"down", "crisis", "slides", "slide",
	)
}

func loadNegators() map[string]bool {
	return wordSet("not", "no", "never", "without", "ends", "halts", "despite")
}

func loadIntensifiers() map[string]bool {
	return wordSet("sharply", "strongly", "heavily", "massively", "steeply", "deeply", "very")
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
