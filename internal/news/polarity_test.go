package news

import "testing"

func TestPolarityDirection(t *testing.T) {
	a := NewLexiconAnalyzer()

	cases := []struct {
		title string
		sign  int
	}{
		{"Sensex soars 800 points as banks rally on strong earnings", +1},
		{"Nifty logs record high, IT stocks surge", +1},
		{"Markets crash as selloff deepens, investors fear recession", -1},
		{"Rupee tumbles to fresh low amid global turmoil", -1},
		{"Quarterly results due next week for index heavyweights", 0},
		{"", 0},
	}

	for _, tc := range cases {
		got := a.Polarity(tc.title)
		switch {
		case tc.sign > 0 && got <= 0:
			t.Errorf("Polarity(%q) = %v, want > 0", tc.title, got)
		case tc.sign < 0 && got >= 0:
			t.Errorf("Polarity(%q) = %v, want < 0", tc.title, got)
		case tc.sign == 0 && got != 0:
			t.Errorf("Polarity(%q) = %v, want 0", tc.title, got)
		}
	}
}

func TestPolarityBounds(t *testing.T) {
	a := NewLexiconAnalyzer()

	titles := []string{
		"rally surge gains record bullish strong beats boost recovery",
		"slump crash falls bearish losses selloff plunge weak misses",
		"gains and losses traded evenly through a volatile rally",
	}
	for _, title := range titles {
		got := a.Polarity(title)
		if got < -1 || got > 1 {
			t.Errorf("Polarity(%q) = %v, outside [-1, 1]", title, got)
		}
	}

	if got := a.Polarity("rally surge gains record"); got != 1 {
		t.Errorf("all-positive title = %v, want 1", got)
	}
	if got := a.Polarity("crash slump losses"); got != -1 {
		t.Errorf("all-negative title = %v, want -1", got)
	}
}

func TestPolarityNegation(t *testing.T) {
	a := NewLexiconAnalyzer()

	if got := a.Polarity("markets do not rally"); got >= 0 {
		t.Errorf("negated positive = %v, want < 0", got)
	}
	if got := a.Polarity("no losses for index majors"); got <= 0 {
		t.Errorf("negated negative = %v, want > 0", got)
	}
}

func TestPolarityIntensifier(t *testing.T) {
	a := NewLexiconAnalyzer()

	plain := a.Polarity("banks rally while metals drop")
	boosted := a.Polarity("banks sharply rally while metals drop")
	if boosted <= plain {
		t.Errorf("intensified polarity %v not above plain %v", boosted, plain)
	}
}
