package engine

import "smartsignals/internal/types"

// biasThreshold is the symmetric cutoff on aggregate sentiment polarity.
const biasThreshold = 0.20

// ClassifyBias maps the aggregate sentiment score to a directional bias.
// The boundary values land on the directional side.
func ClassifyBias(sentiment float64) types.Stance {
	switch {
	case sentiment >= biasThreshold:
		return types.Bullish
	case sentiment <= -biasThreshold:
		return types.Bearish
	default:
		return types.Neutral
	}
}
