package engine

import (
	"math"

	"smartsignals/internal/types"
)

const (
	surenessBase          = 20.0
	surenessSentimentSpan = 40.0
	surenessConfirmSpan   = 40.0
)

// Confirmations counts how many of trend and momentum agree with the
// sentiment bias. A neutral bias has nothing to confirm.
func Confirmations(bias, trend, momentum types.Stance) int {
	if bias == types.Neutral || bias == types.Unknown {
		return 0
	}
	n := 0
	if trend == bias {
		n++
	}
	if momentum == bias {
		n++
	}
	return n
}

// Sureness blends sentiment magnitude and technical confirmation into a
// 0-100 confidence score: a floor of 20, up to 40 points from sentiment
// strength, up to 40 from full two-of-two confirmation.
func Sureness(sentiment float64, confirmations int) float64 {
	mag := math.Min(math.Abs(sentiment), 1.0)
	s := surenessBase + mag*surenessSentimentSpan + float64(confirmations)/2.0*surenessConfirmSpan
	return clamp(s, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round1 rounds to one decimal for reporting.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
