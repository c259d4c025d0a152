package engine

import (
	"math"

	"smartsignals/internal/ta"
	"smartsignals/internal/types"
)

const (
	smaFastWindow = 20
	smaSlowWindow = 50
	rsiPeriod     = 14
	atrPeriod     = 14

	rsiBullish = 60.0
	rsiBearish = 40.0
)

// ComputeIndicators derives the full indicator set from a price series.
// Everything is recomputed from the raw bars on each call; indicators whose
// window exceeds the available history come back nil.
func ComputeIndicators(bars []types.Bar) types.IndicatorSet {
	if len(bars) == 0 {
		return types.IndicatorSet{Trend: types.Unknown, Momentum: types.Unknown}
	}

	closes := make([]float64, len(bars))
	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
		highs[i] = b.High
		lows[i] = b.Low
	}
	last := closes[len(closes)-1]

	set := types.IndicatorSet{
		SMA20: optional(ta.SMA(closes, smaFastWindow)),
		SMA50: optional(ta.SMA(closes, smaSlowWindow)),
		RSI:   optional(ta.RSI(closes, rsiPeriod)),
		ATR:   optional(ta.ATR(highs, lows, closes, atrPeriod)),
	}

	if set.ATR != nil && last > 0 {
		v := *set.ATR / last * 100
		set.VolatilityPct = &v
	}

	set.Trend = classifyTrend(last, set.SMA20, set.SMA50)
	set.Momentum = classifyMomentum(set.RSI)
	return set
}

func classifyTrend(last float64, sma20, sma50 *float64) types.Stance {
	if sma20 == nil || sma50 == nil {
		return types.Neutral
	}
	switch {
	case last > *sma50 && *sma20 > *sma50:
		return types.Bullish
	case last < *sma50 && *sma20 < *sma50:
		return types.Bearish
	default:
		return types.Neutral
	}
}

func classifyMomentum(rsi *float64) types.Stance {
	if rsi == nil {
		return types.Neutral
	}
	switch {
	case *rsi >= rsiBullish:
		return types.Bullish
	case *rsi <= rsiBearish:
		return types.Bearish
	default:
		return types.Neutral
	}
}

// optional converts a NaN sentinel into a nil pointer so JSON encodes absent
// indicators as null rather than zero.
func optional(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
