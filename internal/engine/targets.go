package engine

import "math"

const (
	rewardRiskRatio = 2.0
	stopATRMultiple = 1.0

	// Percentage fallbacks when no ATR is available.
	fallbackTargetPct = 0.0125
	fallbackStopPct   = 0.0075
)

// Targets holds the price levels derived for an actionable signal.
type Targets struct {
	Target           *float64
	StopLoss         *float64
	Volatility       *float64
	EarningPotential float64
}

// ComputeTargets derives profit target and stop loss from the entry price and
// ATR. Without an ATR it falls back to fixed percentages and leaves
// volatility unset. Without a price there is nothing to compute.
func ComputeTargets(price, atr *float64, short bool) Targets {
	if price == nil {
		return Targets{}
	}
	p := *price

	var t Targets
	if atr == nil || *atr <= 0 {
		if short {
			t.Target = ptr(p * (1 - fallbackTargetPct))
			t.StopLoss = ptr(p * (1 + fallbackStopPct))
		} else {
			t.Target = ptr(p * (1 + fallbackTargetPct))
			t.StopLoss = ptr(p * (1 - fallbackStopPct))
		}
	} else {
		a := *atr
		if short {
			t.Target = ptr(p - a*rewardRiskRatio)
			t.StopLoss = ptr(p + a*stopATRMultiple)
		} else {
			t.Target = ptr(p + a*rewardRiskRatio)
			t.StopLoss = ptr(p - a*stopATRMultiple)
		}
		if p > 0 {
			t.Volatility = ptr(a / p * 100)
		}
	}

	if p > 0 {
		t.EarningPotential = math.Abs(*t.Target-p) / p * 100
	}
	return t
}

// RoundToStep rounds a price to the nearest strike step.
func RoundToStep(price float64, step int64) int64 {
	if step <= 0 {
		return int64(math.Round(price))
	}
	return int64(math.Round(price/float64(step))) * step
}

// OptionSide maps trade direction to the option type: puts for shorts,
// calls for longs.
func OptionSide(short bool) string {
	if short {
		return "PE"
	}
	return "CE"
}

func ptr(v float64) *float64 {
	return &v
}
