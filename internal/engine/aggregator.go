package engine

import (
	"time"

	"smartsignals/internal/types"
)

// PrimaryIndex selects the signal to report: the actionable signal with the
// highest sureness, or the highest-sureness signal overall when none is
// actionable. Ties keep the earliest entry, so the configured underlying
// order doubles as the tie-break.
func PrimaryIndex(signals []types.Signal) int {
	best := -1
	for i, s := range signals {
		if !s.Action.Actionable() {
			continue
		}
		if best == -1 || s.Sureness > signals[best].Sureness {
			best = i
		}
	}
	if best >= 0 {
		return best
	}
	for i, s := range signals {
		if best == -1 || s.Sureness > signals[best].Sureness {
			best = i
		}
	}
	return best
}

// Aggregate mirrors the primary signal into the reported payload and attaches
// the full per-underlying breakdown.
func Aggregate(name string, signals []types.Signal, news []types.Headline, sentiment float64, now time.Time) *types.Payload {
	p := &types.Payload{
		Name:      name,
		Sentiment: sentiment,
		Timestamp: now.UTC().Format(time.RFC3339),
		News:      news,
		Signals:   signals,
	}
	if len(signals) == 0 {
		p.Action = types.NoTrade
		p.Policy = string(types.NoTrade)
		p.Call = string(types.NoTrade)
		p.Bias = types.Unknown
		p.Reason = "no underlyings configured"
		return p
	}

	prim := signals[PrimaryIndex(signals)]
	p.Policy = string(prim.Action)
	p.Sureness = prim.Sureness
	p.Call = prim.Call
	p.Action = prim.Action
	p.Reason = prim.Reason
	p.Price = prim.Price
	p.Bias = prim.Bias
	p.Target = prim.Target
	p.StopLoss = prim.StopLoss
	p.EarningPotential = prim.EarningPotential
	p.Volatility = prim.Volatility
	p.Degraded = prim.Degraded
	p.Indicators = prim.Indicators
	return p
}
