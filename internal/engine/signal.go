package engine

import (
	"fmt"

	"smartsignals/internal/types"
)

// MarketInput is the externally-fetched data one signal is built from.
// Sentiment is market-wide and shared across underlyings; the price series is
// per-underlying.
type MarketInput struct {
	Latest        *float64
	Bars          []types.Bar
	PriceOK       bool
	Sentiment     float64
	NewsAvailable bool
}

// BuildSignal runs the full per-underlying pipeline: indicators, bias,
// alignment, sureness, policy, and (for actionable calls) targets and strike
// selection. Missing data degrades field by field; the result is always a
// fully-formed signal.
func BuildSignal(u types.Underlying, in MarketInput) types.Signal {
	ind := ComputeIndicators(in.Bars)
	bias := ClassifyBias(in.Sentiment)
	conf := Confirmations(bias, ind.Trend, ind.Momentum)
	sure := round1(Sureness(in.Sentiment, conf))
	dec := Decide(bias, conf, sure)

	sig := types.Signal{
		Symbol:     u.Symbol,
		Label:      u.Label,
		Step:       u.Step,
		Price:      in.Latest,
		Sureness:   sure,
		Bias:       bias,
		Trend:      ind.Trend,
		Momentum:   ind.Momentum,
		Action:     dec.Action,
		Reason:     dec.Reason,
		Call:       string(types.NoTrade),
		Volatility: ind.VolatilityPct,
		Indicators: ind,
		Degraded:   !in.PriceOK || !in.NewsAvailable || ind.RSI == nil,
	}

	if !dec.Action.Actionable() {
		return sig
	}

	short := dec.Action.Short()
	tg := ComputeTargets(in.Latest, ind.ATR, short)
	sig.Target = tg.Target
	sig.StopLoss = tg.StopLoss
	sig.EarningPotential = round1(tg.EarningPotential)
	if tg.Volatility != nil {
		sig.Volatility = tg.Volatility
	}

	side := OptionSide(short)
	sig.OptionType = &side
	if in.Latest != nil {
		strike := RoundToStep(*in.Latest, u.Step)
		sig.Strike = &strike
		sig.Call = fmt.Sprintf("%s %d %s", u.Symbol, strike, side)
	} else {
		// Actionable call without an entry price: direction is known but the
		// strike cannot be picked.
		sig.Call = fmt.Sprintf("%s %s", u.Symbol, side)
	}
	return sig
}
