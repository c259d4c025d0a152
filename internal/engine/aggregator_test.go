package engine

import (
	"testing"
	"time"

	"smartsignals/internal/types"
)

func TestPrimaryPrefersActionable(t *testing.T) {
	signals := []types.Signal{
		{Symbol: "NIFTY", Action: types.NoTrade, Sureness: 40},
		{Symbol: "BANKNIFTY", Action: types.StrongBuy, Sureness: 92},
	}
	if got := PrimaryIndex(signals); got != 1 {
		t.Errorf("primary = %d, want 1 (the actionable signal)", got)
	}
}

func TestPrimaryActionableBeatsHigherSurenessNoTrade(t *testing.T) {
	signals := []types.Signal{
		{Symbol: "NIFTY", Action: types.NoTrade, Sureness: 99},
		{Symbol: "BANKNIFTY", Action: types.Buy, Sureness: 81},
	}
	if got := PrimaryIndex(signals); got != 1 {
		t.Errorf("primary = %d, want the actionable signal regardless of sureness", got)
	}
}

func TestPrimaryFallsBackToMaxSureness(t *testing.T) {
	signals := []types.Signal{
		{Symbol: "NIFTY", Action: types.NoTrade, Sureness: 30},
		{Symbol: "BANKNIFTY", Action: types.NoTrade, Sureness: 45},
	}
	if got := PrimaryIndex(signals); got != 1 {
		t.Errorf("primary = %d, want 1 (max sureness)", got)
	}
}

func TestPrimaryTieKeepsFirst(t *testing.T) {
	signals := []types.Signal{
		{Symbol: "NIFTY", Action: types.Buy, Sureness: 85},
		{Symbol: "BANKNIFTY", Action: types.Buy, Sureness: 85},
	}
	if got := PrimaryIndex(signals); got != 0 {
		t.Errorf("primary = %d, want 0 (first occurrence wins ties)", got)
	}

	signals = []types.Signal{
		{Symbol: "NIFTY", Action: types.NoTrade, Sureness: 20},
		{Symbol: "BANKNIFTY", Action: types.NoTrade, Sureness: 20},
	}
	if got := PrimaryIndex(signals); got != 0 {
		t.Errorf("fallback primary = %d, want 0", got)
	}
}

func TestAggregateMirrorsPrimary(t *testing.T) {
	strike := int64(24850)
	side := "CE"
	signals := []types.Signal{
		{
			Symbol:     "NIFTY",
			Action:     types.StrongBuy,
			Reason:     "multi-signal alignment confirmed",
			Sureness:   92,
			Call:       "NIFTY 24850 CE",
			Price:      ptr(24830.0),
			Bias:       types.Bullish,
			Strike:     &strike,
			OptionType: &side,
			Degraded:   false,
		},
		{Symbol: "BANKNIFTY", Action: types.NoTrade, Sureness: 40, Call: "NO TRADE"},
	}
	news := []types.Headline{{Source: "MoneyControl", Title: "Sensex rallies"}}

	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	p := Aggregate("GF SmartSignals", signals, news, 0.8, now)

	if p.Action != types.StrongBuy || p.Policy != "STRONG BUY" {
		t.Errorf("action/policy = %q/%q", p.Action, p.Policy)
	}
	if p.Sureness != 92 || p.Call != "NIFTY 24850 CE" {
		t.Errorf("sureness/call = %v/%q", p.Sureness, p.Call)
	}
	if p.Sentiment != 0.8 || p.Bias != types.Bullish {
		t.Errorf("sentiment/bias = %v/%q", p.Sentiment, p.Bias)
	}
	if p.Timestamp != "2026-09-01T10:30:00Z" {
		t.Errorf("timestamp = %q", p.Timestamp)
	}
	if len(p.Signals) != 2 {
		t.Errorf("signals = %d, want 2", len(p.Signals))
	}
	if len(p.News) != 1 {
		t.Errorf("news = %d, want 1", len(p.News))
	}
}

func TestAggregateNoSignals(t *testing.T) {
	p := Aggregate("GF SmartSignals", nil, nil, 0, time.Now())
	if p.Action != types.NoTrade {
		t.Errorf("action = %q, want NO TRADE", p.Action)
	}
}
