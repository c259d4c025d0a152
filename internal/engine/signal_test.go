package engine

import (
	"testing"

	"smartsignals/internal/types"
)

var nifty = types.Underlying{Symbol: "NIFTY", Label: "NIFTY 50", Step: 50}

func TestBuildSignalStrongBuy(t *testing.T) {
	sig := BuildSignal(nifty, MarketInput{
		Latest:        ptr(24830.0),
		Bars:          trendingBars(60, 24770, 1),
		PriceOK:       true,
		Sentiment:     0.8,
		NewsAvailable: true,
	})

	// |0.8|*40 + 20 + 40 = 92.
	if sig.Sureness != 92.0 {
		t.Fatalf("sureness = %v, want 92", sig.Sureness)
	}
	if sig.Action != types.StrongBuy {
		t.Fatalf("action = %q, want STRONG BUY", sig.Action)
	}
	if sig.Strike == nil || *sig.Strike != 24850 {
		t.Errorf("strike = %v, want 24850", sig.Strike)
	}
	if sig.OptionType == nil || *sig.OptionType != "CE" {
		t.Errorf("option type = %v, want CE", sig.OptionType)
	}
	if sig.Call != "NIFTY 24850 CE" {
		t.Errorf("call = %q, want 'NIFTY 24850 CE'", sig.Call)
	}
	if sig.Target == nil || sig.StopLoss == nil {
		t.Error("actionable signal must carry targets")
	}
	if sig.Degraded {
		t.Error("healthy inputs must not be degraded")
	}
}

func TestBuildSignalBearish(t *testing.T) {
	sig := BuildSignal(types.Underlying{Symbol: "BANKNIFTY", Label: "NIFTY BANK", Step: 100}, MarketInput{
		Latest:        ptr(52861.0),
		Bars:          trendingBars(60, 52921, -1),
		PriceOK:       true,
		Sentiment:     -0.9,
		NewsAvailable: true,
	})

	if sig.Action != types.StrongSell {
		t.Fatalf("action = %q, want STRONG SELL", sig.Action)
	}
	if sig.OptionType == nil || *sig.OptionType != "PE" {
		t.Errorf("option type = %v, want PE", sig.OptionType)
	}
	if sig.Strike == nil || *sig.Strike != 52900 {
		t.Errorf("strike = %v, want 52900", sig.Strike)
	}
	if sig.Call != "BANKNIFTY 52900 PE" {
		t.Errorf("call = %q", sig.Call)
	}
}

func TestBuildSignalNoTradeHasNoStrike(t *testing.T) {
	sig := BuildSignal(nifty, MarketInput{
		Latest:        ptr(24830.0),
		Bars:          trendingBars(60, 24770, 1),
		PriceOK:       true,
		Sentiment:     0.05,
		NewsAvailable: true,
	})

	if sig.Action != types.NoTrade {
		t.Fatalf("action = %q, want NO TRADE", sig.Action)
	}
	if sig.Reason != "sentiment neutral" {
		t.Errorf("reason = %q", sig.Reason)
	}
	if sig.Strike != nil || sig.OptionType != nil {
		t.Error("NO TRADE must not carry strike or option type")
	}
	if sig.Call != "NO TRADE" {
		t.Errorf("call = %q, want 'NO TRADE'", sig.Call)
	}
	if sig.Target != nil || sig.StopLoss != nil {
		t.Error("NO TRADE must not carry targets")
	}
}

func TestBuildSignalDegradedWhenNewsUnavailable(t *testing.T) {
	sig := BuildSignal(nifty, MarketInput{
		Latest:        ptr(24830.0),
		Bars:          trendingBars(60, 24770, 1),
		PriceOK:       true,
		Sentiment:     0,
		NewsAvailable: false,
	})

	if !sig.Degraded {
		t.Error("missing headlines must degrade the signal")
	}
	if sig.Action != types.NoTrade || sig.Reason != "sentiment neutral" {
		t.Errorf("no-news call = %q (%q), want NO TRADE via neutral guard", sig.Action, sig.Reason)
	}
}

func TestBuildSignalDegradedWhenPriceMissing(t *testing.T) {
	sig := BuildSignal(nifty, MarketInput{
		Latest:        nil,
		Bars:          nil,
		PriceOK:       false,
		Sentiment:     0.8,
		NewsAvailable: true,
	})

	if !sig.Degraded {
		t.Error("failed price fetch must degrade the signal")
	}
	if sig.Price != nil || sig.Target != nil || sig.StopLoss != nil || sig.Strike != nil {
		t.Error("price-dependent fields must be nil without price data")
	}
	if sig.Trend != types.Unknown || sig.Momentum != types.Unknown {
		t.Errorf("stances = %v/%v, want UNKNOWN/UNKNOWN for an absent series", sig.Trend, sig.Momentum)
	}
	// Absent technicals cannot confirm, so the alignment guard fires.
	if sig.Action != types.NoTrade || sig.Reason != "trend/momentum not aligned" {
		t.Errorf("call = %q (%q)", sig.Action, sig.Reason)
	}
}

func TestBuildSignalDegradedWhenRSIMissing(t *testing.T) {
	// Enough bars for nothing: RSI nil forces degraded even with price and
	// news both healthy.
	sig := BuildSignal(nifty, MarketInput{
		Latest:        ptr(24830.0),
		Bars:          flatBars(10, 24830),
		PriceOK:       true,
		Sentiment:     0.5,
		NewsAvailable: true,
	})

	if sig.Indicators.RSI != nil {
		t.Fatal("expected nil RSI from a 10-bar series")
	}
	if !sig.Degraded {
		t.Error("nil RSI must degrade the signal")
	}
}

func TestBuildSignalActionableWithoutPrice(t *testing.T) {
	// Strong sentiment and aligned technicals, then the price fetch fails on
	// a later cycle: price-dependent fields go nil but the policy still runs.
	bars := trendingBars(60, 24770, 1)
	sig := BuildSignal(nifty, MarketInput{
		Latest:        nil,
		Bars:          bars,
		PriceOK:       false,
		Sentiment:     0.8,
		NewsAvailable: true,
	})

	if sig.Action != types.StrongBuy {
		t.Fatalf("action = %q, want STRONG BUY from surviving series", sig.Action)
	}
	if sig.Strike != nil || sig.Target != nil || sig.StopLoss != nil {
		t.Error("no entry price: strike and targets must be nil")
	}
	if sig.OptionType == nil || *sig.OptionType != "CE" {
		t.Errorf("option type = %v, want CE", sig.OptionType)
	}
	if !sig.Degraded {
		t.Error("failed price fetch must degrade the signal")
	}
}
