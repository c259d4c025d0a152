package marketdata

import (
	"context"
	"time"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"smartsignals/internal/interfaces"
	"smartsignals/internal/logger"
	"smartsignals/internal/types"
)

// KiteProvider fetches OHLC history from the Zerodha Kite historical-data
// API. Requires valid API credentials and per-underlying instrument tokens.
type KiteProvider struct {
	kc           *kiteconnect.Client
	lookbackDays int
	interval     string
}

var _ interfaces.PriceProvider = (*KiteProvider)(nil)

// NewKiteProvider creates a Kite-backed provider.
func NewKiteProvider(apiKey, accessToken string, lookbackDays int, interval string) *KiteProvider {
	kc := kiteconnect.New(apiKey)
	kc.SetAccessToken(accessToken)
	return &KiteProvider{
		kc:           kc,
		lookbackDays: lookbackDays,
		interval:     kiteInterval(interval),
	}
}

// kiteInterval maps the config interval notation to Kite's.
func kiteInterval(interval string) string {
	switch interval {
	case "1m":
		return "minute"
	case "5m":
		return "5minute"
	case "15m":
		return "15minute"
	case "30m":
		return "30minute"
	case "1h":
		return "60minute"
	case "1d":
		return "day"
	default:
		return "15minute"
	}
}

// Series fetches the OHLC history for one underlying via its instrument
// token.
func (p *KiteProvider) Series(ctx context.Context, u types.Underlying) (*float64, []types.Bar, bool) {
	if u.KiteToken == 0 {
		logger.Warn(ctx, "No Kite instrument token configured", "symbol", u.Symbol)
		return nil, nil, false
	}

	to := time.Now()
	from := to.AddDate(0, 0, -p.lookbackDays)

	candles, err := p.kc.GetHistoricalData(int(u.KiteToken), p.interval, from, to, false, false)
	if err != nil {
		logger.Warn(ctx, "Kite historical fetch failed", "symbol", u.Symbol, "error", err)
		return nil, nil, false
	}
	if len(candles) == 0 {
		logger.Warn(ctx, "Kite returned no candles", "symbol", u.Symbol)
		return nil, nil, false
	}

	bars := make([]types.Bar, 0, len(candles))
	for _, c := range candles {
		bars = append(bars, types.Bar{
			Ts:    c.Date.Time.Unix(),
			Open:  c.Open,
			High:  c.High,
			Low:   c.Low,
			Close: c.Close,
		})
	}

	latest := bars[len(bars)-1].Close
	return &latest, bars, true
}
