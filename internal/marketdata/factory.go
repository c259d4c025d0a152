package marketdata

import (
	"context"
	"os"

	"smartsignals/internal/interfaces"
	"smartsignals/internal/logger"
	"smartsignals/internal/store"
)

// NewProvider selects the price provider for the configured data source.
// KITE without credentials degrades to YAHOO so a missing .env never takes
// the service down.
func NewProvider(ctx context.Context, cfg *store.Config) interfaces.PriceProvider {
	switch cfg.DataSource {
	case "KITE":
		apiKey := os.Getenv("KITE_API_KEY")
		accessToken := os.Getenv("KITE_ACCESS_TOKEN")
		if apiKey == "" || accessToken == "" {
			logger.Warn(ctx, "KITE data source configured without credentials, using Yahoo")
			return NewYahooProvider(cfg)
		}
		logger.Info(ctx, "Using Kite historical data")
		return NewKiteProvider(apiKey, accessToken, cfg.LookbackDays, cfg.Interval)
	case "YAHOO":
		logger.Info(ctx, "Using Yahoo Finance chart data")
		return NewYahooProvider(cfg)
	default:
		logger.Info(ctx, "Using synthetic price data")
		return NewStaticProvider(cfg.LookbackDays)
	}
}
