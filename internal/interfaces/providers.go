package interfaces

import (
	"context"

	"smartsignals/internal/types"
)

// PriceProvider supplies the OHLC history for one underlying. A failed fetch
// is reported as ok=false with nil results, never as an error: the engine
// treats missing data as a degraded condition, not a fault.
type PriceProvider interface {
	Series(ctx context.Context, u types.Underlying) (latest *float64, bars []types.Bar, ok bool)
}

// HeadlineProvider collects current market headlines. An empty slice means
// the news feed is unavailable.
type HeadlineProvider interface {
	Headlines(ctx context.Context) []types.Headline
}

// PolarityAnalyzer scores a piece of text in [-1, 1].
type PolarityAnalyzer interface {
	Polarity(text string) float64
}
