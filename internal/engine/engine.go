package engine

import (
	"context"
	"sync/atomic"
	"time"

	"smartsignals/internal/interfaces"
	"smartsignals/internal/logger"
	"smartsignals/internal/metrics"
	"smartsignals/internal/store"
	"smartsignals/internal/trace"
	"smartsignals/internal/types"
)

// Engine runs the full computation cycle: headlines -> aggregate sentiment,
// price series -> indicators, then the per-underlying signal pipeline and the
// aggregation step. It holds the single piece of shared mutable state in the
// system, the last-known-result cell.
type Engine struct {
	cfg      *store.Config
	prices   interfaces.PriceProvider
	news     interfaces.HeadlineProvider
	polarity interfaces.PolarityAnalyzer
	rec      *metrics.Recorder

	last atomic.Pointer[types.Payload]
}

// New creates an engine. rec may be nil when metrics are not wanted (tests).
func New(cfg *store.Config, prices interfaces.PriceProvider, news interfaces.HeadlineProvider, polarity interfaces.PolarityAnalyzer, rec *metrics.Recorder) *Engine {
	e := &Engine{
		cfg:      cfg,
		prices:   prices,
		news:     news,
		polarity: polarity,
		rec:      rec,
	}
	e.last.Store(Placeholder(cfg.Name))
	return e
}

// Placeholder is the payload served before the first cycle completes.
func Placeholder(name string) *types.Payload {
	return &types.Payload{
		Name:      name,
		Policy:    string(types.NoTrade),
		Call:      string(types.NoTrade),
		Action:    types.NoTrade,
		Reason:    "warming up",
		Bias:      types.Unknown,
		Degraded:  true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		News:      []types.Headline{},
		Signals:   []types.Signal{},
		Indicators: types.IndicatorSet{
			Trend:    types.Unknown,
			Momentum: types.Unknown,
		},
	}
}

// Compute runs one full cycle and atomically publishes the result as the new
// last-known payload. Collaborator failures degrade the result; they never
// abort the cycle.
func (e *Engine) Compute(ctx context.Context) *types.Payload {
	ctx, span := trace.StartSpan(ctx, "signal-cycle")
	defer span.End()
	start := time.Now()

	headlines, sentiment, newsAvailable := e.marketSentiment(ctx)

	signals := make([]types.Signal, 0, len(e.cfg.Underlyings))
	for _, u := range e.cfg.Underlyings {
		latest, bars, ok := e.prices.Series(ctx, u)
		if !ok {
			logger.Degraded(ctx, u.Symbol, "price fetch failed")
			if e.rec != nil {
				e.rec.RecordFetchError("price")
			}
		}

		sig := BuildSignal(u, MarketInput{
			Latest:        latest,
			Bars:          bars,
			PriceOK:       ok,
			Sentiment:     sentiment,
			NewsAvailable: newsAvailable,
		})
		logger.Decision(ctx, sig.Symbol, string(sig.Action), sig.Sureness, sig.Reason,
			"bias", string(sig.Bias), "trend", string(sig.Trend), "momentum", string(sig.Momentum))
		if e.rec != nil {
			e.rec.RecordSignal(sig.Symbol, sig.Sureness, sig.Price, sig.Degraded)
		}
		signals = append(signals, sig)
	}

	payload := Aggregate(e.cfg.Name, signals, headlines, sentiment, time.Now())
	e.last.Store(payload)

	if e.rec != nil {
		e.rec.RecordCycle(time.Since(start).Seconds())
	}
	logger.Info(ctx, "Cycle completed",
		"action", string(payload.Action),
		"sureness", payload.Sureness,
		"sentiment", payload.Sentiment,
		"degraded", payload.Degraded,
		"duration_ms", time.Since(start).Milliseconds())
	return payload
}

// Last returns the most recently published payload. Readers may see a stale
// value while a newer computation is in flight; they never see a partial one.
func (e *Engine) Last() *types.Payload {
	return e.last.Load()
}

// marketSentiment fetches headlines and averages their polarity. No headlines
// means sentiment is unavailable: score 0, available false.
func (e *Engine) marketSentiment(ctx context.Context) ([]types.Headline, float64, bool) {
	ctx, span := trace.StartSpan(ctx, "market-sentiment")
	defer span.End()

	headlines := e.news.Headlines(ctx)
	if len(headlines) == 0 {
		logger.Warn(ctx, "No headlines available, sentiment unavailable")
		if e.rec != nil {
			e.rec.RecordFetchError("news")
		}
		return []types.Headline{}, 0, false
	}

	sum := 0.0
	for _, h := range headlines {
		sum += e.polarity.Polarity(h.Title)
	}
	avg := sum / float64(len(headlines))
	logger.Info(ctx, "Aggregate sentiment computed", "headlines", len(headlines), "sentiment", avg)
	return headlines, avg, true
}
