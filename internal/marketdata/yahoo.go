package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"smartsignals/internal/api"
	"smartsignals/internal/interfaces"
	"smartsignals/internal/logger"
	"smartsignals/internal/store"
	"smartsignals/internal/types"
)

// YahooProvider fetches intraday OHLC history from the Yahoo Finance chart
// API. Any failure is reported as unavailability, never as an error.
type YahooProvider struct {
	client    *api.Client
	dataRange string
	interval  string
}

var _ interfaces.PriceProvider = (*YahooProvider)(nil)

// NewYahooProvider creates a provider for the configured lookback window.
func NewYahooProvider(cfg *store.Config) *YahooProvider {
	client := api.NewClient(
		api.WithBaseURL("https://query1.finance.yahoo.com"),
		api.WithTimeout(20*time.Second),
		api.WithLogging(true),
	)
	return newYahooProvider(client, fmt.Sprintf("%dd", cfg.LookbackDays), cfg.Interval)
}

func newYahooProvider(client *api.Client, dataRange, interval string) *YahooProvider {
	return &YahooProvider{
		client:    client,
		dataRange: dataRange,
		interval:  interval,
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open  []*float64 `json:"open"`
					High  []*float64 `json:"high"`
					Low   []*float64 `json:"low"`
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error interface{} `json:"error"`
	} `json:"chart"`
}

// Series fetches the OHLC history for one underlying.
func (p *YahooProvider) Series(ctx context.Context, u types.Underlying) (*float64, []types.Bar, bool) {
	symbol := u.Yahoo
	if symbol == "" {
		symbol = u.Symbol
	}

	path := fmt.Sprintf("/v8/finance/chart/%s?interval=%s&range=%s",
		url.PathEscape(symbol), url.QueryEscape(p.interval), url.QueryEscape(p.dataRange))

	req := api.NewRequest(http.MethodGet, path).WithContext(ctx)
	for k, v := range api.YahooFinanceHeaders() {
		req.WithHeader(k, v)
	}

	resp, err := p.client.DoWithRetry(req, nil)
	if err != nil {
		logger.Warn(ctx, "Yahoo chart fetch failed", "symbol", symbol, "error", err)
		return nil, nil, false
	}

	var cr chartResponse
	if err := resp.ParseJSON(&cr); err != nil {
		logger.Warn(ctx, "Yahoo chart parse failed", "symbol", symbol, "error", err)
		return nil, nil, false
	}
	if len(cr.Chart.Result) == 0 {
		logger.Warn(ctx, "Yahoo chart returned no result", "symbol", symbol)
		return nil, nil, false
	}

	result := cr.Chart.Result[0]
	bars := []types.Bar{}
	if len(result.Indicators.Quote) > 0 {
		q := result.Indicators.Quote[0]
		for i, ts := range result.Timestamp {
			if i >= len(q.Open) || i >= len(q.High) || i >= len(q.Low) || i >= len(q.Close) {
				break
			}
			// Yahoo pads thin intervals with nulls; skip incomplete bars.
			if q.Open[i] == nil || q.High[i] == nil || q.Low[i] == nil || q.Close[i] == nil {
				continue
			}
			bars = append(bars, types.Bar{
				Ts:    ts,
				Open:  *q.Open[i],
				High:  *q.High[i],
				Low:   *q.Low[i],
				Close: *q.Close[i],
			})
		}
	}

	var latest *float64
	if result.Meta.RegularMarketPrice > 0 {
		v := result.Meta.RegularMarketPrice
		latest = &v
	} else if len(bars) > 0 {
		v := bars[len(bars)-1].Close
		latest = &v
	}

	if latest == nil && len(bars) == 0 {
		logger.Warn(ctx, "Yahoo chart result was empty", "symbol", symbol)
		return nil, nil, false
	}
	return latest, bars, true
}
