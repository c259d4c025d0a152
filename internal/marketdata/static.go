package marketdata

import (
	"context"
	"math/rand"
	"time"

	"smartsignals/internal/interfaces"
	"smartsignals/internal/types"
)

// barsPerDay approximates one NSE session at 15-minute resolution.
const barsPerDay = 25

// StaticProvider emits a synthetic random-walk series, for development and
// dry runs without a market-data upstream.
type StaticProvider struct {
	lookbackDays int
}

var _ interfaces.PriceProvider = (*StaticProvider)(nil)

// NewStaticProvider creates a synthetic provider covering the configured
// lookback window.
func NewStaticProvider(lookbackDays int) *StaticProvider {
	if lookbackDays <= 0 {
		lookbackDays = 10
	}
	return &StaticProvider{lookbackDays: lookbackDays}
}

// Series generates a fresh random-walk series; it always succeeds.
func (p *StaticProvider) Series(ctx context.Context, u types.Underlying) (*float64, []types.Bar, bool) {
	n := p.lookbackDays * barsPerDay
	base := 24000.0
	if u.Step >= 100 {
		base = 52000.0
	}

	bars := make([]types.Bar, 0, n)
	now := time.Now().Unix()
	c := base
	for i := n; i > 0; i-- {
		c += (rand.Float64() - 0.5) * base * 0.002
		h := c + rand.Float64()*base*0.001
		l := c - rand.Float64()*base*0.001
		bars = append(bars, types.Bar{
			Ts:    now - int64(i)*15*60,
			Open:  c - (rand.Float64()-0.5)*base*0.0005,
			High:  h,
			Low:   l,
			Close: c,
		})
	}

	latest := bars[len(bars)-1].Close
	return &latest, bars, true
}
