package types

// Stance is a directional classification shared by sentiment bias and the
// trend/momentum indicators.
type Stance string

const (
	Bullish Stance = "BULLISH"
	Bearish Stance = "BEARISH"
	Neutral Stance = "NEUTRAL"
	Unknown Stance = "UNKNOWN"
)

// Action is the final trading call for an underlying.
type Action string

const (
	NoTrade    Action = "NO TRADE"
	Buy        Action = "BUY"
	StrongBuy  Action = "STRONG BUY"
	Sell       Action = "SELL"
	StrongSell Action = "STRONG SELL"
)

// Short reports whether the action is on the short side.
func (a Action) Short() bool {
	return a == Sell || a == StrongSell
}

// Actionable reports whether the action implies taking a position.
func (a Action) Actionable() bool {
	return a != NoTrade && a != ""
}

// Bar is a single OHLC candle.
type Bar struct {
	Ts                     int64
	Open, High, Low, Close float64
}

// Underlying identifies one tradeable index and how to fetch its prices.
type Underlying struct {
	Symbol    string `yaml:"symbol" json:"symbol"`
	Label     string `yaml:"label" json:"label"`
	Step      int64  `yaml:"step" json:"strike_step"`
	Yahoo     string `yaml:"yahoo" json:"-"`
	KiteToken uint32 `yaml:"kite_token" json:"-"`
}

// Headline is one scraped news item.
type Headline struct {
	Source string `json:"source"`
	Title  string `json:"title"`
}

// IndicatorSet holds the technical indicators derived from one price series.
// Nil means the series was too short for that indicator, not zero.
type IndicatorSet struct {
	SMA20         *float64 `json:"sma20"`
	SMA50         *float64 `json:"sma50"`
	RSI           *float64 `json:"rsi"`
	ATR           *float64 `json:"atr"`
	VolatilityPct *float64 `json:"volatility_pct,omitempty"`
	Trend         Stance   `json:"trend"`
	Momentum      Stance   `json:"momentum"`
}

// Signal is the per-underlying result of one computation cycle.
type Signal struct {
	Symbol           string       `json:"symbol"`
	Label            string       `json:"label"`
	Step             int64        `json:"strike_step"`
	Price            *float64     `json:"price"`
	Sureness         float64      `json:"sureness"`
	Bias             Stance       `json:"bias"`
	Trend            Stance       `json:"trend"`
	Momentum         Stance       `json:"momentum"`
	Action           Action       `json:"action"`
	Reason           string       `json:"reason"`
	Call             string       `json:"call"`
	OptionType       *string      `json:"option_type"`
	Strike           *int64       `json:"strike"`
	Target           *float64     `json:"target"`
	StopLoss         *float64     `json:"stop_loss"`
	EarningPotential float64      `json:"earning_potential"`
	Volatility       *float64     `json:"volatility"`
	Indicators       IndicatorSet `json:"indicators"`
	Degraded         bool         `json:"degraded"`
}

// Payload is the aggregated response: the primary signal's fields plus the
// full per-underlying breakdown, the raw headlines, and a timestamp.
type Payload struct {
	Name             string       `json:"name"`
	Policy           string       `json:"policy"`
	Sureness         float64      `json:"sureness"`
	Call             string       `json:"call"`
	Action           Action       `json:"action"`
	Reason           string       `json:"reason"`
	Price            *float64     `json:"price"`
	Sentiment        float64      `json:"sentiment"`
	Bias             Stance       `json:"bias"`
	Target           *float64     `json:"target"`
	StopLoss         *float64     `json:"stop_loss"`
	EarningPotential float64      `json:"earning_potential"`
	Volatility       *float64     `json:"volatility"`
	Degraded         bool         `json:"degraded"`
	Timestamp        string       `json:"timestamp"`
	News             []Headline   `json:"news"`
	Indicators       IndicatorSet `json:"indicators"`
	Signals          []Signal     `json:"signals"`
}
