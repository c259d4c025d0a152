package engine

import "smartsignals/internal/types"

const (
	minConfirmations = 2
	minSureness      = 80.0
	strongSureness   = 90.0
)

// Decision is the outcome of the gating policy.
type Decision struct {
	Action types.Action
	Reason string
}

// Decide evaluates the ordered guard chain; the first matching guard wins.
//
//	1. neutral bias            -> NO TRADE
//	2. < 2 confirmations       -> NO TRADE
//	3. sureness below 80       -> NO TRADE
//	4. otherwise trade with the bias; STRONG at sureness >= 90
//
// Guard order is a contract: a neutral market must report "sentiment
// neutral" even when the technicals would also have failed.
func Decide(bias types.Stance, confirmations int, sureness float64) Decision {
	if bias == types.Neutral || bias == types.Unknown {
		return Decision{Action: types.NoTrade, Reason: "sentiment neutral"}
	}
	if confirmations < minConfirmations {
		return Decision{Action: types.NoTrade, Reason: "trend/momentum not aligned"}
	}
	if sureness < minSureness {
		return Decision{Action: types.NoTrade, Reason: "confidence below threshold"}
	}

	strong := sureness >= strongSureness
	if bias == types.Bearish {
		if strong {
			return Decision{Action: types.StrongSell, Reason: "multi-signal alignment confirmed"}
		}
		return Decision{Action: types.Sell, Reason: "multi-signal alignment confirmed"}
	}
	if strong {
		return Decision{Action: types.StrongBuy, Reason: "multi-signal alignment confirmed"}
	}
	return Decision{Action: types.Buy, Reason: "multi-signal alignment confirmed"}
}
