package strategy

import (
	"github.com/newthinker/opinionlab/internal/core"
)

// Type is the tag selecting a strategy implementation
type Type string

const (
	TypeEarlyEntry      Type = "EARLY_ENTRY"
	TypeVolumeFade      Type = "VOLUME_FADE"
	TypeMarketMaking    Type = "MARKET_MAKING"
	TypeStopLossNearRes Type = "STOP_LOSS_NEAR_RES"
)

// MaxSlippage bounds the configured slippage fraction
const MaxSlippage = 0.1

// Config is the immutable input of a single backtest run
type Config struct {
	Type     Type
	Params   Params
	Slippage float64
}

// Tick provides one candle of the replay to a strategy
type Tick struct {
	Index  int
	Total  int // length of the replayed series
	Candle core.Candle
	Prev   *core.Candle // nil on the first candle
}

// Strategy defines a pluggable entry/exit rule set.
// OnCandle must not retain the state it is given; it returns the next
// state and at most one trade.
type Strategy interface {
	Name() string
	Description() string
	Init(params Params) error
	OnCandle(s State, t Tick) (State, *core.Trade)
}
