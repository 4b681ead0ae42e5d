package stop_loss

import (
	"fmt"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/newthinker/opinionlab/internal/strategy"
)

const defaultStopLoss = 0.05

// StopLoss enters on the first candle and holds toward resolution unless
// the close falls through the stop.
type StopLoss struct {
	stopLoss float64
}

// New creates a new Stop Loss strategy
func New(stopLoss float64) *StopLoss {
	return &StopLoss{stopLoss: stopLoss}
}

func (s *StopLoss) Name() string {
	return string(strategy.TypeStopLossNearRes)
}

func (s *StopLoss) Description() string {
	return fmt.Sprintf("Stop Loss near resolution (%.1f%%)", s.stopLoss*100)
}

func (s *StopLoss) Init(params strategy.Params) error {
	s.stopLoss = params.Get("stopLoss", defaultStopLoss)
	if s.stopLoss <= 0 || s.stopLoss >= 1 {
		return strategy.InvalidParam("stopLoss", s.stopLoss, "(0, 1)")
	}
	return nil
}

func (s *StopLoss) OnCandle(st strategy.State, t strategy.Tick) (strategy.State, *core.Trade) {
	c := t.Candle

	if t.Index == 0 && st.Flat() {
		return st.Buy(c.Close, t, "INITIAL ENTRY", "Full entry on the first candle")
	}

	if st.Flat() {
		return st, nil
	}

	stop := st.EntryPrice * (1 - s.stopLoss)
	if c.Close < stop {
		return st.Sell(c.Close, c.Timestamp, "STOP LOSS",
			fmt.Sprintf("Close %.3f below stop %.3f", c.Close, stop))
	}
	return st, nil
}
