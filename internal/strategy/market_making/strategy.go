package market_making

import (
	"fmt"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/newthinker/opinionlab/internal/strategy"
)

const defaultSpreadWidth = 0.04

// MarketMaking rests a two-sided quote around each candle's close.
// Only one side is live at a time: the bid while flat, the ask while long.
type MarketMaking struct {
	spreadWidth float64
}

// New creates a new Market Making strategy
func New(spreadWidth float64) *MarketMaking {
	return &MarketMaking{spreadWidth: spreadWidth}
}

func (m *MarketMaking) Name() string {
	return string(strategy.TypeMarketMaking)
}

func (m *MarketMaking) Description() string {
	return fmt.Sprintf("Market Making (spread %.3f)", m.spreadWidth)
}

func (m *MarketMaking) Init(params strategy.Params) error {
	m.spreadWidth = params.Get("spreadWidth", defaultSpreadWidth)
	if m.spreadWidth <= 0 || m.spreadWidth >= 1 {
		return strategy.InvalidParam("spreadWidth", m.spreadWidth, "(0, 1)")
	}
	return nil
}

// Quote returns the bid and ask around mid
func (m *MarketMaking) Quote(mid float64) (bid, ask float64) {
	half := m.spreadWidth / 2
	return mid - half, mid + half
}

func (m *MarketMaking) OnCandle(s strategy.State, t strategy.Tick) (strategy.State, *core.Trade) {
	c := t.Candle
	bid, ask := m.Quote(c.Close)

	if s.Flat() {
		if bid > 0 && c.Low <= bid {
			return s.Buy(bid, t, "BID FILLED",
				fmt.Sprintf("Low %.3f touched bid %.3f", c.Low, bid))
		}
		return s, nil
	}

	if c.High >= ask {
		return s.Sell(ask, c.Timestamp, "ASK FILLED",
			fmt.Sprintf("High %.3f touched ask %.3f", c.High, ask))
	}
	return s, nil
}
