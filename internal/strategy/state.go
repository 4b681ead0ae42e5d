package strategy

import (
	"math"

	"github.com/newthinker/opinionlab/internal/core"
)

// State is the wallet and position carried through a replay.
// A position is either flat (Position == 0) or long.
type State struct {
	Wallet     float64 // cash
	Position   float64 // whole shares held
	EntryPrice float64 // slippage-adjusted fill of the open position
	EntryIndex int
	EntryTime  int64 // ms
	Slippage   float64
}

// NewState returns a flat state holding the given cash
func NewState(wallet, slippage float64) State {
	return State{Wallet: wallet, Slippage: slippage, EntryIndex: -1}
}

// Flat reports whether no position is open
func (s State) Flat() bool {
	return s.Position <= 0
}

// Equity marks the position at price and adds cash
func (s State) Equity(mark float64) float64 {
	return s.Wallet + s.Position*mark
}

// ApplySlippage moves a fill price against the trader: up for buys,
// down for sells.
func ApplySlippage(price float64, side core.Side, slippage float64) float64 {
	if side == core.SideBuy {
		return price * (1 + slippage)
	}
	return price * (1 - slippage)
}

// Buy spends all cash on whole shares at the slippage-adjusted price.
// It returns the state unchanged and a nil trade when not even one share
// is affordable or a position is already open.
func (s State) Buy(price float64, t Tick, label, reason string) (State, *core.Trade) {
	if !s.Flat() {
		return s, nil
	}
	fill := ApplySlippage(price, core.SideBuy, s.Slippage)
	if fill <= 0 {
		return s, nil
	}
	shares := math.Floor(s.Wallet / fill)
	if shares < 1 {
		return s, nil
	}

	s.Wallet -= shares * fill
	s.Position = shares
	s.EntryPrice = fill
	s.EntryIndex = t.Index
	s.EntryTime = t.Candle.Timestamp

	return s, &core.Trade{
		Side:      core.SideBuy,
		Price:     fill,
		Amount:    shares,
		Timestamp: t.Candle.Timestamp,
		Label:     label,
		Reason:    reason,
	}
}

// Sell closes the whole position at the slippage-adjusted price and
// realizes (exit - entry) * size.
func (s State) Sell(price float64, timestamp int64, label, reason string) (State, *core.Trade) {
	if s.Flat() {
		return s, nil
	}
	fill := ApplySlippage(price, core.SideSell, s.Slippage)
	size := s.Position
	pnl := (fill - s.EntryPrice) * size

	s.Wallet += size * fill
	s.Position = 0
	s.EntryPrice = 0
	s.EntryIndex = -1
	s.EntryTime = 0

	return s, &core.Trade{
		Side:      core.SideSell,
		Price:     fill,
		Amount:    size,
		Timestamp: timestamp,
		PnL:       &pnl,
		Label:     label,
		Reason:    reason,
	}
}
