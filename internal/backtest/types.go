package backtest

import (
	"github.com/newthinker/opinionlab/internal/core"
	"github.com/newthinker/opinionlab/internal/strategy"
)

// DefaultWallet is the starting cash of a run
const DefaultWallet = 1000.0

// Config holds the inputs of a single backtest run
type Config struct {
	InitialWallet float64
	Strategy      strategy.Config
	// EntryPicker chooses the Random Mean entry; nil uses MidpointEntry
	EntryPicker EntryPicker
}

// EventType tags an advisory market annotation
type EventType string

const (
	EventVolumeSpike EventType = "VOLUME_SPIKE"
	EventPriceJump   EventType = "PRICE_JUMP"
)

// MarketEvent annotates unusual activity on a candle.
// Events never drive strategy decisions.
type MarketEvent struct {
	Timestamp int64     `json:"timestamp"`
	Type      EventType `json:"type"`
	Intensity float64   `json:"intensity"`
}

// EquityPoint is the marked value of the run after one candle
type EquityPoint struct {
	Timestamp int64   `json:"timestamp"`
	Equity    float64 `json:"equity"`
	Drawdown  float64 `json:"drawdown,omitempty"` // running max drawdown, percent
}

// BaselineCurve is a reference equity trajectory
type BaselineCurve struct {
	Name  string        `json:"name"`
	Data  []EquityPoint `json:"data"`
	Color string        `json:"color"`
}

// Stats holds performance statistics
type Stats struct {
	InitialWallet    float64 `json:"initial_wallet"`
	FinalWallet      float64 `json:"final_wallet"`
	TotalPnL         float64 `json:"total_pnl"`
	ReturnPercentage float64 `json:"return_percentage"`
	MaxDrawdown      float64 `json:"max_drawdown"` // percent
	WinRate          float64 `json:"win_rate"`     // percent of profitable exits
	TotalTrades      int     `json:"total_trades"`
	ClosedTrades     int     `json:"closed_trades"`
	WinningTrades    int     `json:"winning_trades"`
}

// Result holds the complete backtest output
type Result struct {
	ID          string          `json:"id"`
	Strategy    string          `json:"strategy"`
	Description string          `json:"description"`
	Slippage    float64         `json:"slippage"`
	Trades      []core.Trade    `json:"trades"`
	Equity      []EquityPoint   `json:"equity"`
	Events      []MarketEvent   `json:"events"`
	Baselines   []BaselineCurve `json:"baselines"`
	Stats       Stats           `json:"stats"`
}
