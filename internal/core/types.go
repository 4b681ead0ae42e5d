package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Outcome is one side of a binary market
type Outcome string

const (
	OutcomeYes Outcome = "YES"
	OutcomeNo  Outcome = "NO"
)

// MarketStatus represents the lifecycle state of a market
type MarketStatus string

const (
	StatusActive   MarketStatus = "active"
	StatusResolved MarketStatus = "resolved"
	StatusClosed   MarketStatus = "closed"
)

// PricePoint is a single price sample from the price-history feed.
// Price accepts either a decimal string or a JSON number.
type PricePoint struct {
	Timestamp int64           `json:"t"` // seconds since epoch
	Price     decimal.Decimal `json:"p"`
}

// Candle represents a synthesized OHLCV bar
type Candle struct {
	Timestamp int64   `json:"timestamp"` // ms since epoch
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// Time returns the candle timestamp as time.Time
func (c Candle) Time() time.Time {
	return time.UnixMilli(c.Timestamp)
}

// MarketMeta carries market metadata supplied alongside the price history
type MarketMeta struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Status         MarketStatus `json:"status"`
	ResolutionTime int64        `json:"resolution_time"` // seconds
	CutoffTime     int64        `json:"cutoff_time"`     // seconds
	VolumeTotal    float64      `json:"volume"`
	Volume24h      float64      `json:"volume_24h"`
	Volume7d       float64      `json:"volume_7d"`
	YesToken       string       `json:"yes_token"`
	NoToken        string       `json:"no_token"`
	ResultToken    string       `json:"result_token"`
}

// Side represents a fill direction
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Trade is an append-only ledger entry produced by a backtest run
type Trade struct {
	Side      Side     `json:"side"`
	Price     float64  `json:"price"`
	Amount    float64  `json:"amount"`
	Timestamp int64    `json:"timestamp"`
	PnL       *float64 `json:"pnl,omitempty"`
	Label     string   `json:"label"`
	Reason    string   `json:"reason"`
}

// Realized returns the realized pnl, zero for entries
func (t Trade) Realized() float64 {
	if t.PnL == nil {
		return 0
	}
	return *t.PnL
}

// SignalType represents the kind of a technical signal
type SignalType string

const (
	SignalBuy     SignalType = "BUY"
	SignalSell    SignalType = "SELL"
	SignalHold    SignalType = "HOLD"
	SignalInfo    SignalType = "INFO"
	SignalWarning SignalType = "WARNING"
)

// Confidence is a coarse confidence bucket
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Signal represents a heuristic trading signal for one tick
type Signal struct {
	Type       SignalType `json:"type"`
	Label      string     `json:"label"`
	Confidence Confidence `json:"confidence"`
	Reason     string     `json:"reason"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
}
