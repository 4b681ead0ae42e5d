package early_entry

import (
	"fmt"
	"math"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/newthinker/opinionlab/internal/strategy"
)

const defaultEntryIndex = 5

// EarlyEntry buys with all cash at a fixed candle and holds to resolution
type EarlyEntry struct {
	entryIndex int
}

// New creates a new Early Entry strategy
func New(entryIndex int) *EarlyEntry {
	return &EarlyEntry{entryIndex: entryIndex}
}

func (e *EarlyEntry) Name() string {
	return string(strategy.TypeEarlyEntry)
}

func (e *EarlyEntry) Description() string {
	return fmt.Sprintf("Early Entry (candle %d, hold to resolution)", e.entryIndex)
}

func (e *EarlyEntry) Init(params strategy.Params) error {
	idx := params.Get("entryIndex", defaultEntryIndex)
	if idx < 0 {
		return strategy.InvalidParam("entryIndex", idx, ">= 0")
	}
	// cap before converting; anything past the series clamps to its end
	e.entryIndex = int(math.Min(idx, math.MaxInt32))
	return nil
}

func (e *EarlyEntry) OnCandle(s strategy.State, t strategy.Tick) (strategy.State, *core.Trade) {
	// clamp to the replayed series
	target := min(e.entryIndex, t.Total-1)
	if t.Index != target || !s.Flat() {
		return s, nil
	}
	return s.Buy(t.Candle.Close, t, "EARLY ENTRY",
		fmt.Sprintf("Scheduled full entry at candle %d", t.Index))
}
