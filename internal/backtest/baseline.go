package backtest

import (
	"math/rand/v2"

	"github.com/newthinker/opinionlab/internal/core"
)

const (
	BuyHoldName     = "Buy & Hold"
	RandomMeanName  = "Random Mean"
	buyHoldColor    = "#94a3b8"
	randomMeanColor = "#f59e0b"
)

// EntryPicker chooses the Random Mean entry index for a series of n candles.
// Implementations must return a value in [0, max(1, n/2)).
type EntryPicker interface {
	Pick(n int) int
}

// MidpointEntry deterministically enters halfway through the draw range
type MidpointEntry struct{}

func (MidpointEntry) Pick(n int) int {
	return (n / 2) / 2
}

// RandomEntry draws the entry uniformly from [0, n/2)
type RandomEntry struct {
	rng *rand.Rand
}

// NewRandomEntry creates a seeded RandomEntry; seed 0 draws from the
// runtime's random source.
func NewRandomEntry(seed uint64) *RandomEntry {
	if seed == 0 {
		return &RandomEntry{}
	}
	return &RandomEntry{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (r *RandomEntry) Pick(n int) int {
	limit := max(1, n/2)
	if r.rng == nil {
		return rand.IntN(limit)
	}
	return r.rng.IntN(limit)
}

// Baselines computes the Buy & Hold and Random Mean reference curves
func Baselines(candles []core.Candle, wallet float64, picker EntryPicker) []BaselineCurve {
	if picker == nil {
		picker = MidpointEntry{}
	}
	return []BaselineCurve{
		{Name: BuyHoldName, Data: holdFrom(candles, wallet, 0), Color: buyHoldColor},
		{Name: RandomMeanName, Data: holdFrom(candles, wallet, picker.Pick(len(candles))), Color: randomMeanColor},
	}
}

// holdFrom invests the whole wallet at the close of candle entry and marks
// the holding on every candle; before entry the curve stays at wallet.
func holdFrom(candles []core.Candle, wallet float64, entry int) []EquityPoint {
	curve := make([]EquityPoint, len(candles))
	if len(candles) == 0 {
		return curve
	}
	entry = min(max(entry, 0), len(candles)-1)

	var shares float64
	if price := candles[entry].Close; price > 0 {
		shares = wallet / price
	}

	for i, c := range candles {
		equity := wallet
		if i >= entry && shares > 0 {
			equity = shares * c.Close
		}
		curve[i] = EquityPoint{Timestamp: c.Timestamp, Equity: equity}
	}
	return curve
}
