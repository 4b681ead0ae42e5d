package backtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func equities(curve []EquityPoint) []float64 {
	out := make([]float64, len(curve))
	for i, p := range curve {
		out[i] = p.Equity
	}
	return out
}

// fixedEntry always enters at the given index, clamped to the draw range
type fixedEntry int

func (f fixedEntry) Pick(n int) int {
	limit := max(1, n/2)
	return min(max(int(f), 0), limit-1)
}

func TestBaselines(t *testing.T) {
	candles := candlesFromCloses(0.5, 0.25, 1.0, 0.5)

	curves := Baselines(candles, 1000, fixedEntry(1))
	require.Len(t, curves, 2)

	assert.Equal(t, BuyHoldName, curves[0].Name)
	assert.InDeltaSlice(t, []float64{1000, 500, 2000, 1000}, equities(curves[0].Data), 1e-9)

	assert.Equal(t, RandomMeanName, curves[1].Name)
	assert.InDeltaSlice(t, []float64{1000, 1000, 4000, 2000}, equities(curves[1].Data), 1e-9)

	for _, c := range curves {
		assert.NotEmpty(t, c.Color)
		assert.Len(t, c.Data, len(candles))
	}
}

func TestBaselines_DefaultIsDeterministic(t *testing.T) {
	candles := candlesFromCloses(0.5, 0.25, 1.0, 0.5)

	a := Baselines(candles, 1000, nil)
	b := Baselines(candles, 1000, nil)
	assert.Equal(t, a, b)
	// midpoint of [0, 2) is index 1
	assert.Equal(t, Baselines(candles, 1000, fixedEntry(1)), a)
}

func TestBaselines_ZeroPriceStaysFlat(t *testing.T) {
	candles := candlesFromCloses(0, 0.5, 0.6)
	curves := Baselines(candles, 1000, fixedEntry(0))
	assert.Equal(t, []float64{1000, 1000, 1000}, equities(curves[0].Data))
}

func TestEntryPickers(t *testing.T) {
	assert.Equal(t, 0, MidpointEntry{}.Pick(1))
	assert.Equal(t, 2, MidpointEntry{}.Pick(10))

	assert.Equal(t, 4, fixedEntry(99).Pick(10))
	assert.Equal(t, 0, fixedEntry(-3).Pick(10))

	r := NewRandomEntry(42)
	for i := 0; i < 100; i++ {
		idx := r.Pick(10)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 5)
	}
	assert.Equal(t, 0, NewRandomEntry(0).Pick(1))

	// same seed, same sequence
	a, b := NewRandomEntry(7), NewRandomEntry(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Pick(100), b.Pick(100))
	}
}
