package candle

import (
	"math"
	"sort"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/shopspring/decimal"
)

const (
	// MinVolume is the floor of the estimated candle volume
	MinVolume = 1000.0
	// VolumePerUnitMove scales the absolute open/close move into volume
	VolumePerUnitMove = 50000.0
)

var (
	zero = decimal.Zero
	one  = decimal.NewFromInt(1)
)

// Synthesize converts price samples into OHLCV candles.
//
// Points may arrive newest-first; they are ordered oldest-first before
// synthesis. Each candle opens at the previous sample, closes at its own
// sample and spans the previous, current and next samples for high/low.
// Volume is an estimate: max(MinVolume, |close-open| * VolumePerUnitMove).
func Synthesize(points []core.PricePoint) []core.Candle {
	if len(points) == 0 {
		return []core.Candle{}
	}

	ordered := make([]core.PricePoint, len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp < ordered[j].Timestamp
	})

	prices := make([]float64, len(ordered))
	for i, p := range ordered {
		prices[i] = toUnit(p.Price)
	}

	candles := make([]core.Candle, len(ordered))
	last := len(prices) - 1
	for i := range prices {
		prev := prices[max(i-1, 0)]
		next := prices[min(i+1, last)]
		curr := prices[i]

		candles[i] = core.Candle{
			Timestamp: ordered[i].Timestamp * 1000,
			Open:      prev,
			High:      math.Max(prev, math.Max(curr, next)),
			Low:       math.Min(prev, math.Min(curr, next)),
			Close:     curr,
			Volume:    EstimateVolume(prev, curr),
		}
	}

	return candles
}

// EstimateVolume returns the activity proxy used for synthesized candles
func EstimateVolume(open, close float64) float64 {
	return math.Max(MinVolume, math.Abs(close-open)*VolumePerUnitMove)
}

// toUnit clamps a price into [0,1] and converts it to float64
func toUnit(p decimal.Decimal) float64 {
	switch {
	case p.LessThan(zero):
		p = zero
	case p.GreaterThan(one):
		p = one
	}
	f, _ := p.Float64()
	return f
}
