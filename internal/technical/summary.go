package technical

import (
	"math"

	"github.com/newthinker/opinionlab/internal/indicator"
)

// Summarize computes whole-series price statistics. An empty series yields
// a zero summary.
func Summarize(prices []float64) Summary {
	if len(prices) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(prices),
		Min:   math.Inf(1),
		Max:   math.Inf(-1),
		Start: prices[0],
		End:   prices[len(prices)-1],
	}
	for _, p := range prices {
		s.Min = math.Min(s.Min, p)
		s.Max = math.Max(s.Max, p)
	}

	s.Avg = indicator.Mean(prices)
	s.StdDev = indicator.StdDev(prices)
	s.Change = s.End - s.Start
	s.ChangePct = PriceChange(s.End, s.Start)
	return s
}

// PriceChange returns the percentage change from ago to current, 0 when
// there is no reference price.
func PriceChange(current, ago float64) float64 {
	if ago == 0 {
		return 0
	}
	return (current - ago) / ago * 100
}
