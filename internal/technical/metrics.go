package technical

import "github.com/newthinker/opinionlab/internal/indicator"

const (
	// DefaultWindow is the number of trailing ticks in the rolling window
	DefaultWindow = 20

	stdDevFloor      = 0.01
	highVolatility   = 0.08
	mediumVolatility = 0.03
	trendThreshold   = 3.0
	aboveAvgVolume   = 1.5
	belowAvgVolume   = 0.5
)

// ComputeMetrics builds the rolling snapshot for tick i using the trailing
// window of the given size.
func ComputeMetrics(ticks []Tick, i, window int) Metrics {
	start := indicator.WindowStart(i, window)
	prices := make([]float64, 0, i-start+1)
	var volSum float64
	for _, t := range ticks[start : i+1] {
		prices = append(prices, t.Yes)
		volSum += t.Volume
	}

	mean := indicator.Mean(prices)
	stdDev := indicator.StdDev(prices)
	momentum := indicator.Momentum(prices)
	avgVolume := volSum / float64(len(prices))

	return Metrics{
		Trend:           classifyTrend(momentum),
		Momentum:        momentum,
		Volatility:      classifyVolatility(stdDev),
		VolatilityScore: stdDev * 100,
		VolumeStatus:    classifyVolume(ticks[i].Volume, avgVolume),
		ZScore:          indicator.ZScore(ticks[i].Yes, mean, stdDev, stdDevFloor),
		Mean:            mean,
		StdDev:          stdDev,
		AvgVolume:       avgVolume,
	}
}

func classifyTrend(momentum float64) Trend {
	switch {
	case momentum > trendThreshold:
		return TrendBullish
	case momentum < -trendThreshold:
		return TrendBearish
	default:
		return TrendRanging
	}
}

func classifyVolatility(stdDev float64) Volatility {
	switch {
	case stdDev > highVolatility:
		return VolatilityHigh
	case stdDev > mediumVolatility:
		return VolatilityMedium
	default:
		return VolatilityLow
	}
}

func classifyVolume(volume, avg float64) VolumeStatus {
	switch {
	case volume > aboveAvgVolume*avg:
		return VolumeAboveAverage
	case volume < belowAvgVolume*avg:
		return VolumeBelowAverage
	default:
		return VolumeNormal
	}
}
