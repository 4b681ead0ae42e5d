package indicator

import "math"

// WindowStart returns the first index of a trailing window of the given size
// ending at i (inclusive). Early in a series the window is shorter.
func WindowStart(i, size int) int {
	if size <= 0 {
		size = 1
	}
	return max(0, i-size+1)
}

// Mean calculates the arithmetic mean, 0 for an empty slice
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev calculates the population standard deviation (divides by n)
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}

// ZScore returns how many standard deviations value lies from mean.
// A zero stdDev is replaced by floor to keep the result finite.
func ZScore(value, mean, stdDev, floor float64) float64 {
	if stdDev == 0 {
		stdDev = floor
	}
	if stdDev == 0 {
		return 0
	}
	return (value - mean) / stdDev
}

// Momentum returns the percentage change from the first to the last value.
// Windows of one element and a zero starting value yield 0.
func Momentum(window []float64) float64 {
	if len(window) < 2 {
		return 0
	}
	start := window[0]
	if start == 0 {
		return 0
	}
	return (window[len(window)-1] - start) / start * 100
}
