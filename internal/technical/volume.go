package technical

import "math"

// DistributeVolume allocates a known aggregate volume across ticks in
// proportion to each tick's absolute YES price move. The first tick has no
// move. When the series never moves the aggregate is spread evenly.
// The input is not modified.
func DistributeVolume(ticks []Tick, aggregate float64) []Tick {
	out := make([]Tick, len(ticks))
	copy(out, ticks)
	if len(out) == 0 {
		return out
	}

	deltas := make([]float64, len(out))
	var total float64
	for i := 1; i < len(out); i++ {
		deltas[i] = math.Abs(out[i].Yes - out[i-1].Yes)
		total += deltas[i]
	}

	for i := range out {
		if total == 0 {
			out[i].Volume = aggregate / float64(len(out))
			continue
		}
		out[i].Volume = deltas[i] / total * aggregate
	}
	return out
}
