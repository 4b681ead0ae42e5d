package technical

import "github.com/newthinker/opinionlab/internal/core"

// Config controls a signal pass
type Config struct {
	Window          int     // rolling window size in ticks
	AggregateVolume float64 // known total (or 7d) volume to distribute
}

// Analyze merges both sides of a market, distributes the aggregate volume and
// computes per-tick metrics, signals, key moments and a summary.
// Each call owns its working state; concurrent calls are safe.
func Analyze(yes, no []core.PricePoint, cfg Config) Analysis {
	ticks := DistributeVolume(Merge(yes, no), cfg.AggregateVolume)
	return AnalyzeTicks(ticks, cfg.Window)
}

// AnalyzeTicks runs the signal pass over already merged ticks
func AnalyzeTicks(ticks []Tick, window int) Analysis {
	if window <= 0 {
		window = DefaultWindow
	}

	snaps := make([]Snapshot, len(ticks))
	prices := make([]float64, len(ticks))
	for i, t := range ticks {
		m := ComputeMetrics(ticks, i, window)
		snaps[i] = Snapshot{
			Tick:    t,
			Metrics: m,
			Signals: GenerateSignals(t, m),
			Overall: Overall(t, m),
		}
		prices[i] = t.Yes
	}

	return Analysis{
		Snapshots: snaps,
		Moments:   DetectKeyMoments(snaps),
		Summary:   Summarize(prices),
	}
}
