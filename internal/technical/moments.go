package technical

import "math"

const (
	spikeMove       = 0.05
	highSpikeMove   = 0.10
	surgeMultiple   = 3.0
	surgeMinVolume  = 10000.0
	confluenceCount = 2
)

// DetectKeyMoments scans consecutive snapshots for price spikes, volume
// surges, signal confluence and direct trend reversals. Fewer than two
// snapshots yield no moments.
func DetectKeyMoments(snaps []Snapshot) []KeyMoment {
	moments := []KeyMoment{}
	if len(snaps) < 2 {
		return moments
	}

	for i := 1; i < len(snaps); i++ {
		prev, curr := snaps[i-1], snaps[i]
		ts := curr.Tick.Timestamp

		move := math.Abs(curr.Tick.Yes - prev.Tick.Yes)
		if move > spikeMove {
			sev := SeverityMedium
			if move > highSpikeMove {
				sev = SeverityHigh
			}
			moments = append(moments, KeyMoment{Index: i, Timestamp: ts, Type: MomentPriceSpike, Severity: sev})
		}

		if curr.Tick.Volume > surgeMultiple*prev.Tick.Volume && curr.Tick.Volume > surgeMinVolume {
			moments = append(moments, KeyMoment{Index: i, Timestamp: ts, Type: MomentVolumeSurge, Severity: SeverityHigh})
		}

		if len(curr.Signals) >= confluenceCount {
			moments = append(moments, KeyMoment{Index: i, Timestamp: ts, Type: MomentSignalConfluence, Severity: SeverityMedium})
		}

		if reversed(prev.Metrics.Trend, curr.Metrics.Trend) {
			moments = append(moments, KeyMoment{Index: i, Timestamp: ts, Type: MomentTrendReversal, Severity: SeverityMedium})
		}
	}

	return moments
}

func reversed(from, to Trend) bool {
	return (from == TrendBullish && to == TrendBearish) ||
		(from == TrendBearish && to == TrendBullish)
}
