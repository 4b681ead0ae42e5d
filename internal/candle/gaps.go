package candle

import "github.com/newthinker/opinionlab/internal/core"

// gapTolerance is the multiple of the interval above which a gap is filled
const gapTolerance = 1.5

// FillGaps inserts zero-volume filler candles where consecutive candles are
// more than 1.5 intervals apart. Fillers are flat (OHLC equal), linearly
// interpolated between the previous close and the next open. The input is
// returned as-is when it has fewer than two candles.
func FillGaps(candles []core.Candle, intervalMs int64) []core.Candle {
	if len(candles) < 2 || intervalMs <= 0 {
		return candles
	}

	filled := make([]core.Candle, 0, len(candles))
	filled = append(filled, candles[0])

	for i := 1; i < len(candles); i++ {
		prev, next := candles[i-1], candles[i]
		gap := next.Timestamp - prev.Timestamp

		if float64(gap) > gapTolerance*float64(intervalMs) {
			missing := gap/intervalMs - 1
			for k := int64(1); k <= missing; k++ {
				frac := float64(k) / float64(missing+1)
				v := prev.Close + (next.Open-prev.Close)*frac
				filled = append(filled, core.Candle{
					Timestamp: prev.Timestamp + k*intervalMs,
					Open:      v,
					High:      v,
					Low:       v,
					Close:     v,
				})
			}
		}

		filled = append(filled, next)
	}

	return filled
}
