package outcome

import (
	"time"

	"github.com/newthinker/opinionlab/internal/core"
)

// ClassifyResolution decides which side a resolved market settled to.
// Without a result token the market is classified as YES.
func ClassifyResolution(meta core.MarketMeta) core.Outcome {
	if meta.ResultToken == "" || meta.ResultToken == meta.YesToken {
		return core.OutcomeYes
	}
	return core.OutcomeNo
}

// SettledPnL returns the realized pnl of a simulated position once the
// market has resolved to winner.
func SettledPnL(r Result, winner core.Outcome) float64 {
	if winner == core.OutcomeNo {
		return r.PnLIfNo
	}
	return r.PnLIfYes
}

// DaysUntil returns the days from now to the resolution time (seconds),
// never negative.
func DaysUntil(resolution int64, now time.Time) float64 {
	if resolution <= 0 {
		return 0
	}
	d := time.Unix(resolution, 0).Sub(now).Hours() / 24
	if d < 0 {
		return 0
	}
	return d
}
