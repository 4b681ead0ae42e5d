package outcome

import "github.com/newthinker/opinionlab/internal/core"

const payoffSteps = 20 // 0.05 increments

// PayoffPoint is the position pnl at a hypothetical YES settlement price
type PayoffPoint struct {
	Price float64 `json:"price"`
	PnL   float64 `json:"pnl"`
}

// PayoffCurve sweeps the YES settlement price from 0 to 1 in steps of 0.05
func PayoffCurve(r Result) []PayoffPoint {
	entry := r.BreakEvenPrice
	curve := make([]PayoffPoint, 0, payoffSteps+1)
	for k := 0; k <= payoffSteps; k++ {
		p := float64(k) / payoffSteps
		value := p
		if r.Side == core.OutcomeNo {
			value = 1 - p
		}
		curve = append(curve, PayoffPoint{Price: p, PnL: (value - entry) * r.SharesOwned})
	}
	return curve
}
