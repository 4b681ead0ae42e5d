package outcome

import (
	"fmt"
	"math"

	"github.com/newthinker/opinionlab/internal/core"
)

// priceFloor keeps the effective price and its complement away from 0
const priceFloor = 0.01

// Input describes a hypothetical position
type Input struct {
	PositionSize     float64      `json:"position_size"` // capital committed
	Side             core.Outcome `json:"side"`
	EntryPrice       float64      `json:"entry_price"` // YES price
	LockDurationDays float64      `json:"lock_duration_days"`
}

// Result is the payoff table of a position under both resolutions
type Result struct {
	Side             core.Outcome `json:"side"`
	SharesOwned      float64      `json:"shares_owned"`
	PnLIfYes         float64      `json:"pnl_if_yes"`
	PnLIfNo          float64      `json:"pnl_if_no"`
	BreakEvenPrice   float64      `json:"break_even_price"`
	MaxLoss          float64      `json:"max_loss"`
	MaxGain          float64      `json:"max_gain"`
	ReturnIfWin      float64      `json:"return_if_win"` // percent of capital
	CapitalLocked    float64      `json:"capital_locked"`
	LockDurationDays float64      `json:"lock_duration_days"`
}

// EffectivePrice returns the price paid per share of the chosen side,
// clamped to [0.01, 0.99].
func EffectivePrice(side core.Outcome, yesPrice float64) float64 {
	p := yesPrice
	if side == core.OutcomeNo {
		p = 1 - yesPrice
	}
	return math.Min(math.Max(p, priceFloor), 1-priceFloor)
}

// Simulate computes the exact payoff of a position when the market settles
// the winning side at 1.0 and the losing side at 0.0.
func Simulate(in Input) (Result, error) {
	if in.PositionSize <= 0 || math.IsNaN(in.PositionSize) {
		return Result{}, core.WrapError(core.ErrInvalidPosition,
			fmt.Errorf("position size %v must be positive", in.PositionSize))
	}
	if in.Side != core.OutcomeYes && in.Side != core.OutcomeNo {
		return Result{}, core.WrapError(core.ErrInvalidPosition,
			fmt.Errorf("side %q must be YES or NO", in.Side))
	}

	entry := EffectivePrice(in.Side, in.EntryPrice)
	shares := in.PositionSize / entry

	win := (1 - entry) * shares
	lose := (0 - entry) * shares

	r := Result{
		Side:             in.Side,
		SharesOwned:      shares,
		BreakEvenPrice:   entry,
		CapitalLocked:    in.PositionSize,
		LockDurationDays: in.LockDurationDays,
		ReturnIfWin:      win / in.PositionSize * 100,
	}
	if in.Side == core.OutcomeYes {
		r.PnLIfYes, r.PnLIfNo = win, lose
	} else {
		r.PnLIfYes, r.PnLIfNo = lose, win
	}
	r.MaxLoss = math.Min(r.PnLIfYes, r.PnLIfNo)
	r.MaxGain = math.Max(r.PnLIfYes, r.PnLIfNo)

	return r, nil
}
