package candle

import (
	"fmt"
	"math"

	"github.com/newthinker/opinionlab/internal/core"
)

// MinCandles is the shortest sequence accepted for backtesting
const MinCandles = 5

// Rule names the validation check a candle sequence failed
type Rule string

const (
	RuleTooShort       Rule = "too_short"
	RuleOutOfRange     Rule = "out_of_range"
	RuleHighBelowBody  Rule = "high_below_body"
	RuleLowAboveBody   Rule = "low_above_body"
	RuleTimestampOrder Rule = "timestamp_order"
)

// Report is the outcome of a validation pass
type Report struct {
	Valid  bool
	Rule   Rule // empty when valid
	Reason string
	Index  int // offending candle, -1 when not applicable
}

// Err converts a failed report into a structured error, nil when valid
func (r Report) Err() error {
	if r.Valid {
		return nil
	}
	return core.WrapError(core.ErrInvalidCandles, fmt.Errorf("%s", r.Reason))
}

func fail(rule Rule, index int, format string, args ...any) Report {
	return Report{Rule: rule, Reason: fmt.Sprintf(format, args...), Index: index}
}

// Validate checks the OHLC invariants of a candle sequence.
// Failures are reported, never raised.
func Validate(candles []core.Candle) Report {
	if len(candles) < MinCandles {
		return fail(RuleTooShort, -1, "need at least %d candles, got %d", MinCandles, len(candles))
	}

	for i, c := range candles {
		for _, v := range [...]float64{c.Open, c.High, c.Low, c.Close} {
			if v < 0 || v > 1 || math.IsNaN(v) {
				return fail(RuleOutOfRange, i, "candle %d: price %v outside [0,1]", i, v)
			}
		}
		if c.High < math.Max(c.Open, c.Close) {
			return fail(RuleHighBelowBody, i, "candle %d: high %v below max(open, close)", i, c.High)
		}
		if c.Low > math.Min(c.Open, c.Close) {
			return fail(RuleLowAboveBody, i, "candle %d: low %v above min(open, close)", i, c.Low)
		}
		if i > 0 && c.Timestamp <= candles[i-1].Timestamp {
			return fail(RuleTimestampOrder, i, "candle %d: timestamp %d not after %d", i, c.Timestamp, candles[i-1].Timestamp)
		}
	}

	return Report{Valid: true, Index: -1}
}
