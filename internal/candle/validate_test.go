package candle

import (
	"errors"
	"testing"

	"github.com/newthinker/opinionlab/internal/core"
)

func flat(n int) []core.Candle {
	candles := make([]core.Candle, n)
	for i := range candles {
		candles[i] = core.Candle{
			Timestamp: int64(i+1) * 60000,
			Open:      0.5, High: 0.55, Low: 0.45, Close: 0.5,
			Volume: 1000,
		}
	}
	return candles
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]core.Candle) []core.Candle
		rule   Rule
	}{
		{"valid", func(c []core.Candle) []core.Candle { return c }, ""},
		{"too short", func(c []core.Candle) []core.Candle { return c[:4] }, RuleTooShort},
		{"price above one", func(c []core.Candle) []core.Candle { c[2].High = 1.2; return c }, RuleOutOfRange},
		{"negative low", func(c []core.Candle) []core.Candle { c[1].Low = -0.1; return c }, RuleOutOfRange},
		{"high below close", func(c []core.Candle) []core.Candle { c[3].Close = 0.6; return c }, RuleHighBelowBody},
		{"low above open", func(c []core.Candle) []core.Candle { c[0].Open = 0.4; return c }, RuleLowAboveBody},
		{"duplicate timestamp", func(c []core.Candle) []core.Candle { c[4].Timestamp = c[3].Timestamp; return c }, RuleTimestampOrder},
		{"decreasing timestamp", func(c []core.Candle) []core.Candle { c[2].Timestamp = 1; return c }, RuleTimestampOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Validate(tt.mutate(flat(6)))
			valid := tt.rule == ""
			if r.Valid != valid {
				t.Errorf("Valid = %v, want %v (%s)", r.Valid, valid, r.Reason)
			}
			if r.Rule != tt.rule {
				t.Errorf("Rule = %q, want %q", r.Rule, tt.rule)
			}
			if !valid && r.Reason == "" {
				t.Error("expected a diagnostic for invalid candles")
			}
		})
	}
}

func TestValidate_RuleIgnoresLength(t *testing.T) {
	// different lengths, same failed check
	if a, b := Validate(flat(2)), Validate(flat(3)); a.Rule != b.Rule || a.Reason == b.Reason {
		t.Errorf("expected same rule with different reasons, got %+v and %+v", a, b)
	}
}

func TestValidate_FourCandlesAlwaysFail(t *testing.T) {
	r := Validate(flat(4))
	if r.Valid {
		t.Fatal("4 candles should fail the minimum length rule")
	}
	if r.Index != -1 {
		t.Errorf("Index = %d, want -1", r.Index)
	}
}

func TestReport_Err(t *testing.T) {
	if err := Validate(flat(5)).Err(); err != nil {
		t.Errorf("valid report should have nil error, got %v", err)
	}

	err := Validate(flat(1)).Err()
	if !errors.Is(err, core.ErrInvalidCandles) {
		t.Errorf("expected ErrInvalidCandles, got %v", err)
	}
}
