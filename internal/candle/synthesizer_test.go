package candle

import (
	"math"
	"testing"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/shopspring/decimal"
)

func points(ts []int64, prices ...string) []core.PricePoint {
	pts := make([]core.PricePoint, len(prices))
	for i, p := range prices {
		pts[i] = core.PricePoint{Timestamp: ts[i], Price: decimal.RequireFromString(p)}
	}
	return pts
}

func TestSynthesize_Empty(t *testing.T) {
	candles := Synthesize(nil)
	if candles == nil || len(candles) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", candles)
	}
}

func TestSynthesize_NewestFirst(t *testing.T) {
	// newest-first on the wire
	pts := points([]int64{300, 200, 100}, "0.60", "0.40", "0.50")

	candles := Synthesize(pts)
	if len(candles) != 3 {
		t.Fatalf("expected 3 candles, got %d", len(candles))
	}

	want := []core.Candle{
		{Timestamp: 100000, Open: 0.5, High: 0.5, Low: 0.4, Close: 0.5},
		{Timestamp: 200000, Open: 0.5, High: 0.6, Low: 0.4, Close: 0.4},
		{Timestamp: 300000, Open: 0.4, High: 0.6, Low: 0.4, Close: 0.6},
	}
	for i, w := range want {
		c := candles[i]
		if c.Timestamp != w.Timestamp || c.Open != w.Open || c.High != w.High || c.Low != w.Low || c.Close != w.Close {
			t.Errorf("candle %d = %+v, want %+v", i, c, w)
		}
	}
}

func TestSynthesize_Volume(t *testing.T) {
	pts := points([]int64{1, 2, 3}, "0.50", "0.51", "0.60")
	candles := Synthesize(pts)

	// flat first candle and a 0.01 move both hit the floor
	if candles[0].Volume != MinVolume {
		t.Errorf("volume[0] = %v, want %v", candles[0].Volume, MinVolume)
	}
	if candles[1].Volume != MinVolume {
		t.Errorf("volume[1] = %v, want %v", candles[1].Volume, MinVolume)
	}
	// 0.09 * 50000 = 4500
	if math.Abs(candles[2].Volume-4500) > 1e-6 {
		t.Errorf("volume[2] = %v, want 4500", candles[2].Volume)
	}
}

func TestSynthesize_ClampsOutOfRange(t *testing.T) {
	pts := points([]int64{1, 2}, "-0.2", "1.4")
	candles := Synthesize(pts)

	if candles[0].Close != 0 || candles[1].Close != 1 {
		t.Errorf("expected clamped closes 0 and 1, got %v and %v", candles[0].Close, candles[1].Close)
	}
}

func TestSynthesize_OHLCInvariants(t *testing.T) {
	prices := []string{"0.5", "0.52", "0.47", "0.9", "0.1", "0.33", "0.33", "0.01", "0.99", "0.5"}
	ts := make([]int64, len(prices))
	for i := range ts {
		ts[i] = int64(1000 - i*60) // reversed order
	}

	candles := Synthesize(points(ts, prices...))

	for i, c := range candles {
		if c.High < math.Max(c.Open, c.Close) {
			t.Errorf("candle %d: high %v < max(open, close)", i, c.High)
		}
		if c.Low > math.Min(c.Open, c.Close) {
			t.Errorf("candle %d: low %v > min(open, close)", i, c.Low)
		}
		for _, v := range []float64{c.Open, c.High, c.Low, c.Close} {
			if v < 0 || v > 1 {
				t.Errorf("candle %d: value %v outside [0,1]", i, v)
			}
		}
	}

	if r := Validate(candles); !r.Valid {
		t.Errorf("synthesized candles should validate: %s", r.Reason)
	}
}
