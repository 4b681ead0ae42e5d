package volume_fade

import (
	"testing"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/newthinker/opinionlab/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeFade_ImplementsStrategy(t *testing.T) {
	var _ strategy.Strategy = (*VolumeFade)(nil)
}

func TestVolumeFade_Init(t *testing.T) {
	s := New(0)
	require.NoError(t, s.Init(nil))
	assert.Equal(t, 7000.0, s.volumeThreshold)
	assert.Equal(t, 15.0, s.holdMinutes)

	assert.Error(t, s.Init(strategy.Params{"volumeThreshold": -1}))
	assert.Error(t, s.Init(strategy.Params{"holdMinutes": 0}))
}

type bar struct {
	close, volume float64
}

func run(t *testing.T, bars []bar) []core.Trade {
	t.Helper()
	s := New(0)
	require.NoError(t, s.Init(nil))

	st := strategy.NewState(1000, 0)
	var trades []core.Trade
	var prev *core.Candle
	for i, b := range bars {
		c := core.Candle{Timestamp: int64(i) * 60000, Open: b.close, High: b.close, Low: b.close, Close: b.close, Volume: b.volume}
		var tr *core.Trade
		st, tr = s.OnCandle(st, strategy.Tick{Index: i, Total: len(bars), Candle: c, Prev: prev})
		if tr != nil {
			trades = append(trades, *tr)
		}
		prev = &c
	}
	return trades
}

func TestVolumeFade_EntersOnPanic(t *testing.T) {
	bars := []bar{{0.5, 1000}, {0.5, 1000}, {0.42, 9000}}
	trades := run(t, bars)

	require.Len(t, trades, 1)
	assert.Equal(t, core.SideBuy, trades[0].Side)
	assert.Equal(t, 0.42, trades[0].Price)
}

func TestVolumeFade_IgnoresDropWithoutVolume(t *testing.T) {
	trades := run(t, []bar{{0.5, 1000}, {0.40, 5000}})
	assert.Empty(t, trades)
}

func TestVolumeFade_IgnoresVolumeWithoutDrop(t *testing.T) {
	trades := run(t, []bar{{0.5, 1000}, {0.47, 20000}, {0.55, 20000}})
	assert.Empty(t, trades)
}

func TestVolumeFade_ExitsAfterFifteenMinutes(t *testing.T) {
	bars := []bar{{0.5, 1000}, {0.40, 9000}}
	for i := 0; i < 20; i++ {
		bars = append(bars, bar{0.45, 1000})
	}

	trades := run(t, bars)
	require.Len(t, trades, 2)

	exit := trades[1]
	assert.Equal(t, core.SideSell, exit.Side)
	// entry on index 1, exit 15 simulated minutes later at index 16
	assert.Equal(t, int64(16*60000), exit.Timestamp)
	assert.InDelta(t, (0.45-0.40)*exit.Amount, exit.Realized(), 1e-9)
}

func TestVolumeFade_ReentryHoldsFromItsOwnEntry(t *testing.T) {
	bars := []bar{{0.5, 1000}, {0.40, 9000}}
	for i := 2; i <= 16; i++ {
		bars = append(bars, bar{0.45, 1000})
	}
	bars = append(bars, bar{0.35, 9000}) // second panic at index 17
	for i := 18; i <= 40; i++ {
		bars = append(bars, bar{0.40, 1000})
	}

	trades := run(t, bars)
	require.Len(t, trades, 4)

	var stamps []int64
	for _, tr := range trades {
		stamps = append(stamps, tr.Timestamp/60000)
	}
	// each hold is measured from its own entry, not the first trade
	assert.Equal(t, []int64{1, 16, 17, 32}, stamps)
	assert.Equal(t, core.SideBuy, trades[2].Side)
	assert.Equal(t, core.SideSell, trades[3].Side)
}
