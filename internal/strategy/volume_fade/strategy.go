package volume_fade

import (
	"fmt"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/newthinker/opinionlab/internal/strategy"
)

const (
	defaultVolumeThreshold = 7000
	defaultDrop            = 0.05
	defaultHoldMinutes     = 15

	// msPerIndex is the simulated spacing between candles
	msPerIndex = 60000
)

// VolumeFade buys panic selling on heavy volume and exits after a fixed hold
type VolumeFade struct {
	volumeThreshold float64
	drop            float64
	holdMinutes     float64
}

// New creates a new Volume Fade strategy
func New(volumeThreshold float64) *VolumeFade {
	return &VolumeFade{
		volumeThreshold: volumeThreshold,
		drop:            defaultDrop,
		holdMinutes:     defaultHoldMinutes,
	}
}

func (v *VolumeFade) Name() string {
	return string(strategy.TypeVolumeFade)
}

func (v *VolumeFade) Description() string {
	return fmt.Sprintf("Volume Fade (volume > %.0f, drop > %.2f, hold %.0fm)", v.volumeThreshold, v.drop, v.holdMinutes)
}

func (v *VolumeFade) Init(params strategy.Params) error {
	v.volumeThreshold = params.Get("volumeThreshold", defaultVolumeThreshold)
	v.drop = params.Get("dropThreshold", defaultDrop)
	v.holdMinutes = params.Get("holdMinutes", defaultHoldMinutes)

	if v.volumeThreshold < 0 {
		return strategy.InvalidParam("volumeThreshold", v.volumeThreshold, ">= 0")
	}
	if v.drop < 0 || v.drop >= 1 {
		return strategy.InvalidParam("dropThreshold", v.drop, "[0, 1)")
	}
	if v.holdMinutes <= 0 {
		return strategy.InvalidParam("holdMinutes", v.holdMinutes, "> 0")
	}
	return nil
}

func (v *VolumeFade) OnCandle(s strategy.State, t strategy.Tick) (strategy.State, *core.Trade) {
	c := t.Candle

	if !s.Flat() {
		// simulated clock: one minute per candle since the entry fill
		elapsed := float64(t.Index-s.EntryIndex) * msPerIndex
		if elapsed >= v.holdMinutes*60000 {
			return s.Sell(c.Close, c.Timestamp, "FADE EXIT",
				fmt.Sprintf("Held %.0f minutes since entry", elapsed/60000))
		}
		return s, nil
	}

	if t.Prev == nil || c.Volume <= v.volumeThreshold {
		return s, nil
	}
	if drop := t.Prev.Close - c.Close; drop > v.drop {
		return s.Buy(c.Close, t, "PANIC FADE",
			fmt.Sprintf("Volume %.0f with %.3f drop", c.Volume, drop))
	}
	return s, nil
}
