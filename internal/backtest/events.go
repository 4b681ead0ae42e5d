package backtest

import (
	"math"

	"github.com/newthinker/opinionlab/internal/core"
)

const (
	volumeSpikeLevel = 8000.0
	volumeSpikeScale = 15000.0
	priceJumpLevel   = 0.05
	priceJumpScale   = 10.0
)

// DetectEvents annotates a candle with volume spikes and price jumps.
// prev is nil for the first candle.
func DetectEvents(c core.Candle, prev *core.Candle) []MarketEvent {
	var events []MarketEvent

	if c.Volume > volumeSpikeLevel {
		events = append(events, MarketEvent{
			Timestamp: c.Timestamp,
			Type:      EventVolumeSpike,
			Intensity: c.Volume / volumeSpikeScale,
		})
	}

	if prev != nil {
		if jump := math.Abs(c.Close - prev.Close); jump > priceJumpLevel {
			events = append(events, MarketEvent{
				Timestamp: c.Timestamp,
				Type:      EventPriceJump,
				Intensity: jump * priceJumpScale,
			})
		}
	}

	return events
}
