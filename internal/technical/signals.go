package technical

import (
	"fmt"

	"github.com/newthinker/opinionlab/internal/core"
)

const (
	oversoldZ        = -2.0
	overboughtZ      = 2.0
	liquiditySpike   = 4.0
	strongBuyZ       = -1.7
	distributionZ    = 1.7
	distributionHigh = 0.95
)

// GenerateSignals returns every heuristic signal that fires for a tick
func GenerateSignals(t Tick, m Metrics) []core.Signal {
	var signals []core.Signal

	if m.ZScore < oversoldZ {
		signals = append(signals, core.Signal{
			Type:       core.SignalBuy,
			Label:      "OVERSOLD",
			Confidence: core.ConfidenceHigh,
			Reason:     fmt.Sprintf("Price %.3f is %.2f std devs below the rolling mean %.3f", t.Yes, -m.ZScore, m.Mean),
		})
	}

	if m.ZScore > overboughtZ {
		signals = append(signals, core.Signal{
			Type:       core.SignalSell,
			Label:      "OVERBOUGHT",
			Confidence: core.ConfidenceMedium,
			Reason:     fmt.Sprintf("Price %.3f is %.2f std devs above the rolling mean %.3f", t.Yes, m.ZScore, m.Mean),
		})
	}

	if m.AvgVolume > 0 && t.Volume > liquiditySpike*m.AvgVolume {
		signals = append(signals, core.Signal{
			Type:       core.SignalBuy,
			Label:      "LIQUIDITY SPIKE",
			Confidence: core.ConfidenceHigh,
			Reason:     fmt.Sprintf("Volume %.0f is %.1fx the window average", t.Volume, t.Volume/m.AvgVolume),
		})
	}

	return signals
}

// Overall picks the single summary signal for a tick.
// Rules are evaluated in priority order and are mutually exclusive.
func Overall(t Tick, m Metrics) core.Signal {
	switch {
	case m.ZScore < strongBuyZ && m.Trend != TrendBearish:
		return core.Signal{
			Type:       core.SignalBuy,
			Label:      "STRONG BUY",
			Confidence: core.ConfidenceHigh,
			Reason:     fmt.Sprintf("Stretched below mean (z=%.2f) without a bearish trend", m.ZScore),
		}
	case m.ZScore > distributionZ || t.Yes > distributionHigh:
		return core.Signal{
			Type:       core.SignalSell,
			Label:      "DISTRIBUTION",
			Confidence: core.ConfidenceMedium,
			Reason:     fmt.Sprintf("Extended price %.3f (z=%.2f), consider taking profit", t.Yes, m.ZScore),
		}
	default:
		return core.Signal{
			Type:       core.SignalHold,
			Label:      "MONITOR",
			Confidence: core.ConfidenceLow,
			Reason:     "No statistical edge at this tick",
		}
	}
}
