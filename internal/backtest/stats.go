package backtest

import "github.com/newthinker/opinionlab/internal/core"

// CalculateStats computes performance statistics of a run.
// maxDrawdown is a fraction; the result reports percentages.
func CalculateStats(trades []core.Trade, initialWallet, finalWallet, maxDrawdown float64) Stats {
	stats := Stats{
		InitialWallet: initialWallet,
		FinalWallet:   finalWallet,
		TotalPnL:      finalWallet - initialWallet,
		MaxDrawdown:   maxDrawdown * 100,
		TotalTrades:   len(trades),
	}

	if initialWallet != 0 {
		stats.ReturnPercentage = stats.TotalPnL / initialWallet * 100
	}

	for _, t := range trades {
		if t.Side != core.SideSell {
			continue
		}
		stats.ClosedTrades++
		if t.Realized() > 0 {
			stats.WinningTrades++
		}
	}

	// no exits means no win rate, not NaN
	if stats.ClosedTrades > 0 {
		stats.WinRate = float64(stats.WinningTrades) / float64(stats.ClosedTrades) * 100
	}

	return stats
}
