package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	analyzeYes    string
	analyzeNo     string
	analyzeVolume float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run technical analysis on a market",
	Long:  "Merge YES/NO price histories and compute per-tick metrics, signals, key moments and a summary",
	Args:  cobra.NoArgs,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeYes, "yes", "", "YES price history (required)")
	analyzeCmd.Flags().StringVar(&analyzeNo, "no", "", "NO price history")
	analyzeCmd.Flags().Float64Var(&analyzeVolume, "volume", 0, "aggregate volume to distribute across ticks")

	analyzeCmd.MarkFlagRequired("yes")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) (err error) {
	a, _, log, err := setup()
	defer func() { err = finish(a, log, err) }()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	analysis, err := a.Analyze(ctx, analyzeYes, analyzeNo, analyzeVolume)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), analysis)
}
