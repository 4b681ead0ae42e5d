package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/spf13/cobra"
)

var candlesMeta string

var candlesCmd = &cobra.Command{
	Use:   "candles <history.json>",
	Short: "Synthesize candles from a price history",
	Long:  "Build OHLCV candles from a price-history snapshot and report validation and data quality",
	Args:  cobra.ExactArgs(1),
	RunE:  runCandles,
}

func init() {
	candlesCmd.Flags().StringVar(&candlesMeta, "meta", "", "market metadata snapshot for the quality score (default: meta.json next to the history)")

	rootCmd.AddCommand(candlesCmd)
}

func runCandles(cmd *cobra.Command, args []string) (err error) {
	a, _, log, err := setup()
	defer func() { err = finish(a, log, err) }()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var meta *core.MarketMeta
	if candlesMeta != "" {
		meta, err = a.LoadMeta(ctx, candlesMeta)
	} else {
		meta, err = a.DiscoverMeta(ctx, args[0])
	}
	if err != nil {
		return err
	}

	set, err := a.BuildCandles(ctx, args[0], meta)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), set)
}
