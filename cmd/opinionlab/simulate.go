package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/newthinker/opinionlab/internal/outcome"
	"github.com/spf13/cobra"
)

var (
	simulateInput outcome.Input
	simulateSide  string
	simulateMeta  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate the payoff of a position",
	Long: `Compute the payoff of a YES or NO position under both resolutions, with
break-even and a payoff curve. With --meta the lock duration defaults to the
time until resolution, and resolved markets report the settled pnl.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&simulateInput.PositionSize, "size", 0, "capital committed (required)")
	simulateCmd.Flags().StringVar(&simulateSide, "side", "YES", "side to buy, YES or NO")
	simulateCmd.Flags().Float64Var(&simulateInput.EntryPrice, "price", 0, "current YES price (required)")
	simulateCmd.Flags().Float64Var(&simulateInput.LockDurationDays, "days", 0, "days until resolution")
	simulateCmd.Flags().StringVar(&simulateMeta, "meta", "", "market metadata snapshot")

	simulateCmd.MarkFlagRequired("size")
	simulateCmd.MarkFlagRequired("price")

	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) (err error) {
	a, _, log, err := setup()
	defer func() { err = finish(a, log, err) }()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	in := simulateInput
	in.Side = core.Outcome(strings.ToUpper(simulateSide))
	if !cmd.Flags().Changed("days") {
		in.LockDurationDays = 0
	}

	var meta *core.MarketMeta
	if simulateMeta != "" {
		if meta, err = a.LoadMeta(ctx, simulateMeta); err != nil {
			return err
		}
	}

	sim, err := a.Simulate(in, meta)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), sim)
}
