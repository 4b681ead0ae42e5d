package main

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/newthinker/opinionlab/internal/strategy"
	"github.com/newthinker/opinionlab/internal/strategy/factory"
	"github.com/spf13/cobra"
)

var (
	backtestStrategy string
	backtestParams   map[string]string
	backtestSlippage float64
	backtestCandles  bool
)

var backtestCmd = &cobra.Command{
	Use:   "backtest <history.json | candles.json>",
	Short: "Run backtest on a strategy",
	Long:  "Synthesize candles from a price history, replay a strategy over them and show performance statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runBacktest,
}

func init() {
	backtestCmd.Flags().StringVar(&backtestStrategy, "strategy", "", "strategy type, one of "+strategyNames())
	backtestCmd.Flags().StringToStringVar(&backtestParams, "param", nil, "strategy parameter as name=value")
	backtestCmd.Flags().Float64Var(&backtestSlippage, "slippage", 0, "fractional slippage in [0, 0.1]")
	backtestCmd.Flags().BoolVar(&backtestCandles, "candles", false, "input is a pre-built candle snapshot")

	rootCmd.AddCommand(backtestCmd)
}

func runBacktest(cmd *cobra.Command, args []string) (err error) {
	a, cfg, log, err := setup()
	defer func() { err = finish(a, log, err) }()
	if err != nil {
		return err
	}

	// Flags override the configured run
	sc := cfg.StrategyConfig()
	if backtestStrategy != "" {
		sc.Type = strategy.Type(strings.ToUpper(backtestStrategy))
	}
	if cmd.Flags().Changed("slippage") {
		sc.Slippage = backtestSlippage
	}
	flags := make(strategy.Params, len(backtestParams))
	for name, raw := range backtestParams {
		v, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			return fmt.Errorf("invalid value for param %s: %w", name, perr)
		}
		flags[name] = v
	}
	sc.Params = sc.Params.Merge(flags)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run := a.Backtest
	if backtestCandles {
		run = a.BacktestCandles
	}
	result, err := run(ctx, args[0], sc)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), result)
}

func strategyNames() string {
	types := factory.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
