package backtest

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/newthinker/opinionlab/internal/core"
	"github.com/newthinker/opinionlab/internal/strategy"
	"github.com/newthinker/opinionlab/internal/strategy/factory"
)

// run is the accumulator folded over the candle sequence
type run struct {
	state       strategy.State
	maxEquity   float64
	maxDrawdown float64 // fraction
	trades      []core.Trade
	equity      []EquityPoint
	events      []MarketEvent
}

// Run replays the configured strategy over candles in chronological order.
//
// Callers are expected to have validated candles; Run only rejects an empty
// sequence. Each call owns its state, so independent runs may execute
// concurrently.
func Run(candles []core.Candle, cfg Config) (*Result, error) {
	strat, err := factory.New(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	return RunStrategy(candles, strat, cfg)
}

// RunStrategy is Run with an already initialized strategy
func RunStrategy(candles []core.Candle, strat strategy.Strategy, cfg Config) (*Result, error) {
	if len(candles) == 0 {
		return nil, core.WrapError(core.ErrInsufficientData, fmt.Errorf("backtest needs at least 1 candle"))
	}

	slippage := cfg.Strategy.Slippage
	if slippage < 0 || slippage > strategy.MaxSlippage {
		return nil, strategy.InvalidParam("slippage", slippage, fmt.Sprintf("[0, %v]", strategy.MaxSlippage))
	}

	wallet := cfg.InitialWallet
	if wallet == 0 {
		wallet = DefaultWallet
	}
	if wallet < 0 {
		return nil, core.WrapError(core.ErrInvalidParam, fmt.Errorf("initial wallet %v must be positive", wallet))
	}

	initial := run{
		state:     strategy.NewState(wallet, slippage),
		maxEquity: wallet,
		trades:    []core.Trade{},
		equity:    make([]EquityPoint, 0, len(candles)),
		events:    []MarketEvent{},
	}

	final := fold(candles, initial, func(acc run, t strategy.Tick) run {
		return step(acc, t, strat)
	})

	// the market settles: convert any open position to cash
	last := candles[len(candles)-1]
	if !final.state.Flat() {
		var exit *core.Trade
		final.state, exit = final.state.Sell(last.Close, last.Timestamp, "RESOLUTION EXIT",
			"Position closed at market resolution")
		final.trades = append(final.trades, *exit)
	}

	return &Result{
		ID:          uuid.NewString(),
		Strategy:    strat.Name(),
		Description: strat.Description(),
		Slippage:    slippage,
		Trades:      final.trades,
		Equity:      final.equity,
		Events:      final.events,
		Baselines:   Baselines(candles, wallet, cfg.EntryPicker),
		Stats:       CalculateStats(final.trades, wallet, final.state.Wallet, final.maxDrawdown),
	}, nil
}

// fold reduces the candle sequence into an accumulator
func fold(candles []core.Candle, acc run, fn func(run, strategy.Tick) run) run {
	for i := range candles {
		t := strategy.Tick{Index: i, Total: len(candles), Candle: candles[i]}
		if i > 0 {
			t.Prev = &candles[i-1]
		}
		acc = fn(acc, t)
	}
	return acc
}

// step processes one candle: events, strategy, equity mark
func step(acc run, t strategy.Tick, strat strategy.Strategy) run {
	c := t.Candle

	acc.events = append(acc.events, DetectEvents(c, t.Prev)...)

	var trade *core.Trade
	acc.state, trade = strat.OnCandle(acc.state, t)
	if trade != nil {
		acc.trades = append(acc.trades, *trade)
	}

	equity := acc.state.Equity(c.Close)
	if equity > acc.maxEquity {
		acc.maxEquity = equity
	}
	if acc.maxEquity > 0 {
		if dd := (acc.maxEquity - equity) / acc.maxEquity; dd > acc.maxDrawdown {
			acc.maxDrawdown = dd
		}
	}

	acc.equity = append(acc.equity, EquityPoint{
		Timestamp: c.Timestamp,
		Equity:    equity,
		Drawdown:  acc.maxDrawdown * 100,
	})
	return acc
}
