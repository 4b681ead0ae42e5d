package app

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/newthinker/opinionlab/internal/backtest"
	"github.com/newthinker/opinionlab/internal/candle"
	"github.com/newthinker/opinionlab/internal/config"
	"github.com/newthinker/opinionlab/internal/core"
	"github.com/newthinker/opinionlab/internal/logger"
	"github.com/newthinker/opinionlab/internal/metrics"
	"github.com/newthinker/opinionlab/internal/outcome"
	"github.com/newthinker/opinionlab/internal/storage/snapshot"
	"github.com/newthinker/opinionlab/internal/strategy"
	"github.com/newthinker/opinionlab/internal/technical"
	"go.uber.org/zap"
)

// MetaFile is the metadata snapshot looked up next to a price history
const MetaFile = "meta.json"

// App is the main application orchestrator. It loads snapshots from the
// configured source and runs them through the engines.
type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	source  snapshot.Source
	metrics *metrics.Registry // nil when disabled
	now     func() time.Time
}

// CandleSet is a synthesized candle series with its diagnostics
type CandleSet struct {
	Candles []core.Candle `json:"candles"`
	Valid   bool          `json:"valid"`
	Rule    candle.Rule   `json:"rule,omitempty"`
	Reason  string        `json:"reason,omitempty"`
	Quality float64       `json:"quality"`
}

// Settlement is the realized result of a position in a resolved market
type Settlement struct {
	Winner core.Outcome `json:"winner"`
	PnL    float64      `json:"pnl"`
}

// Simulation is an outcome simulation with its payoff curve
type Simulation struct {
	outcome.Result
	Payoff  []outcome.PayoffPoint `json:"payoff"`
	Settled *Settlement           `json:"settled,omitempty"`
}

// New creates a new App instance
func New(cfg *config.Config, source snapshot.Source, m *metrics.Registry, log *zap.Logger) *App {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return &App{
		cfg:     cfg,
		logger:  logger.OrNop(log),
		source:  source,
		metrics: m,
		now:     time.Now,
	}
}

// NewSource builds the snapshot source named by the config
func NewSource(cfg config.SourceConfig) (snapshot.Source, error) {
	switch cfg.Type {
	case "localfs", "":
		return snapshot.NewLocalFS(cfg.Path)
	case "s3":
		return snapshot.NewS3(snapshot.S3Config{
			Bucket:    cfg.S3.Bucket,
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Prefix:    cfg.S3.Prefix,
		})
	default:
		return nil, core.WrapError(core.ErrConfigInvalid, fmt.Errorf("unknown source type %q", cfg.Type))
	}
}

// ListSnapshots returns the snapshot paths under prefix
func (a *App) ListSnapshots(ctx context.Context, prefix string) ([]string, error) {
	paths, err := a.source.List(ctx, prefix)
	if err != nil {
		return nil, core.WrapError(core.ErrSourceFailed, fmt.Errorf("listing %q: %w", prefix, err))
	}
	return paths, nil
}

// LoadMeta reads market metadata from the snapshot source
func (a *App) LoadMeta(ctx context.Context, path string) (*core.MarketMeta, error) {
	meta, err := snapshot.LoadMarketMeta(ctx, a.source, path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded market metadata", zap.String("id", meta.ID), zap.String("status", string(meta.Status)))
	return meta, nil
}

// DiscoverMeta loads the metadata snapshot stored next to historyPath.
// It returns nil without error when there is none.
func (a *App) DiscoverMeta(ctx context.Context, historyPath string) (*core.MarketMeta, error) {
	metaPath := path.Join(path.Dir(historyPath), MetaFile)
	if metaPath == historyPath {
		return nil, nil
	}
	ok, err := a.source.Exists(ctx, metaPath)
	if err != nil {
		return nil, core.WrapError(core.ErrSourceFailed, fmt.Errorf("checking %s: %w", metaPath, err))
	}
	if !ok {
		return nil, nil
	}
	return a.LoadMeta(ctx, metaPath)
}

// BuildCandles loads a price history and synthesizes a validated candle
// series. meta is optional and only feeds the quality score.
func (a *App) BuildCandles(ctx context.Context, historyPath string, meta *core.MarketMeta) (*CandleSet, error) {
	points, err := snapshot.LoadPriceHistory(ctx, a.source, historyPath)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, core.WrapError(core.ErrNoData, fmt.Errorf("no price points in %s", historyPath))
	}

	candles := candle.Synthesize(points)
	if a.cfg.Candles.FillGaps && a.cfg.Candles.Interval > 0 {
		before := len(candles)
		candles = candle.FillGaps(candles, a.cfg.Candles.Interval.Milliseconds())
		if filled := len(candles) - before; filled > 0 {
			a.logger.Debug("filled candle gaps", zap.Int("fillers", filled))
		}
	}

	report := a.validate(historyPath, candles)

	// unknown status scores no resolution points
	var volume float64
	var status core.MarketStatus
	if meta != nil {
		volume = meta.VolumeTotal
		status = meta.Status
	} else {
		for _, c := range candles {
			volume += c.Volume
		}
	}

	if a.metrics != nil {
		a.metrics.RecordCandles(len(candles))
	}
	a.logger.Info("candles synthesized",
		zap.String("path", historyPath),
		zap.Int("points", len(points)),
		zap.Int("candles", len(candles)),
		zap.Time("from", candles[0].Time()),
		zap.Time("to", candles[len(candles)-1].Time()),
		zap.Bool("valid", report.Valid),
	)

	return &CandleSet{
		Candles: candles,
		Valid:   report.Valid,
		Rule:    report.Rule,
		Reason:  report.Reason,
		Quality: candle.QualityScore(volume, status, len(candles)),
	}, nil
}

func (a *App) validate(path string, candles []core.Candle) candle.Report {
	report := candle.Validate(candles)
	if !report.Valid {
		a.logger.Warn("candle validation failed",
			zap.String("path", path),
			zap.String("rule", string(report.Rule)),
			zap.String("reason", report.Reason),
			zap.Int("index", report.Index),
		)
		if a.metrics != nil {
			a.metrics.RecordValidationFailure(string(report.Rule))
		}
	}
	return report
}

// Analyze runs the technical signal pass over the YES history and an
// optional NO history. aggregateVolume is spread across the ticks.
func (a *App) Analyze(ctx context.Context, yesPath, noPath string, aggregateVolume float64) (technical.Analysis, error) {
	yes, err := snapshot.LoadPriceHistory(ctx, a.source, yesPath)
	if err != nil {
		return technical.Analysis{}, err
	}

	var no []core.PricePoint
	if noPath != "" {
		no, err = snapshot.LoadPriceHistory(ctx, a.source, noPath)
		if err != nil {
			return technical.Analysis{}, err
		}
	}

	analysis := technical.Analyze(yes, no, technical.Config{
		Window:          a.cfg.Signals.Window,
		AggregateVolume: aggregateVolume,
	})

	if a.metrics != nil {
		for _, snap := range analysis.Snapshots {
			for _, sig := range snap.Signals {
				a.metrics.RecordSignal(string(sig.Type))
			}
		}
		for _, m := range analysis.Moments {
			a.metrics.RecordKeyMoment(string(m.Type))
		}
	}

	a.logger.Info("analysis complete",
		zap.Int("ticks", len(analysis.Snapshots)),
		zap.Int("moments", len(analysis.Moments)),
	)
	return analysis, nil
}

// Backtest synthesizes candles from a price history and replays a strategy
// over them. Invalid candle series are rejected before the run.
func (a *App) Backtest(ctx context.Context, historyPath string, sc strategy.Config) (*backtest.Result, error) {
	set, err := a.BuildCandles(ctx, historyPath, nil)
	if err != nil {
		return nil, err
	}
	if !set.Valid {
		a.recordBacktest(sc.Type, "invalid", 0)
		return nil, candle.Report{Rule: set.Rule, Reason: set.Reason}.Err()
	}
	return a.RunCandles(set.Candles, sc)
}

// BacktestCandles replays a strategy over a pre-built candle snapshot
func (a *App) BacktestCandles(ctx context.Context, candlesPath string, sc strategy.Config) (*backtest.Result, error) {
	candles, err := snapshot.LoadCandles(ctx, a.source, candlesPath)
	if err != nil {
		return nil, err
	}
	if report := a.validate(candlesPath, candles); !report.Valid {
		a.recordBacktest(sc.Type, "invalid", 0)
		return nil, report.Err()
	}
	return a.RunCandles(candles, sc)
}

// RunCandles replays a strategy over an already validated candle series
func (a *App) RunCandles(candles []core.Candle, sc strategy.Config) (*backtest.Result, error) {
	cfg := backtest.Config{
		InitialWallet: a.cfg.Backtest.InitialWallet,
		Strategy:      sc,
	}
	if a.cfg.Backtest.RandomBaseline {
		cfg.EntryPicker = backtest.NewRandomEntry(a.cfg.Backtest.Seed)
	}

	start := time.Now()
	result, err := backtest.Run(candles, cfg)
	duration := time.Since(start).Seconds()
	if err != nil {
		a.logger.Error("backtest failed",
			zap.String("strategy", string(sc.Type)),
			zap.Strings("params", sc.Params.Keys()),
			zap.Error(err),
		)
		a.recordBacktest(sc.Type, "error", duration)
		return nil, err
	}

	a.recordBacktest(sc.Type, "success", duration)
	if a.metrics != nil {
		for _, t := range result.Trades {
			a.metrics.RecordTrade(result.Strategy, string(t.Side))
		}
	}

	a.logger.Info("backtest complete",
		zap.String("id", result.ID),
		zap.String("strategy", result.Strategy),
		zap.Strings("params", sc.Params.Keys()),
		zap.Int("candles", len(candles)),
		zap.Int("trades", result.Stats.TotalTrades),
		zap.Float64("return_pct", result.Stats.ReturnPercentage),
		zap.Float64("max_drawdown", result.Stats.MaxDrawdown),
	)
	return result, nil
}

// Simulate computes the payoff table and curve of a hypothetical position.
// With market metadata, an unset lock duration is derived from the
// resolution time, and a resolved market also reports the settled pnl.
func (a *App) Simulate(in outcome.Input, meta *core.MarketMeta) (*Simulation, error) {
	if meta != nil && in.LockDurationDays == 0 {
		in.LockDurationDays = outcome.DaysUntil(meta.ResolutionTime, a.now())
	}

	result, err := outcome.Simulate(in)
	if err != nil {
		return nil, err
	}

	sim := &Simulation{Result: result, Payoff: outcome.PayoffCurve(result)}
	if meta != nil && meta.Status == core.StatusResolved {
		winner := outcome.ClassifyResolution(*meta)
		sim.Settled = &Settlement{Winner: winner, PnL: outcome.SettledPnL(result, winner)}
	}

	if a.metrics != nil {
		a.metrics.RecordSimulation(string(in.Side))
	}
	a.logger.Debug("simulated position",
		zap.String("side", string(in.Side)),
		zap.Float64("size", in.PositionSize),
		zap.Float64("break_even", result.BreakEvenPrice),
		zap.Float64("lock_days", result.LockDurationDays),
	)
	return sim, nil
}

// Flush writes the metrics textfile when one is configured
func (a *App) Flush() error {
	if a.metrics == nil || a.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

func (a *App) recordBacktest(t strategy.Type, status string, duration float64) {
	if a.metrics != nil {
		a.metrics.RecordBacktest(string(t), status, duration)
	}
}
