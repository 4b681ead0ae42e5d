package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	candlesSynthesized prometheus.Counter
	validationFailures *prometheus.CounterVec
	signalsGenerated   *prometheus.CounterVec
	keyMoments         *prometheus.CounterVec
	backtestsTotal     *prometheus.CounterVec
	backtestDuration   prometheus.Histogram
	tradesTotal        *prometheus.CounterVec
	simulationsTotal   *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		candlesSynthesized: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "opinionlab_candles_synthesized_total",
				Help: "Total number of candles synthesized from price history",
			},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opinionlab_candle_validation_failures_total",
				Help: "Total number of candle series rejected by validation",
			},
			[]string{"rule"},
		),
		signalsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opinionlab_signals_generated_total",
				Help: "Total number of technical signals generated",
			},
			[]string{"type"},
		),
		keyMoments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opinionlab_key_moments_total",
				Help: "Total number of key moments detected",
			},
			[]string{"type"},
		),
		backtestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opinionlab_backtests_total",
				Help: "Total number of backtests",
			},
			[]string{"strategy", "status"},
		),
		backtestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "opinionlab_backtest_duration_seconds",
				Help:    "Backtest duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
		tradesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opinionlab_backtest_trades_total",
				Help: "Total number of trades executed in backtests",
			},
			[]string{"strategy", "side"},
		),
		simulationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opinionlab_simulations_total",
				Help: "Total number of outcome simulations",
			},
			[]string{"side"},
		),
	}

	reg.MustRegister(r.candlesSynthesized)
	reg.MustRegister(r.validationFailures)
	reg.MustRegister(r.signalsGenerated)
	reg.MustRegister(r.keyMoments)
	reg.MustRegister(r.backtestsTotal)
	reg.MustRegister(r.backtestDuration)
	reg.MustRegister(r.tradesTotal)
	reg.MustRegister(r.simulationsTotal)

	return r
}

// RecordCandles records a synthesized candle series.
func (r *Registry) RecordCandles(count int) {
	r.candlesSynthesized.Add(float64(count))
}

// RecordValidationFailure records a rejected candle series by the rule it
// failed.
func (r *Registry) RecordValidationFailure(rule string) {
	r.validationFailures.WithLabelValues(rule).Inc()
}

// RecordSignal records a generated signal.
func (r *Registry) RecordSignal(signalType string) {
	r.signalsGenerated.WithLabelValues(signalType).Inc()
}

// RecordKeyMoment records a detected key moment.
func (r *Registry) RecordKeyMoment(momentType string) {
	r.keyMoments.WithLabelValues(momentType).Inc()
}

// RecordBacktest records a backtest completion.
func (r *Registry) RecordBacktest(strategy, status string, duration float64) {
	r.backtestsTotal.WithLabelValues(strategy, status).Inc()
	r.backtestDuration.Observe(duration)
}

// RecordTrade records a backtest trade.
func (r *Registry) RecordTrade(strategy, side string) {
	r.tradesTotal.WithLabelValues(strategy, side).Inc()
}

// RecordSimulation records an outcome simulation.
func (r *Registry) RecordSimulation(side string) {
	r.simulationsTotal.WithLabelValues(side).Inc()
}

// WriteTextfile writes the current metric values in the text exposition
// format, for pickup by a node exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry)
}
