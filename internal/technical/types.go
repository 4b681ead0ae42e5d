package technical

import "github.com/newthinker/opinionlab/internal/core"

// Trend classifies the window momentum
type Trend string

const (
	TrendBullish Trend = "Bullish"
	TrendBearish Trend = "Bearish"
	TrendRanging Trend = "Ranging"
)

// Volatility classifies the window standard deviation
type Volatility string

const (
	VolatilityHigh   Volatility = "High"
	VolatilityMedium Volatility = "Medium"
	VolatilityLow    Volatility = "Low"
)

// VolumeStatus compares tick volume with the window average
type VolumeStatus string

const (
	VolumeAboveAverage VolumeStatus = "Above Average"
	VolumeNormal       VolumeStatus = "Normal"
	VolumeBelowAverage VolumeStatus = "Below Average"
)

// MomentType identifies a flagged key moment
type MomentType string

const (
	MomentPriceSpike       MomentType = "price_spike"
	MomentVolumeSurge      MomentType = "volume_surge"
	MomentSignalConfluence MomentType = "signal_confluence"
	MomentTrendReversal    MomentType = "trend_reversal"
)

// Severity ranks a key moment
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// Tick is one merged observation of both sides of a market
type Tick struct {
	Timestamp int64   `json:"timestamp"` // seconds
	Yes       float64 `json:"yes"`
	No        float64 `json:"no"`
	Volume    float64 `json:"volume"`
}

// Metrics is the rolling-window snapshot for a single tick
type Metrics struct {
	Trend           Trend        `json:"trend"`
	Momentum        float64      `json:"momentum"` // percent
	Volatility      Volatility   `json:"volatility"`
	VolatilityScore float64      `json:"volatility_score"`
	VolumeStatus    VolumeStatus `json:"volume_status"`
	ZScore          float64      `json:"z_score"`
	Mean            float64      `json:"mean"`
	StdDev          float64      `json:"std_dev"`
	AvgVolume       float64      `json:"avg_volume"`
}

// Snapshot bundles a tick with its metrics and signals
type Snapshot struct {
	Tick    Tick          `json:"tick"`
	Metrics Metrics       `json:"metrics"`
	Signals []core.Signal `json:"signals"`
	Overall core.Signal   `json:"overall"`
}

// KeyMoment flags unusual activity at an index of the series
type KeyMoment struct {
	Index     int        `json:"index"`
	Timestamp int64      `json:"timestamp"`
	Type      MomentType `json:"type"`
	Severity  Severity   `json:"severity"`
}

// Summary holds whole-series price statistics
type Summary struct {
	Count     int     `json:"count"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Avg       float64 `json:"avg"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
	StdDev    float64 `json:"std_dev"`
}

// Analysis is the full output of a signal pass
type Analysis struct {
	Snapshots []Snapshot  `json:"snapshots"`
	Moments   []KeyMoment `json:"moments"`
	Summary   Summary     `json:"summary"`
}
