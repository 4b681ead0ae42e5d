package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	require.NotNil(t, reg)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	// Should have go runtime metrics at minimum
	assert.NotEmpty(t, mfs)
}

func TestRegistry_RecordCandles(t *testing.T) {
	reg := NewRegistry()

	reg.RecordCandles(5)
	reg.RecordCandles(3)

	assert.Equal(t, 8.0, testutil.ToFloat64(reg.candlesSynthesized))
}

func TestRegistry_RecordSignalsAndMoments(t *testing.T) {
	reg := NewRegistry()

	reg.RecordSignal("BUY")
	reg.RecordSignal("BUY")
	reg.RecordSignal("INFO")
	reg.RecordKeyMoment("price_spike")
	reg.RecordValidationFailure("high_below_body")

	assert.Equal(t, 2.0, testutil.ToFloat64(reg.signalsGenerated.WithLabelValues("BUY")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.signalsGenerated.WithLabelValues("INFO")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.keyMoments.WithLabelValues("price_spike")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.validationFailures.WithLabelValues("high_below_body")))
}

func TestRegistry_RecordBacktest(t *testing.T) {
	reg := NewRegistry()

	reg.RecordBacktest("EARLY_ENTRY", "success", 0.002)
	reg.RecordBacktest("EARLY_ENTRY", "error", 0.001)
	reg.RecordTrade("EARLY_ENTRY", "BUY")

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.backtestsTotal.WithLabelValues("EARLY_ENTRY", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.backtestsTotal.WithLabelValues("EARLY_ENTRY", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.tradesTotal.WithLabelValues("EARLY_ENTRY", "BUY")))
	assert.Equal(t, 1, testutil.CollectAndCount(reg.backtestDuration))
}

func TestRegistry_WriteTextfile(t *testing.T) {
	reg := NewRegistry()
	reg.RecordSimulation("YES")

	path := filepath.Join(t.TempDir(), "opinionlab.prom")
	require.NoError(t, reg.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `opinionlab_simulations_total{side="YES"} 1`))
}
