package base

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountUnits(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	aggregator := newSumAggregator(Options{Policy: BestEffort, Metrics: metrics})

	_, err := aggregator.Execute(context.Background(), 10, failingAt(0, 3, 5))
	require.Error(t, err)

	assert.Equal(t, float64(10), testutil.ToFloat64(metrics.unitsLaunched))
	assert.Equal(t, float64(8), testutil.ToFloat64(metrics.unitsCompleted))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.unitsFailed))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.unitsInFlight))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.batchDuration))

	count, err := testutil.GatherAndCount(reg, "gink_aggregator_units_launched_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var metrics *Metrics
	metrics.unitStarted()
	metrics.unitFinished(nil, false)
	metrics.observeBatch(0)

	aggregator := newSumAggregator(Options{})
	outcome, err := aggregator.Execute(context.Background(), 5, delayedIndex(0))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), outcome.Value)
}

func TestMetrics_UnregisteredWithoutRegistry(t *testing.T) {
	metrics := NewMetrics(nil)
	metrics.unitStarted()
	metrics.unitFinished(nil, false)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.unitsCompleted))
}

func TestMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewMetrics(reg)
	second := NewMetrics(reg)

	for _, metrics := range []*Metrics{first, second} {
		aggregator := newSumAggregator(Options{Metrics: metrics})
		_, err := aggregator.Execute(context.Background(), 4, delayedIndex(0))
		require.NoError(t, err)
	}

	assert.Equal(t, float64(8), testutil.ToFloat64(second.unitsCompleted))
	count, err := testutil.GatherAndCount(reg, "gink_aggregator_batch_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_FailFastCountsOneFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	aggregator := newSumAggregator(Options{Policy: FailFast, Metrics: metrics})

	outcome, err := aggregator.Execute(context.Background(), 1000, failingAt(50*time.Millisecond, 3))
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.unitsFailed))
	assert.Equal(t, float64(outcome.Cancelled), testutil.ToFloat64(metrics.unitsCancelled))
	assert.Equal(t, float64(outcome.Launched), testutil.ToFloat64(metrics.unitsCompleted)+
		testutil.ToFloat64(metrics.unitsFailed)+testutil.ToFloat64(metrics.unitsCancelled))
}
