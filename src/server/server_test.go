package server

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"gink/src/config"
	"gink/src/internal/common"
	"gink/src/internal/errors"
)

func testConfig(units int, delay time.Duration) *config.Config {
	cfg := config.GetDefaultConfig()
	cfg.Batch.Units = units
	cfg.Batch.Delay = delay
	return cfg
}

func TestServer_RunLogsSum(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := common.NewLoggerWithCore("", core)

	srv, err := NewServer(8080, testConfig(1000, 10*time.Millisecond), logger)
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), srv.Port())

	sum, err := srv.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(499500), sum)

	assert.Equal(t, 1, logs.FilterMessage("I'm a server on 8080").Len())
	assert.Equal(t, 1, logs.FilterMessage("Spawning 1000 tasks...").Len())
	assert.Equal(t, 1, logs.FilterMessage("Calculated sum: 499500").Len())
}

func TestServer_MetricsGathered(t *testing.T) {
	srv, err := NewServer(0, testConfig(50, 0), nil)
	require.NoError(t, err)

	_, err = srv.Run(context.Background())
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(srv.Metrics(), "gink_aggregator_units_completed_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewServer_Defaults(t *testing.T) {
	srv, err := NewServer(1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultUnits, srv.batch.Units)
	assert.Equal(t, config.DefaultDelay, srv.batch.Delay)
}

func TestNewServer_InvalidBatch(t *testing.T) {
	cfg := testConfig(-1, 0)
	_, err := NewServer(1, cfg, nil)
	assert.True(t, errors.IsValidationError(err))

	cfg = testConfig(1, 0)
	cfg.Batch.Policy = "retry"
	_, err = NewServer(1, cfg, nil)
	assert.True(t, errors.IsValidationError(err))
}

func TestServe_Cancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Serve(ctx, 0, testConfig(100, time.Hour), common.NopLogger())

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, context.DeadlineExceeded))
}

func TestServe_EmptyBatch(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	err := Serve(context.Background(), 0, testConfig(0, time.Hour), common.NewLoggerWithCore("", core))

	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Calculated sum: 0").Len())
}

func TestServer_RunTwice(t *testing.T) {
	srv, err := NewServer(0, testConfig(10, 0), nil)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		sum, err := srv.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint64(45), sum)
	}
}

func TestRunDelayedSum_BestEffort(t *testing.T) {
	batch := config.BatchConfig{Units: 20, Concurrency: 4, Policy: config.PolicyBestEffort}

	outcome, err := RunDelayedSum(context.Background(), batch, common.NopLogger(), nil)

	require.NoError(t, err)
	assert.Equal(t, uint64(190), outcome.Value)
	assert.Equal(t, 20, outcome.Completed)
	assert.NotEmpty(t, outcome.BatchID)
}

func TestRunDelayedSum_UnknownPolicy(t *testing.T) {
	batch := config.BatchConfig{Units: 1, Policy: "retry"}

	_, err := RunDelayedSum(context.Background(), batch, common.NopLogger(), nil)

	assert.True(t, errors.IsValidationError(err))
}

func TestNewServer_DoesNotModifyConfig(t *testing.T) {
	cfg := &config.Config{}

	srv, err := NewServer(1, cfg, nil)

	require.NoError(t, err)
	assert.Nil(t, cfg.Batch)
	assert.Equal(t, config.DefaultUnits, srv.batch.Units)
}

func TestServer_RunLogsInterruption(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	srv, err := NewServer(0, testConfig(10, time.Hour), common.NewLoggerWithCore("", core))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = srv.Run(ctx)

	require.Error(t, err)
	assert.True(t, errors.IsCancellationError(err))
	assert.Contains(t, err.Error(), "batch ")
	assert.Equal(t, 1, logs.FilterMessageSnippet("Interrupted before the sum was calculated (0 of 10 units done)").Len())
	assert.Zero(t, logs.FilterMessageSnippet("Calculated sum").Len())
}
