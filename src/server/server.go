package server

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"gink/src/config"
	"gink/src/internal/common"
	"gink/src/internal/errors"
	"gink/src/internal/models/gink"
	"gink/src/server/aggregators"
	"gink/src/server/aggregators/base"
)

// bootTimestamp stamps the change set built at startup
const bootTimestamp = 1234

// Server runs the startup batch. The port is recorded for the peer listener
// that will eventually be served from here; nothing listens on it yet.
type Server struct {
	port     uint16
	batch    config.BatchConfig
	logger   *common.SafeLogger
	registry *prometheus.Registry
}

// NewServer validates the batch configuration. cfg is not modified; a nil cfg
// or batch section means the defaults.
func NewServer(port uint16, cfg *config.Config, logger *common.SafeLogger) (*Server, error) {
	batch := *config.GetDefaultConfig().Batch
	if cfg != nil && cfg.Batch != nil {
		batch = *cfg.Batch
	}
	if logger == nil {
		logger = common.NopLogger()
	}

	if err := batch.Validate(); err != nil {
		return nil, errors.WrapWithContext("invalid batch configuration", err)
	}

	return &Server{
		port:     port,
		batch:    batch,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}, nil
}

// Run builds the boot change set, runs the batch and logs the sum
func (s *Server) Run(ctx context.Context) (uint64, error) {
	s.logger.Info("I'm a server on %d", s.port)

	changeSet := gink.NewChangeSet(bootTimestamp)
	s.logger.Debug("Boot change set: %v", changeSet)

	s.logger.Info("Spawning %d tasks...", s.batch.Units)
	outcome, err := RunDelayedSum(ctx, s.batch, s.logger.Named("Aggregator"), s.registry)
	if err != nil {
		switch {
		case errors.IsUnitFault(err):
			s.logger.Error("No sum calculated, %d of %d work units failed %v",
				outcome.Failed, s.batch.Units, outcome.FailedIndexes)
		case errors.IsCancellationError(err):
			s.logger.Warn("Interrupted before the sum was calculated (%d of %d units done)",
				outcome.Completed, s.batch.Units)
		}
		return 0, errors.WrapWithContext(fmt.Sprintf("batch %s", outcome.BatchID), err)
	}

	s.logger.Info("Calculated sum: %d", outcome.Value)
	return outcome.Value, nil
}

// Port returns the port the server was configured with
func (s *Server) Port() uint16 {
	return s.port
}

// Metrics exposes the aggregator collectors for a future exposition endpoint
func (s *Server) Metrics() prometheus.Gatherer {
	return s.registry
}

// RunDelayedSum runs one batch of delayed index units and folds their sum.
// Aggregator metrics are registered on reg when it is not nil.
func RunDelayedSum(ctx context.Context, batch config.BatchConfig, logger *common.SafeLogger, reg prometheus.Registerer) (base.Outcome[uint64], error) {
	policy, err := base.ParseFailurePolicy(batch.Policy)
	if err != nil {
		return base.Outcome[uint64]{}, err
	}

	summer := aggregators.NewDelayedSumAggregator(base.Options{
		Concurrency: batch.Concurrency,
		Policy:      policy,
		Logger:      logger,
		Metrics:     base.NewMetrics(reg),
	})
	return summer.Run(ctx, batch.Units, batch.Delay)
}

// Serve creates a server and runs it once
func Serve(ctx context.Context, port uint16, cfg *config.Config, logger *common.SafeLogger) error {
	srv, err := NewServer(port, cfg, logger)
	if err != nil {
		return err
	}
	_, err = srv.Run(ctx)
	return err
}
