package cli

import (
	"context"
	"fmt"

	"gink/src/config"
	"gink/src/internal/common"
	"gink/src/internal/errors"
	versionpkg "gink/src/internal/version"
	"gink/src/server"
)

// RunServer initialises the process logger from cfg and runs the server until
// the batch completes or the process is interrupted.
func RunServer(ctx context.Context, port uint16, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logOptions, err := cfg.LogOptions()
	if err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}
	logger, err := common.NewLogger(logOptions)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := common.SignalContext(ctx)
	defer stop()

	logger.Debug("%s", versionpkg.GetFullVersionInfo())
	return errors.WrapWithContext("server", server.Serve(ctx, port, cfg, logger))
}

// IsValidationError reports whether err is a configuration validation error.
// It forwards to the internal errors package for callers outside src/.
func IsValidationError(err error) bool {
	return errors.IsValidationError(err)
}
