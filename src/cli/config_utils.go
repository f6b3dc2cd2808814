package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gink/src/config"
)

// LoadConfigWithFallback loads the configuration at configPath. Without a path
// the default file is used when it exists; otherwise, or when loading fails,
// the defaults are returned.
func LoadConfigWithFallback(configPath string) *config.Config {
	if configPath != "" {
		loadedConfig, err := config.LoadConfig(configPath)
		if err != nil {
			CLILogger.Warn("Failed to load config from %s, using defaults: %v", configPath, err)
			return config.GetDefaultConfig()
		}
		return loadedConfig
	}

	// Try to load from default config file if it exists
	defaultConfigPath := config.GetDefaultConfigPath()
	if _, err := os.Stat(defaultConfigPath); err != nil {
		return config.GetDefaultConfig()
	}

	loadedConfig, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		CLILogger.Warn("Failed to load default config from %s, using defaults: %v", defaultConfigPath, err)
		return config.GetDefaultConfig()
	}
	return loadedConfig
}

// applyServerFlags copies explicitly set server flags over the loaded configuration
func applyServerFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	cfg.Server.Port = port
	if flags.Changed(FlagUnits) {
		cfg.Batch.Units = units
	}
	if flags.Changed(FlagDelay) {
		cfg.Batch.Delay = delay
	}
	if flags.Changed(FlagConcurrency) {
		cfg.Batch.Concurrency = concurrency
	}
	if flags.Changed(FlagPolicy) {
		cfg.Batch.Policy = policy
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid server options: %w", err)
	}
	return nil
}
