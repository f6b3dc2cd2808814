package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"gink/src/internal/common"
	"gink/src/internal/errors"
)

// Failure policies understood by the task aggregator
const (
	PolicyFailFast   = "fail-fast"
	PolicyBestEffort = "best-effort"
)

// Reference batch parameters
const (
	DefaultUnits = 1_000_000
	DefaultDelay = 100 * time.Millisecond
)

// Config contains the gink server configuration
type Config struct {
	Server  *ServerConfig  `yaml:"server"`
	Batch   *BatchConfig   `yaml:"batch"`
	Logging *LoggingConfig `yaml:"logging"`
}

// ServerConfig holds the listener settings. The port is accepted but no
// listener is opened yet.
type ServerConfig struct {
	Port uint16 `yaml:"port"`
}

// BatchConfig describes the fan-out batch run by the server command
type BatchConfig struct {
	Units int           `yaml:"units"`
	Delay time.Duration `yaml:"delay"`
	// Concurrency caps the number of units in flight; 0 means no cap
	Concurrency int    `yaml:"concurrency"`
	Policy      string `yaml:"policy"`
}

// LoggingConfig configures the process-wide logger
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig loads configuration from a YAML file. Sections missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := GetDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.fillDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Validate checks every section for out-of-range values
func (c *Config) Validate() error {
	if c.Batch == nil {
		return errors.NewValidationError("batch", "batch configuration is required")
	}
	if err := c.Batch.Validate(); err != nil {
		return err
	}

	if c.Logging != nil {
		if _, err := common.ParseLogLevel(c.Logging.Level); err != nil {
			return errors.WrapValidationError("logging.level", err)
		}
		switch c.Logging.Format {
		case common.LogFormatConsole, common.LogFormatJSON:
		default:
			return errors.NewValidationError("logging.format", fmt.Sprintf("unknown format %q", c.Logging.Format))
		}
	}

	return nil
}

// Validate checks the batch parameters
func (b *BatchConfig) Validate() error {
	if b.Units < 0 {
		return errors.NewValidationError("batch.units", "must not be negative")
	}
	if b.Delay < 0 {
		return errors.NewValidationError("batch.delay", "must not be negative")
	}
	if b.Concurrency < 0 {
		return errors.NewValidationError("batch.concurrency", "must not be negative")
	}
	switch b.Policy {
	case PolicyFailFast, PolicyBestEffort:
	default:
		return errors.NewValidationError("batch.policy", fmt.Sprintf("unknown policy %q", b.Policy))
	}
	return nil
}

// LogOptions converts the logging section into logger options
func (c *Config) LogOptions() (common.LogOptions, error) {
	if c.Logging == nil {
		return common.LogOptions{Level: common.LogInfo, Format: common.LogFormatConsole}, nil
	}
	level, err := common.ParseLogLevel(c.Logging.Level)
	if err != nil {
		return common.LogOptions{}, err
	}
	return common.LogOptions{Level: level, Format: c.Logging.Format}, nil
}

func (c *Config) fillDefaults() {
	defaults := GetDefaultConfig()
	if c.Server == nil {
		c.Server = defaults.Server
	}
	if c.Batch == nil {
		c.Batch = defaults.Batch
	}
	if c.Batch.Policy == "" {
		c.Batch.Policy = PolicyFailFast
	}
	if c.Logging == nil {
		c.Logging = defaults.Logging
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".gink", "config.yaml")
}

// GetDefaultConfig returns the reference configuration: one million units of
// 100ms each, no concurrency cap, fail-fast.
func GetDefaultConfig() *Config {
	return &Config{
		Server: &ServerConfig{},
		Batch: &BatchConfig{
			Units:       DefaultUnits,
			Delay:       DefaultDelay,
			Concurrency: 0,
			Policy:      PolicyFailFast,
		},
		Logging: &LoggingConfig{
			Level:  "info",
			Format: common.LogFormatConsole,
		},
	}
}
