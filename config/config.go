// Package config loads the burrow CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log formats understood by LoggingConfig.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds the solve command settings. Flags given on the command
// line override the file.
type Config struct {
	Inputs   []string      `yaml:"inputs"`
	Unfold   bool          `yaml:"unfold"`
	Both     bool          `yaml:"both"`
	Workers  int           `yaml:"workers"`
	MaxCost  int64         `yaml:"max_cost"`
	ShowPath bool          `yaml:"show_path"`
	Logging  LoggingConfig `yaml:"logging"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// LoggingConfig selects the zap encoder and level.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile dump.
type MetricsConfig struct {
	// Textfile, when set, receives the collected metrics after a run.
	Textfile string `yaml:"textfile"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Workers: 0, // runtime.NumCPU()
		MaxCost: 0, // no cap
		Logging: LoggingConfig{
			Level:  "warn",
			Format: FormatConsole,
		},
	}
}

// Load reads path over Default. An empty path yields the defaults; a named
// file that cannot be read is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first field holding an unusable value.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative (%d)", ErrInvalidConfig, c.Workers)
	}
	if c.MaxCost < 0 {
		return fmt.Errorf("%w: max_cost must not be negative (%d)", ErrInvalidConfig, c.MaxCost)
	}
	if c.Unfold && c.Both {
		return fmt.Errorf("%w: unfold and both are mutually exclusive", ErrInvalidConfig)
	}
	if _, err := c.Logging.level(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "", FormatJSON, FormatConsole:
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

func (l LoggingConfig) level() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return lvl, fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	return lvl, nil
}

// Build creates a logger writing to stderr. json uses the zap production
// encoder, console the development one.
func (l LoggingConfig) Build() (*zap.Logger, error) {
	lvl, err := l.level()
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	switch l.Format {
	case FormatJSON:
		zc = zap.NewProductionConfig()
	case "", FormatConsole:
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, l.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}
	return logger, nil
}
