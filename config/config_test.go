package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/burrow/config"
)

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "burrow.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"puzzles/day23.txt", "puzzles/example.txt"}, cfg.Inputs)
	assert.True(t, cfg.Both)
	assert.False(t, cfg.Unfold)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, int64(60000), cfg.MaxCost)
	assert.True(t, cfg.ShowPath)
	assert.Equal(t, config.LoggingConfig{Level: "debug", Format: config.FormatJSON}, cfg.Logging)
	assert.Equal(t, "/tmp/burrow.prom", cfg.Metrics.Textfile)
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_NamedFileMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "bad_workers.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(filepath.Join("testdata", "bad_yaml.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{"defaults", func(*config.Config) {}, true},
		{"negative max cost", func(c *config.Config) { c.MaxCost = -1 }, false},
		{"unfold and both", func(c *config.Config) { c.Unfold, c.Both = true, true }, false},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }, false},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, false},
		{"empty logging", func(c *config.Config) { c.Logging = config.LoggingConfig{} }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
			}
		})
	}
}

func TestLoggingConfig_Build(t *testing.T) {
	for _, format := range []string{config.FormatJSON, config.FormatConsole, ""} {
		l, err := config.LoggingConfig{Level: "info", Format: format}.Build()
		require.NoError(t, err, format)
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	}

	l, err := config.LoggingConfig{}.Build()
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = config.LoggingConfig{Level: "nope"}.Build()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
