package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper: write a config file into a temp dir and return its path
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestDefault verifies the built-in configuration
func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultSourceURL, cfg.SourceURL)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.RunLogDSN)
	assert.NoError(t, cfg.Validate())
}

// TestLoadConfigFile_Missing verifies a missing file is not an error
func TestLoadConfigFile_Missing(t *testing.T) {
	fc, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Nil(t, fc)
}

// TestLoadConfigFile_Invalid verifies a malformed file is an error
func TestLoadConfigFile_Invalid(t *testing.T) {
	path := writeConfigFile(t, "workers: [not an int\n")

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}

// TestLoad_FileOverridesDefaults verifies file values overlay defaults
func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
source_url: https://example.com/menu
output_dir: /tmp/resto
workers: 2
http_timeout: 30s
log_level: info
runlog_dsn: runs.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/menu", cfg.SourceURL)
	assert.Equal(t, "/tmp/resto", cfg.OutputDir)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "runs.db", cfg.RunLogDSN)
}

// TestLoad_PartialFileKeepsDefaults verifies absent keys keep their
// defaults
func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, "output_dir: /tmp/resto\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/resto", cfg.OutputDir)
	assert.Equal(t, DefaultSourceURL, cfg.SourceURL)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

// TestLoad_EnvOverridesFile verifies the environment wins over the file
func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "workers: 2\noutput_dir: /tmp/from-file\n")
	t.Setenv("VUBRESTO_WORKERS", "8")
	t.Setenv("VUBRESTO_HTTP_TIMEOUT", "1m")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, time.Minute, cfg.HTTPTimeout)
	assert.Equal(t, "/tmp/from-file", cfg.OutputDir, "untouched keys keep file values")
}

// TestLoad_BadEnvValueIgnored verifies unparseable env values fall through
func TestLoad_BadEnvValueIgnored(t *testing.T) {
	path := writeConfigFile(t, "workers: 2\n")
	t.Setenv("VUBRESTO_WORKERS", "many")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Workers)
}

// TestLoad_InvalidFileTimeout verifies a malformed duration in the file is
// an error rather than silently ignored
func TestLoad_InvalidFileTimeout(t *testing.T) {
	path := writeConfigFile(t, "http_timeout: soonish\n")

	_, err := Load(path)
	assert.Error(t, err)
}

// TestValidate_Sentinels verifies each validation error
func TestValidate_Sentinels(t *testing.T) {
	cfg := Default()
	cfg.SourceURL = ""
	assert.ErrorIs(t, cfg.Validate(), ErrMissingSourceURL)

	cfg = Default()
	cfg.OutputDir = ""
	assert.ErrorIs(t, cfg.Validate(), ErrMissingOutputDir)

	cfg = Default()
	cfg.Workers = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidWorkers)

	cfg = Default()
	cfg.HTTPTimeout = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidTimeout)

	cfg = Default()
	cfg.LogLevel = "loud"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidLogLevel)
}

// TestLevel verifies the slog level mapping
func TestLevel(t *testing.T) {
	cfg := Default()

	cfg.LogLevel = "debug"
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	cfg.LogLevel = "info"
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	cfg.LogLevel = "warn"
	assert.Equal(t, slog.LevelWarn, cfg.Level())
	cfg.LogLevel = "error"
	assert.Equal(t, slog.LevelError, cfg.Level())
}
