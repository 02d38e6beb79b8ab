// Package config builds the runtime configuration for the menu scraper.
// Precedence, lowest to highest: built-in defaults, the optional YAML
// config file, VUBRESTO_* environment variables. Command-line flags are
// applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingSourceURL = errors.New("source_url is required")
	ErrMissingOutputDir = errors.New("output_dir is required")
	ErrInvalidWorkers   = errors.New("workers must be at least 1")
	ErrInvalidTimeout   = errors.New("http_timeout must be positive")
	ErrInvalidLogLevel  = errors.New("log_level must be one of: debug, info, warn, error")
)

// Defaults.
const (
	DefaultSourceURL   = "https://student.vub.be/en/menu-vub-student-restaurant"
	DefaultOutputDir   = "./resto"
	DefaultWorkers     = 4
	DefaultHTTPTimeout = 10 * time.Second
	DefaultLogLevel    = "warn"
)

// Config carries every runtime setting for one scraper run. It is
// constructed once in main and passed by reference into each component;
// nothing reads ambient globals.
type Config struct {
	SourceURL   string
	OutputDir   string
	Workers     int
	HTTPTimeout time.Duration
	LogLevel    string
	RunLogDSN   string
}

// FileConfig mirrors the optional YAML config file.
type FileConfig struct {
	SourceURL   string `yaml:"source_url"`
	OutputDir   string `yaml:"output_dir"`
	Workers     int    `yaml:"workers"`
	HTTPTimeout string `yaml:"http_timeout"` // Go duration string, e.g. "10s"
	LogLevel    string `yaml:"log_level"`
	RunLogDSN   string `yaml:"runlog_dsn"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SourceURL:   DefaultSourceURL,
		OutputDir:   DefaultOutputDir,
		Workers:     DefaultWorkers,
		HTTPTimeout: DefaultHTTPTimeout,
		LogLevel:    DefaultLogLevel,
	}
}

// LoadConfigFile loads the YAML config file from the given path, or from
// ~/.vubresto/config.yaml when path is empty. Returns nil if the file
// doesn't exist (not an error). Returns an error if the file exists but
// cannot be parsed.
func LoadConfigFile(path string) (*FileConfig, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".vubresto", "config.yaml")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil // File doesn't exist -- not an error
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &fc, nil
}

// Load builds the effective configuration from defaults, the config file
// and the environment, then validates it.
func Load(filePath string) (*Config, error) {
	cfg := Default()

	fc, err := LoadConfigFile(filePath)
	if err != nil {
		return nil, err
	}
	if fc != nil {
		if err := cfg.applyFile(fc); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFile overlays non-empty file values onto the config.
func (c *Config) applyFile(fc *FileConfig) error {
	if fc.SourceURL != "" {
		c.SourceURL = fc.SourceURL
	}
	if fc.OutputDir != "" {
		c.OutputDir = fc.OutputDir
	}
	if fc.Workers != 0 {
		c.Workers = fc.Workers
	}
	if fc.HTTPTimeout != "" {
		timeout, err := time.ParseDuration(fc.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("invalid http_timeout in config file: %w", err)
		}
		c.HTTPTimeout = timeout
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.RunLogDSN != "" {
		c.RunLogDSN = fc.RunLogDSN
	}
	return nil
}

// applyEnv overlays VUBRESTO_* environment variables onto the config.
// Unparseable numeric or duration values are ignored, keeping whatever was
// configured below them.
func (c *Config) applyEnv() {
	if val := os.Getenv("VUBRESTO_SOURCE_URL"); val != "" {
		c.SourceURL = val
	}
	if val := os.Getenv("VUBRESTO_OUTPUT_DIR"); val != "" {
		c.OutputDir = val
	}
	if val := os.Getenv("VUBRESTO_WORKERS"); val != "" {
		if workers, err := strconv.Atoi(val); err == nil {
			c.Workers = workers
		}
	}
	if val := os.Getenv("VUBRESTO_HTTP_TIMEOUT"); val != "" {
		if timeout, err := time.ParseDuration(val); err == nil {
			c.HTTPTimeout = timeout
		}
	}
	if val := os.Getenv("VUBRESTO_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv("VUBRESTO_RUNLOG_DSN"); val != "" {
		c.RunLogDSN = val
	}
}

// Validate checks the configuration for usability.
func (c *Config) Validate() error {
	if c.SourceURL == "" {
		return ErrMissingSourceURL
	}
	if c.OutputDir == "" {
		return ErrMissingOutputDir
	}
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.HTTPTimeout <= 0 {
		return ErrInvalidTimeout
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// Level maps the configured log level onto a slog level.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
