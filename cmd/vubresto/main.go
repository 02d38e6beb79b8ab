package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jvermeylen/vubresto"
	"github.com/jvermeylen/vubresto/config"
)

// logFileName is created inside the output directory, next to the JSON
// files, so one cron job produces one self-contained directory.
const logFileName = "menuparser.log"

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (default ~/.vubresto/config.yaml)")
	sourceURL := flag.String("url", "", "Menu page to fetch (VUBRESTO_SOURCE_URL)")
	outputDir := flag.String("out", "", "Directory for JSON and log output (VUBRESTO_OUTPUT_DIR)")
	workers := flag.Int("workers", 0, "Worker pool size (VUBRESTO_WORKERS)")
	timeout := flag.Duration("timeout", 0, "HTTP fetch timeout (VUBRESTO_HTTP_TIMEOUT)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (VUBRESTO_LOG_LEVEL)")
	runlogDSN := flag.String("runlog", "", "SQLite DSN for run history, empty disables it (VUBRESTO_RUNLOG_DSN)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override everything below them.
	if *sourceURL != "" {
		cfg.SourceURL = *sourceURL
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *timeout != 0 {
		cfg.HTTPTimeout = *timeout
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *runlogDSN != "" {
		cfg.RunLogDSN = *runlogDSN
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	var runLog *vubresto.RunStore
	if cfg.RunLogDSN != "" {
		runLog, err = vubresto.NewRunStore(cfg.RunLogDSN)
		if err != nil {
			// History is a side channel; the run proceeds without it.
			slog.Error("failed to open run history store", "dsn", cfg.RunLogDSN, "err", err)
		} else {
			defer runLog.Close()
		}
	}

	writer, err := vubresto.NewWriter(cfg.OutputDir)
	if err != nil {
		slog.Error("failed to prepare output directory", "dir", cfg.OutputDir, "err", err)
		os.Exit(1)
	}

	pipeline := &vubresto.Pipeline{
		SourceURL:   cfg.SourceURL,
		HTTPTimeout: cfg.HTTPTimeout,
		Workers:     cfg.Workers,
		Writer:      writer,
		Colors:      vubresto.DefaultColors(),
		RunLog:      runLog,
	}

	if err := pipeline.Run(); err != nil {
		slog.Error("run failed", "url", cfg.SourceURL, "err", err)
		os.Exit(1)
	}
}

// setupLogging routes slog to a log file inside the output directory as
// well as stderr, at the configured level.
func setupLogging(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(cfg.OutputDir, logFileName)
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stderr, logFile), &slog.HandlerOptions{
		Level: cfg.Level(),
	})
	slog.SetDefault(slog.New(handler))

	return logFile, nil
}
