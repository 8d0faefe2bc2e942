package session

import (
	"io"
	"log/slog"
	"time"
)

// CleanerConfig holds expired-session cleanup settings loaded from the environment.
type CleanerConfig struct {
	Interval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"1h"` // Time between cleanup runs
	Timeout  time.Duration `env:"SESSION_CLEANUP_TIMEOUT" envDefault:"5m"`  // Upper bound for a single run
}

// cleanerOptions holds the resolved cleaner settings.
type cleanerOptions struct {
	interval   time.Duration
	timeout    time.Duration
	runOnStart bool
	logger     *slog.Logger
}

// defaultCleanerOptions returns default configuration.
func defaultCleanerOptions() *cleanerOptions {
	return &cleanerOptions{
		interval:   time.Hour,
		timeout:    5 * time.Minute,
		runOnStart: true,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// CleanerOption is a functional option for configuring the cleaner.
type CleanerOption func(*cleanerOptions)

// WithInterval sets the time between cleanup runs. Non-positive values are ignored.
func WithInterval(interval time.Duration) CleanerOption {
	return func(o *cleanerOptions) {
		if interval > 0 {
			o.interval = interval
		}
	}
}

// WithTimeout bounds a single cleanup run.
// Set to 0 to rely on the parent context only.
func WithTimeout(timeout time.Duration) CleanerOption {
	return func(o *cleanerOptions) {
		o.timeout = timeout
	}
}

// WithRunOnStart controls whether Run performs a cleanup before the first tick.
func WithRunOnStart(enabled bool) CleanerOption {
	return func(o *cleanerOptions) {
		o.runOnStart = enabled
	}
}

// WithLogger sets the cleaner logger.
func WithLogger(logger *slog.Logger) CleanerOption {
	return func(o *cleanerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
