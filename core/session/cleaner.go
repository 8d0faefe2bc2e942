package session

import (
	"context"
	"time"

	"github.com/persontric/adapter-mongodb/core/logger"
)

// Cleaner periodically removes expired sessions through an Adapter.
// A failed run is logged and retried on the next tick.
type Cleaner struct {
	adapter Adapter
	opts    *cleanerOptions
}

// NewCleaner creates a cleaner for the given adapter.
func NewCleaner(adapter Adapter, opts ...CleanerOption) (*Cleaner, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	o := defaultCleanerOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Cleaner{adapter: adapter, opts: o}, nil
}

// NewCleanerFromConfig creates a cleaner using settings from cfg.
// Explicit options are applied after the config and take precedence.
func NewCleanerFromConfig(cfg CleanerConfig, adapter Adapter, opts ...CleanerOption) (*Cleaner, error) {
	base := []CleanerOption{
		WithInterval(cfg.Interval),
		WithTimeout(cfg.Timeout),
	}
	return NewCleaner(adapter, append(base, opts...)...)
}

// Interval returns the time between cleanup runs.
func (c *Cleaner) Interval() time.Duration {
	return c.opts.interval
}

// RunOnce removes expired sessions a single time.
func (c *Cleaner) RunOnce(ctx context.Context) error {
	if c.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := c.adapter.DeleteExpiredSessions(ctx); err != nil {
		c.opts.logger.ErrorContext(ctx, "Failed to delete expired sessions",
			logger.Component("session.cleaner"),
			logger.Action("delete_expired"),
			logger.Error(err),
		)
		return err
	}

	c.opts.logger.DebugContext(ctx, "Expired sessions deleted",
		logger.Component("session.cleaner"),
		logger.Action("delete_expired"),
		logger.Elapsed(start),
	)
	return nil
}

// Run blocks until ctx is cancelled, removing expired sessions every interval.
// Cancellation is a normal shutdown and returns nil.
func (c *Cleaner) Run(ctx context.Context) error {
	c.opts.logger.InfoContext(ctx, "Session cleanup started",
		logger.Component("session.cleaner"),
		logger.Duration(c.opts.interval),
	)

	if c.opts.runOnStart {
		_ = c.RunOnce(ctx)
	}

	ticker := time.NewTicker(c.opts.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.opts.logger.InfoContext(ctx, "Session cleanup stopped", logger.Component("session.cleaner"))
			return nil
		case <-ticker.C:
			_ = c.RunOnce(ctx)
		}
	}
}
