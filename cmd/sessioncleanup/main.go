// Command sessioncleanup periodically deletes expired sessions from MongoDB.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/persontric/adapter-mongodb/core/config"
	"github.com/persontric/adapter-mongodb/core/logger"
	"github.com/persontric/adapter-mongodb/core/session"
	"github.com/persontric/adapter-mongodb/integration/database/mongo"
	"github.com/persontric/adapter-mongodb/integration/session/mongodb"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Application failed", logger.Error(err))
		stop()
		os.Exit(1)
	}

	log.Info("Application stopped")
}

// run owns every resource so deferred cleanup happens before main exits.
func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	// Connect retries internally and pings before returning
	client, err := mongo.New(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("Failed to disconnect from database", logger.Component("database"), logger.Error(err))
		}
	}()

	check := mongo.Healthcheck(client)
	if err := check(ctx); err != nil {
		return err
	}

	adapter := mongodb.NewFromDatabase(client.Database(cfg.Mongo.Database),
		mongodb.WithSessionCollection(cfg.SessionCollection),
		mongodb.WithPersonCollection(cfg.PersonCollection),
	)
	if err := adapter.EnsureIndexes(ctx); err != nil {
		log.Error("Failed to create session indexes",
			logger.Component("database"),
			logger.Collection(cfg.SessionCollection),
			logger.Error(err),
		)
		return err
	}

	cleaner, err := session.NewCleanerFromConfig(cfg.Cleaner, adapter,
		session.WithLogger(log),
	)
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return cleaner.Run(ctx) })
	eg.Go(func() error { return monitorDatabase(ctx, log, check, cfg.HealthcheckInterval) })

	return eg.Wait()
}

// monitorDatabase pings the database every interval and logs transitions
// between reachable and unreachable. It returns nil when ctx is cancelled.
func monitorDatabase(ctx context.Context, log *slog.Logger, check func(context.Context) error, interval time.Duration) error {
	if interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	healthy := true
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := check(ctx)
			switch {
			case err != nil && ctx.Err() != nil:
				return nil
			case err != nil && healthy:
				healthy = false
				log.Error("Database is unreachable", logger.Component("database"), logger.Error(err))
			case err == nil && !healthy:
				healthy = true
				log.Info("Database is reachable again", logger.Component("database"))
			}
		}
	}
}

func newLogger(cfg Config) *slog.Logger {
	if cfg.Env == "production" {
		return logger.New(
			logger.WithProduction(cfg.AppName),
			logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		)
	}
	return logger.New(logger.WithDevelopment(cfg.AppName))
}
