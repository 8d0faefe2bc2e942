package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/persontric/adapter-mongodb/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json formatter with attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "sessions")),
		)

		log.Info("Test message", logger.Component("test"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "Test message", record["msg"])
		assert.Equal(t, "test", record["component"])
		assert.Equal(t, "sessions", record["service"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithLevel(slog.LevelWarn), logger.WithOutput(&buf))

		log.Info("hidden")
		assert.Empty(t, buf.String())

		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("production preset", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("cleanup"), logger.WithOutput(&buf))

		assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
		log.Info("started")
		assert.Contains(t, buf.String(), `"service":"cleanup"`)
		assert.Contains(t, buf.String(), `"env":"production"`)
	})

	t.Run("development preset", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("cleanup"), logger.WithOutput(&buf))

		assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
		log.Debug("details")
		assert.Contains(t, buf.String(), "service=cleanup")
		assert.Contains(t, buf.String(), "env=development")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}
