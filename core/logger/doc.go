// Package logger provides structured logging helpers built on Go's standard slog package.
//
// # Basic Usage
//
//	import "github.com/persontric/adapter-mongodb/core/logger"
//
//	// Development: text format, debug level, source locations
//	log := logger.New(logger.WithDevelopment("sessioncleanup"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("sessioncleanup"))
//
//	// Custom
//	log := logger.New(
//		logger.WithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"))),
//		logger.WithJSONFormatter(),
//		logger.WithOutput(os.Stderr),
//		logger.WithAttr(slog.String("region", "eu")),
//	)
//
//	logger.SetAsDefault(log)
//
// # Attribute Helpers
//
// Helpers keep attribute names consistent across the module and are nil-safe:
// a nil error or empty identifier yields an empty slog.Attr, which slog drops.
//
//	log.Error("Failed to delete expired sessions",
//		logger.Component("session.cleaner"),
//		logger.Action("delete_expired"),
//		logger.Error(err),
//	)
//
//	log.Warn("MongoDB connection failed, retrying",
//		logger.Component("database"),
//		logger.RetryCount(attempt),
//		logger.Error(err),
//	)
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
