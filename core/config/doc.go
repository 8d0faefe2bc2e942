// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use and uses
// the caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/persontric/adapter-mongodb/core/config"
//
//	type Config struct {
//		AppName string `env:"APP_NAME" envDefault:"sessioncleanup"`
//		Mongo   mongo.Config
//	}
//
//	func main() {
//		var cfg Config
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is parsed only once per process. Different types are
// cached independently, and a failed parse is not cached.
package config
