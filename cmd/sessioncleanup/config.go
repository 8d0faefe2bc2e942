package main

import (
	"time"

	"github.com/persontric/adapter-mongodb/core/session"
	"github.com/persontric/adapter-mongodb/integration/database/mongo"
)

type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"sessioncleanup"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	SessionCollection string `env:"SESSION_COLLECTION" envDefault:"sessions"`
	PersonCollection  string `env:"PERSON_COLLECTION" envDefault:"users"`

	// HealthcheckInterval controls the database monitor. Zero disables it.
	HealthcheckInterval time.Duration `env:"HEALTHCHECK_INTERVAL" envDefault:"30s"`

	Mongo   mongo.Config
	Cleaner session.CleanerConfig
}
