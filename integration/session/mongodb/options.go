package mongodb

import "time"

const (
	// DefaultSessionCollection is the collection NewFromDatabase stores sessions in.
	DefaultSessionCollection = "sessions"
	// DefaultPersonCollection is the collection NewFromDatabase reads people from.
	DefaultPersonCollection = "users"
)

type adapterOptions struct {
	sessionCollection string
	personCollection  string
	now               func() time.Time
}

func defaultOptions() *adapterOptions {
	return &adapterOptions{
		sessionCollection: DefaultSessionCollection,
		personCollection:  DefaultPersonCollection,
		now:               time.Now,
	}
}

// Option configures an Adapter.
type Option func(*adapterOptions)

// WithSessionCollection overrides the session collection name used by NewFromDatabase.
func WithSessionCollection(name string) Option {
	return func(o *adapterOptions) {
		if name != "" {
			o.sessionCollection = name
		}
	}
}

// WithPersonCollection overrides the person collection name used by NewFromDatabase.
func WithPersonCollection(name string) Option {
	return func(o *adapterOptions) {
		if name != "" {
			o.personCollection = name
		}
	}
}

// WithClock sets the source of the current instant for DeleteExpiredSessions.
func WithClock(now func() time.Time) Option {
	return func(o *adapterOptions) {
		if now != nil {
			o.now = now
		}
	}
}
