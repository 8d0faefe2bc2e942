package session

import (
	"fmt"
	"time"
)

// Attributes holds application-defined fields stored next to a record's identity.
// The adapter treats them as opaque and round-trips them untouched.
type Attributes map[string]any

// Validate reports ErrReservedAttribute if any key is in reserved.
func (a Attributes) Validate(reserved ...string) error {
	for _, key := range reserved {
		if _, ok := a[key]; ok {
			return fmt.Errorf("%w: %q", ErrReservedAttribute, key)
		}
	}
	return nil
}

// Session is a time-bounded authorization record owned by exactly one person.
type Session struct {
	ID       string
	PersonID string

	// ExpireDTS is the absolute instant after which the session is invalid.
	ExpireDTS time.Time

	Attributes Attributes
}

// IsExpired reports whether the session is expired at now.
// The comparison is non-strict: a session expiring exactly at now is expired.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpireDTS.After(now)
}

// Validate checks the caller side of the storage contract.
func (s Session) Validate(reserved ...string) error {
	if s.ExpireDTS.IsZero() {
		return ErrMissingExpiration
	}
	return s.Attributes.Validate(reserved...)
}

// Person is the account owning zero or more sessions.
type Person struct {
	ID         string
	Attributes Attributes
}
