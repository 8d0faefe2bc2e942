package session

import (
	"context"
	"time"
)

// Adapter defines the persistence contract the session library delegates to.
// Implementations must be safe for concurrent use. Lookups report absence
// with nil or empty results, never with an error.
type Adapter interface {
	// DeleteSession removes the session with the given id. Missing sessions are ignored.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteAllSessionsForPerson removes every session owned by the person.
	DeleteAllSessionsForPerson(ctx context.Context, personID string) error

	// GetSessionAndPerson returns the session and its owner.
	// Both are nil when the session does not exist or its owner cannot be resolved.
	GetSessionAndPerson(ctx context.Context, sessionID string) (*Session, *Person, error)

	// GetAllSessionsForPerson returns every session owned by the person in no particular order.
	GetAllSessionsForPerson(ctx context.Context, personID string) ([]Session, error)

	// SetSession inserts a new session. It never overwrites an existing one.
	SetSession(ctx context.Context, s Session) error

	// UpdateSessionExpiration changes only the expiration instant of the session.
	UpdateSessionExpiration(ctx context.Context, sessionID string, expireDTS time.Time) error

	// DeleteExpiredSessions removes every session whose expiration instant is at or before now.
	DeleteExpiredSessions(ctx context.Context) error
}
