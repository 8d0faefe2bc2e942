// Package session defines the storage contract an authentication library uses to
// persist sessions and the people who own them.
//
// The package is deliberately small. It describes the record shapes exchanged with
// a storage backend, the Adapter interface a backend must satisfy, and a Cleaner that
// periodically purges expired sessions. Session creation policy, expiration
// durations, identifier generation and credential handling belong to the caller.
//
// # Records
//
//   - Session: ID, PersonID, ExpireDTS and application-defined Attributes
//   - Person: ID and application-defined Attributes
//
// Attributes are an open-ended map that backends round-trip untouched. Field names
// reserved by a backend for identity, ownership or expiry must not appear in it.
//
// # Adapter Contract
//
// Every Adapter method is an independent round trip to the backing store:
//
//	type Adapter interface {
//		DeleteSession(ctx context.Context, sessionID string) error
//		DeleteAllSessionsForPerson(ctx context.Context, personID string) error
//		GetSessionAndPerson(ctx context.Context, sessionID string) (*Session, *Person, error)
//		GetAllSessionsForPerson(ctx context.Context, personID string) ([]Session, error)
//		SetSession(ctx context.Context, s Session) error
//		UpdateSessionExpiration(ctx context.Context, sessionID string, expireDTS time.Time) error
//		DeleteExpiredSessions(ctx context.Context) error
//	}
//
// Absence is never an error: single lookups return nil and multi lookups return an
// empty slice. A session whose owner cannot be resolved is reported as absent.
// SetSession is insert-only, so a duplicate identifier surfaces the backend's
// duplicate-key error. Storage errors are returned as-is, without retries.
//
// # Expiration
//
// A session is expired when its ExpireDTS is at or before the current instant:
//
//	if sess.IsExpired(time.Now()) {
//		// treat as signed out
//	}
//
// # Cleanup
//
// Cleaner calls DeleteExpiredSessions on a fixed interval:
//
//	cleaner, err := session.NewCleaner(adapter,
//		session.WithInterval(time.Hour),
//		session.WithTimeout(5*time.Minute),
//		session.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	go cleaner.Run(ctx) // returns nil once ctx is cancelled
//
// Settings can also be read from the environment via CleanerConfig:
//
//	SESSION_CLEANUP_INTERVAL  (default: 1h)
//	SESSION_CLEANUP_TIMEOUT   (default: 5m)
//
// # Error Handling
//
//   - ErrMissingExpiration: SetSession was called with a zero ExpireDTS
//   - ErrReservedAttribute: attributes use a name reserved by the backend
//   - ErrNilAdapter: NewCleaner was called without an adapter
package session
