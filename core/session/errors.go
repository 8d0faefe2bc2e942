package session

import "errors"

var (
	// ErrMissingExpiration is returned when a session is stored without an expiration instant.
	ErrMissingExpiration = errors.New("session expiration is required")
	// ErrReservedAttribute is returned when session attributes use a field name reserved by the store.
	ErrReservedAttribute = errors.New("attribute name is reserved")
	// ErrNilAdapter is returned when a cleaner is built without an adapter.
	ErrNilAdapter = errors.New("session adapter is required")
)
