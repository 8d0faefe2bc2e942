package mongodb

import "errors"

// ErrInvalidDocument is returned when a stored document lacks a field the adapter maps.
var ErrInvalidDocument = errors.New("invalid session store document")
