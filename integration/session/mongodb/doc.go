// Package mongodb implements session.Adapter on top of MongoDB.
//
// Sessions and people live in two collections of the same database, both keyed by a
// string _id:
//
//	users:    { _id, ...person attributes }
//	sessions: { _id, person_id, expire_dts, ...session attributes }
//
// Attributes are flattened onto the document rather than nested. Fields written by
// ODMs for their own bookkeeping (__v, _doc) are dropped on every read.
//
// # Usage
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "")
//	if err != nil {
//		return err
//	}
//
//	adapter := mongodb.NewFromDatabase(db)
//	if err := adapter.EnsureIndexes(ctx); err != nil {
//		return err
//	}
//
//	err = adapter.SetSession(ctx, session.Session{
//		ID:         sessionID,
//		PersonID:   "u1",
//		ExpireDTS:  time.Now().Add(30 * 24 * time.Hour),
//		Attributes: session.Attributes{"country": "US"},
//	})
//
//	sess, person, err := adapter.GetSessionAndPerson(ctx, sessionID)
//	if err != nil {
//		return err
//	}
//	if sess == nil {
//		// unknown session, or its owner was deleted
//	}
//
// Existing collection handles can be passed directly with New(sessions, users).
//
// # Consistency
//
// GetSessionAndPerson runs one aggregation ($match, $lookup, $unwind), so the session
// and its owner are read in a single round trip. A session whose owner is missing is
// reported as not found. $lookup cannot join across databases or clusters; if the
// two handles belong to different databases, or were obtained from different
// clients, the adapter reads the session and then the owner, applying the same
// not-found rule. Handles from two clients are never assumed to share a cluster.
//
// # Errors
//
// Driver errors are returned unchanged and never retried. SetSession is insert-only:
//
//	if mongo.IsDuplicateKeyError(err) {
//		// session id collision
//	}
//
// The adapter itself only reports caller contract violations (session.ErrMissingExpiration,
// session.ErrReservedAttribute) and ErrInvalidDocument for stored documents lacking
// _id, person_id or expire_dts.
//
// # Values
//
// Reads return plain Go values, so attributes built from the same types compare
// equal after a round trip:
//
//	int, int32, int64       -> int (int64 only if it overflows int)
//	float32, float64        -> float64
//	string, bool, nil       -> unchanged
//	time.Time               -> UTC time.Time truncated to milliseconds
//	structs, typed maps     -> map[string]any
//	typed slices and arrays -> []any
//
// Callers that need exact types back should store them as int, float64,
// map[string]any and []any in the first place.
package mongodb
