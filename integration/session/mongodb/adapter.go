package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/persontric/adapter-mongodb/core/session"
)

// Compile-time check that Adapter implements session.Adapter interface
var _ session.Adapter = (*Adapter)(nil)

// Adapter persists sessions and resolves their owners in MongoDB.
// Both collections key documents by a string _id. The handles are safe for
// concurrent use and every method is a single independent request.
type Adapter struct {
	sessions *mongo.Collection
	users    *mongo.Collection
	now      func() time.Time
}

// New creates an adapter over existing collection handles.
// Collection name options are ignored. Handles from different databases or
// clients are supported at the cost of a second read in GetSessionAndPerson.
func New(sessions, users *mongo.Collection, opts ...Option) *Adapter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Adapter{
		sessions: sessions,
		users:    users,
		now:      o.now,
	}
}

// NewFromDatabase creates an adapter over the "sessions" and "users" collections of db.
func NewFromDatabase(db *mongo.Database, opts ...Option) *Adapter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Adapter{
		sessions: db.Collection(o.sessionCollection),
		users:    db.Collection(o.personCollection),
		now:      o.now,
	}
}

// joinable reports whether both collections are reachable from one $lookup:
// same client and same database.
func (a *Adapter) joinable() bool {
	sdb, udb := a.sessions.Database(), a.users.Database()
	return sdb.Client() == udb.Client() && sdb.Name() == udb.Name()
}

// DeleteSession removes the session if it exists.
func (a *Adapter) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := a.sessions.DeleteOne(ctx, bson.D{{Key: fieldID, Value: sessionID}})
	return err
}

// DeleteAllSessionsForPerson removes every session whose person_id matches.
func (a *Adapter) DeleteAllSessionsForPerson(ctx context.Context, personID string) error {
	_, err := a.sessions.DeleteMany(ctx, bson.D{{Key: fieldPersonID, Value: personID}})
	return err
}

// GetSessionAndPerson loads the session together with its owner in one aggregation.
// It returns nil, nil, nil when the session is missing or its owner does not exist.
// When the collections live in different databases or come from different
// clients, where $lookup cannot join, it falls back to two reads and still
// treats a missing owner as not found.
func (a *Adapter) GetSessionAndPerson(ctx context.Context, sessionID string) (*session.Session, *session.Person, error) {
	if !a.joinable() {
		return a.getSessionAndPersonSeparately(ctx, sessionID)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: fieldID, Value: sessionID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: a.users.Name()},
			{Key: "localField", Value: fieldPersonID},
			{Key: "foreignField", Value: fieldID},
			{Key: "as", Value: fieldJoinedPerson},
		}}},
		// Drops sessions whose owner is missing.
		{{Key: "$unwind", Value: "$" + fieldJoinedPerson}},
		{{Key: "$limit", Value: 1}},
	}

	cursor, err := a.sessions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return nil, nil, cursor.Err()
	}

	var raw bson.M
	if err := cursor.Decode(&raw); err != nil {
		return nil, nil, err
	}

	doc := normalizeDocument(raw)
	personDoc, ok := doc[fieldJoinedPerson].(map[string]any)
	if !ok {
		return nil, nil, nil
	}
	delete(doc, fieldJoinedPerson)

	return mapPair(doc, personDoc)
}

func (a *Adapter) getSessionAndPersonSeparately(ctx context.Context, sessionID string) (*session.Session, *session.Person, error) {
	sessionDoc, err := a.findOne(ctx, a.sessions, sessionID)
	if err != nil || sessionDoc == nil {
		return nil, nil, err
	}

	personID, err := stringField(sessionDoc, fieldPersonID)
	if err != nil {
		return nil, nil, err
	}

	personDoc, err := a.findOne(ctx, a.users, personID)
	if err != nil || personDoc == nil {
		return nil, nil, err
	}

	return mapPair(sessionDoc, personDoc)
}

// findOne returns the normalized document with the given _id, or nil if there is none.
func (a *Adapter) findOne(ctx context.Context, coll *mongo.Collection, id string) (map[string]any, error) {
	var raw bson.M
	err := coll.FindOne(ctx, bson.D{{Key: fieldID, Value: id}}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return normalizeDocument(raw), nil
}

func mapPair(sessionDoc, personDoc map[string]any) (*session.Session, *session.Person, error) {
	sess, err := sessionFromDocument(sessionDoc)
	if err != nil {
		return nil, nil, err
	}
	person, err := personFromDocument(personDoc)
	if err != nil {
		return nil, nil, err
	}
	return &sess, &person, nil
}

// GetAllSessionsForPerson returns the person's sessions in storage order.
// The result is empty, not nil, when the person has none.
func (a *Adapter) GetAllSessionsForPerson(ctx context.Context, personID string) ([]session.Session, error) {
	projection := bson.D{}
	for _, key := range bookkeepingFields {
		projection = append(projection, bson.E{Key: key, Value: 0})
	}

	cursor, err := a.sessions.Find(ctx,
		bson.D{{Key: fieldPersonID, Value: personID}},
		options.Find().SetProjection(projection),
	)
	if err != nil {
		return nil, err
	}

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, err
	}

	sessions := make([]session.Session, 0, len(raws))
	for _, raw := range raws {
		sess, err := sessionFromDocument(normalizeDocument(raw))
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

// SetSession inserts the session with its attributes flattened onto the document.
// An existing session with the same id yields the driver's duplicate key error,
// detectable with mongo.IsDuplicateKeyError.
func (a *Adapter) SetSession(ctx context.Context, s session.Session) error {
	if err := s.Validate(reservedFields...); err != nil {
		return err
	}
	_, err := a.sessions.InsertOne(ctx, sessionDocument(s))
	return err
}

// UpdateSessionExpiration sets expire_dts and leaves every other field untouched.
func (a *Adapter) UpdateSessionExpiration(ctx context.Context, sessionID string, expireDTS time.Time) error {
	_, err := a.sessions.UpdateOne(ctx,
		bson.D{{Key: fieldID, Value: sessionID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: fieldExpireDTS, Value: expireDTS}}}},
	)
	return err
}

// DeleteExpiredSessions removes sessions whose expire_dts is at or before now.
func (a *Adapter) DeleteExpiredSessions(ctx context.Context) error {
	_, err := a.sessions.DeleteMany(ctx, bson.D{
		{Key: fieldExpireDTS, Value: bson.D{{Key: "$lte", Value: a.now()}}},
	})
	return err
}
