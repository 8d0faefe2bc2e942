package mongodb

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/persontric/adapter-mongodb/core/session"
)

// Document field names.
const (
	fieldID        = "_id"
	fieldPersonID  = "person_id"
	fieldExpireDTS = "expire_dts"

	// fieldJoinedPerson carries the owner document inside the session lookup pipeline.
	fieldJoinedPerson = "_person"
)

// bookkeepingFields are written by ODMs such as mongoose and never reach callers.
var bookkeepingFields = []string{"__v", "_doc"}

// reservedFields may not be used as session attribute names.
var reservedFields = append([]string{fieldID, fieldPersonID, fieldExpireDTS, fieldJoinedPerson}, bookkeepingFields...)

// sessionDocument flattens a session into a top-level document.
// Attributes follow the fixed fields in key order.
func sessionDocument(s session.Session) bson.D {
	doc := make(bson.D, 0, 3+len(s.Attributes))
	doc = append(doc,
		bson.E{Key: fieldID, Value: s.ID},
		bson.E{Key: fieldPersonID, Value: s.PersonID},
		bson.E{Key: fieldExpireDTS, Value: s.ExpireDTS},
	)
	for _, key := range slices.Sorted(maps.Keys(s.Attributes)) {
		doc = append(doc, bson.E{Key: key, Value: s.Attributes[key]})
	}
	return doc
}

// sessionFromDocument maps a normalized session document to a session.
// The document is consumed: promoted and bookkeeping fields are removed from it.
func sessionFromDocument(doc map[string]any) (session.Session, error) {
	stripBookkeeping(doc)

	id, err := stringField(doc, fieldID)
	if err != nil {
		return session.Session{}, err
	}
	personID, err := stringField(doc, fieldPersonID)
	if err != nil {
		return session.Session{}, err
	}

	expireDTS, ok := doc[fieldExpireDTS].(time.Time)
	if !ok {
		return session.Session{}, fmt.Errorf("%w: session %q has no %s", ErrInvalidDocument, id, fieldExpireDTS)
	}

	delete(doc, fieldID)
	delete(doc, fieldPersonID)
	delete(doc, fieldExpireDTS)

	return session.Session{
		ID:         id,
		PersonID:   personID,
		ExpireDTS:  expireDTS,
		Attributes: session.Attributes(doc),
	}, nil
}

// personFromDocument maps a normalized person document to a person.
func personFromDocument(doc map[string]any) (session.Person, error) {
	stripBookkeeping(doc)

	id, err := stringField(doc, fieldID)
	if err != nil {
		return session.Person{}, err
	}
	delete(doc, fieldID)

	return session.Person{
		ID:         id,
		Attributes: session.Attributes(doc),
	}, nil
}

func stripBookkeeping(doc map[string]any) {
	for _, key := range bookkeepingFields {
		delete(doc, key)
	}
}

// stringField reads an identifier. ObjectIDs are accepted and rendered as hex.
func stringField(doc map[string]any, key string) (string, error) {
	switch v := doc[key].(type) {
	case string:
		return v, nil
	case bson.ObjectID:
		return v.Hex(), nil
	case nil:
		return "", fmt.Errorf("%w: missing %s", ErrInvalidDocument, key)
	default:
		return "", fmt.Errorf("%w: %s has unsupported type %T", ErrInvalidDocument, key, v)
	}
}

// normalizeDocument converts a decoded document into plain Go values.
func normalizeDocument(doc bson.M) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = normalize(v)
	}
	return out
}

// normalize replaces driver container and time types with plain Go values so that
// attributes compare equal to what the caller stored, whatever the collection's
// default document type is.
func normalize(v any) any {
	switch val := v.(type) {
	case bson.D:
		out := make(map[string]any, len(val))
		for _, e := range val {
			out[e.Key] = normalize(e.Value)
		}
		return out
	case bson.M:
		return normalizeDocument(val)
	case bson.A:
		return normalizeSlice(val)
	case bson.DateTime:
		return val.Time().UTC()
	case time.Time:
		return val.UTC()
	case int32:
		return int(val)
	case int64:
		// The driver writes int as int32 or int64 depending on its magnitude.
		if val < math.MinInt || val > math.MaxInt {
			return val
		}
		return int(val)
	default:
		return v
	}
}

func normalizeSlice(in []any) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = normalize(v)
	}
	return out
}
