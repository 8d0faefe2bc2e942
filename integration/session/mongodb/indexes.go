package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Index names created by EnsureIndexes.
const (
	IndexPersonID  = "person_id_1"
	IndexExpireDTS = "expire_dts_1"
)

// EnsureIndexes creates the secondary indexes backing per-person lookups and
// expired-session cleanup. It is idempotent. _id is unique by default, which is
// what makes SetSession insert-only.
func (a *Adapter) EnsureIndexes(ctx context.Context) error {
	_, err := a.sessions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: fieldPersonID, Value: 1}},
			Options: options.Index().SetName(IndexPersonID),
		},
		{
			Keys:    bson.D{{Key: fieldExpireDTS, Value: 1}},
			Options: options.Index().SetName(IndexExpireDTS),
		},
	})
	return err
}
