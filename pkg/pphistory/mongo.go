package pphistory

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists entries to a MongoDB collection, for sharing one
// history across multiple docprint serve instances.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore wraps an existing collection handle. The caller owns the
// client's lifecycle.
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

// Record inserts entry, generating an ID if one was not supplied.
func (s *MongoStore) Record(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	_, err := s.collection.InsertOne(ctx, entry)
	return err
}

// Recent returns up to limit entries, most recent first.
func (s *MongoStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rendered_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Close is a no-op: the caller owns the underlying client.
func (s *MongoStore) Close() error {
	return nil
}

var _ Store = (*MongoStore)(nil)
