package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned by FindOne when no document matches, and by
// UpdateOne/DeleteOne when zero documents were affected.
var ErrNotFound = errors.New("document not found")

type FindOptions struct {
	Limit int64
	Sort  bson.D
}

// Store is the document store used by all handlers. Each call targets a
// single collection; per-document atomicity is all that is assumed.
type Store interface {
	Find(ctx context.Context, collection string, filter bson.M, opts FindOptions, results interface{}) error
	FindOne(ctx context.Context, collection string, filter bson.M, result interface{}) error
	InsertOne(ctx context.Context, collection string, doc interface{}) error
	InsertMany(ctx context.Context, collection string, docs []interface{}) error
	UpdateOne(ctx context.Context, collection string, filter bson.M, update bson.M) error
	DeleteOne(ctx context.Context, collection string, filter bson.M) error
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
}
