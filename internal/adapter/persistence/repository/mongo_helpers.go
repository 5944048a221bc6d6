package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names used by the Mongo repositories. Table names from config
// are reused as collection names.
type MongoCollections struct {
	Quotes      string
	Projects    string
	CostConfigs string
}

// EnsureMongoIndexes creates the unique and lookup indexes the repositories rely on.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database, names MongoCollections) error {
	specs := []struct {
		coll  string
		model mongo.IndexModel
	}{
		{names.Quotes, mongo.IndexModel{Keys: bson.D{{Key: "projectId", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{names.Projects, mongo.IndexModel{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}}}},
		{names.CostConfigs, mongo.IndexModel{Keys: bson.D{{Key: "itemType", Value: 1}}, Options: options.Index().SetUnique(true)}},
	}
	for _, s := range specs {
		if _, err := db.Collection(s.coll).Indexes().CreateOne(ctx, s.model); err != nil {
			return fmt.Errorf("create index on %s: %w", s.coll, err)
		}
	}
	return nil
}

var afterUpdate = options.FindOneAndUpdate().SetReturnDocument(options.After)

// findOneAndSet applies $set to the document with the given _id and decodes
// the updated document into out. found is false when no document matched.
func findOneAndSet(ctx context.Context, coll *mongo.Collection, id string, set bson.M, out any) (bool, error) {
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, afterUpdate).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
