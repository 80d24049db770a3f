package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// nextID atomically increments and returns the sequence for name. Keeps the
// public API on integer ids while the storage itself is MongoDB: each
// resource collection draws its ids from a document in "counters".
func nextID(ctx context.Context, db *mongo.Database, name string) (int, error) {
	var doc struct {
		Seq int `bson:"seq"`
	}

	err := db.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", name, err)
	}

	return doc.Seq, nil
}
