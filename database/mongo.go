package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	FarmersCollection      = "farmers"
	CultivationsCollection = "cultivations"
	UsersCollection        = "users"
)

// OpenMongo connects, pings and ensures indexes. Farmer and cultivation
// uniqueness rides on _id; users additionally need a unique email.
func OpenMongo(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	db := client.Database(dbName)
	if err := EnsureMongoIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, db, nil
}

func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	idx := []struct {
		coll  string
		model mongo.IndexModel
	}{
		{UsersCollection, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{FarmersCollection, mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}}},
		{CultivationsCollection, mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: 1}}}},
	}
	for _, ix := range idx {
		if _, err := db.Collection(ix.coll).Indexes().CreateOne(ctx, ix.model); err != nil {
			return fmt.Errorf("create index on %s: %w", ix.coll, err)
		}
	}
	return nil
}
