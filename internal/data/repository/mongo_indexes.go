package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	userCollection     = "users"
	productCollection  = "products"
	cartItemCollection = "cart_items"
	orderCollection    = "orders"
)

// ensureMongoIndexes creates lookup indexes. None of them are unique: email
// uniqueness and the one-row-per-product cart rule are enforced by the
// services with a read before the write.
func ensureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		userCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		productCollection: {
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "is_active", Value: 1}}},
		},
		cartItemCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "product_id", Value: 1}}},
		},
		orderCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", collection, err)
		}
	}

	return nil
}
