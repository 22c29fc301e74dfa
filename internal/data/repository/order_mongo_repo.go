package repository

import (
	"context"
	"fmt"

	"rk-commerce/internal/data/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

type orderMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewOrderMongoRepository(db *mongo.Database, log *zap.Logger) OrderRepository {
	return &orderMongoRepository{
		coll: db.Collection(orderCollection),
		log:  log,
	}
}

func (orp *orderMongoRepository) Create(ctx context.Context, order *entity.Order) error {
	if _, err := orp.coll.InsertOne(ctx, order); err != nil {
		orp.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID),
			zap.Int("item_count", len(order.Items)),
		)
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

func (orp *orderMongoRepository) FindByUserID(ctx context.Context, userID string, limit int) ([]*entity.Order, error) {
	cursor, err := orp.coll.Find(ctx, bson.M{"user_id": userID}, newestOrdersFirst(limit))
	if err != nil {
		orp.log.Error("Failed to list orders", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list orders for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	orders := make([]*entity.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		orp.log.Error("Failed to decode orders", zap.Error(err))
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	return orders, nil
}

// newestOrdersFirst sorts by created_at, which BSON keeps only to the
// millisecond. Orders from the same millisecond fall back to _id, a v7 uuid
// that grows with creation time.
func newestOrdersFirst(limit int) *options.FindOptionsBuilder {
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
}
