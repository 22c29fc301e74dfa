package repository

import (
	"context"
	"errors"
	"fmt"

	"rk-commerce/internal/data/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

type cartMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewCartMongoRepository(db *mongo.Database, log *zap.Logger) CartRepository {
	return &cartMongoRepository{
		coll: db.Collection(cartItemCollection),
		log:  log,
	}
}

func (cr *cartMongoRepository) Create(ctx context.Context, item *entity.CartItem) error {
	if _, err := cr.coll.InsertOne(ctx, item); err != nil {
		cr.log.Error("Failed to create cart item",
			zap.Error(err),
			zap.String("user_id", item.UserID),
			zap.String("product_id", item.ProductID),
		)
		return fmt.Errorf("create cart item: %w", err)
	}

	return nil
}

func (cr *cartMongoRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	var item entity.CartItem
	err := cr.coll.FindOne(ctx, bson.M{"user_id": userID, "product_id": productID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find cart item",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("product_id", productID),
		)
		return nil, fmt.Errorf("find cart item for product %s: %w", productID, err)
	}

	return &item, nil
}

func (cr *cartMongoRepository) IncrementQuantity(ctx context.Context, id string, delta int) (*entity.CartItem, error) {
	var item entity.CartItem
	err := cr.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"quantity": delta}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to increment cart item", zap.Error(err), zap.String("cart_item_id", id))
		return nil, fmt.Errorf("increment cart item %s: %w", id, err)
	}

	return &item, nil
}

func (cr *cartMongoRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	cursor, err := cr.coll.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		cr.log.Error("Failed to list cart items", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list cart items for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	items := make([]*entity.CartItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		cr.log.Error("Failed to decode cart items", zap.Error(err))
		return nil, fmt.Errorf("decode cart items: %w", err)
	}

	return items, nil
}

func (cr *cartMongoRepository) DeleteByIDAndUser(ctx context.Context, id, userID string) (bool, error) {
	result, err := cr.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		cr.log.Error("Failed to delete cart item",
			zap.Error(err),
			zap.String("cart_item_id", id),
			zap.String("user_id", userID),
		)
		return false, fmt.Errorf("delete cart item %s: %w", id, err)
	}

	return result.DeletedCount > 0, nil
}

func (cr *cartMongoRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	result, err := cr.coll.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		cr.log.Error("Failed to clear cart", zap.Error(err), zap.String("user_id", userID))
		return 0, fmt.Errorf("clear cart for user %s: %w", userID, err)
	}

	return result.DeletedCount, nil
}
