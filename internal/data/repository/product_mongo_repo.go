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

type productMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewProductMongoRepository(db *mongo.Database, log *zap.Logger) ProductRepository {
	return &productMongoRepository{
		coll: db.Collection(productCollection),
		log:  log,
	}
}

func (pr *productMongoRepository) Create(ctx context.Context, product *entity.Product) error {
	if _, err := pr.coll.InsertOne(ctx, product); err != nil {
		pr.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (pr *productMongoRepository) CreateMany(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	if _, err := pr.coll.InsertMany(ctx, products); err != nil {
		pr.log.Error("Failed to insert products", zap.Error(err), zap.Int("count", len(products)))
		return fmt.Errorf("insert %d products: %w", len(products), err)
	}

	return nil
}

func (pr *productMongoRepository) FindActiveByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := pr.coll.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by ID", zap.Error(err), zap.String("product_id", id))
		return nil, fmt.Errorf("find product by ID %s: %w", id, err)
	}

	return &product, nil
}

func (pr *productMongoRepository) FindActive(ctx context.Context, category *string, limit int) ([]*entity.Product, error) {
	filter := bson.M{"is_active": true}
	if category != nil {
		filter["category"] = *category
	}

	cursor, err := pr.coll.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		pr.log.Error("Failed to list products", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]*entity.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		pr.log.Error("Failed to decode products", zap.Error(err))
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}

func (pr *productMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := pr.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		pr.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}
