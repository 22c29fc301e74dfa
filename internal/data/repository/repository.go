package repository

import (
	"context"
	"fmt"

	"rk-commerce/internal/data/entity"
	"rk-commerce/pkg/database"
	"rk-commerce/pkg/utils"

	"go.uber.org/zap"
)

// Lookups that find nothing return (nil, nil); errors are reserved for
// store failures.

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	CreateMany(ctx context.Context, products []*entity.Product) error
	FindActiveByID(ctx context.Context, id string) (*entity.Product, error)
	// FindActive returns active products in insertion order, optionally
	// restricted to an exact category, capped at limit.
	FindActive(ctx context.Context, category *string, limit int) ([]*entity.Product, error)
	Count(ctx context.Context) (int64, error)
}

type CartRepository interface {
	Create(ctx context.Context, item *entity.CartItem) error
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.CartItem, error)
	// IncrementQuantity adds delta to the row's quantity and returns the updated row.
	IncrementQuantity(ctx context.Context, id string, delta int) (*entity.CartItem, error)
	FindByUserID(ctx context.Context, userID string) ([]*entity.CartItem, error)
	// DeleteByIDAndUser reports false when no row with id belongs to userID.
	DeleteByIDAndUser(ctx context.Context, id, userID string) (bool, error)
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// FindByUserID returns the user's orders newest first, capped at limit.
	FindByUserID(ctx context.Context, userID string, limit int) ([]*entity.Order, error)
}

type Repository struct {
	User    UserRepository
	Product ProductRepository
	Cart    CartRepository
	Order   OrderRepository
}

// NewRepository builds the repositories for whichever backend the store was
// opened with.
func NewRepository(ctx context.Context, store *database.Store, log *zap.Logger) (*Repository, error) {
	switch store.Driver {
	case utils.DriverMongo:
		return NewMongoRepository(ctx, store, log)
	case utils.DriverPostgres:
		return NewPostgresRepository(store.Postgres, log), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", store.Driver)
	}
}

func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserPgRepository(db, log),
		Product: NewProductPgRepository(db, log),
		Cart:    NewCartPgRepository(db, log),
		Order:   NewOrderPgRepository(db, log),
	}
}

func NewMongoRepository(ctx context.Context, store *database.Store, log *zap.Logger) (*Repository, error) {
	if err := ensureMongoIndexes(ctx, store.Mongo); err != nil {
		return nil, err
	}

	return &Repository{
		User:    NewUserMongoRepository(store.Mongo, log),
		Product: NewProductMongoRepository(store.Mongo, log),
		Cart:    NewCartMongoRepository(store.Mongo, log),
		Order:   NewOrderMongoRepository(store.Mongo, log),
	}, nil
}
