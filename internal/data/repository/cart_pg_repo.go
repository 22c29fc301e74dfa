package repository

import (
	"context"
	"errors"
	"fmt"

	"rk-commerce/internal/data/entity"
	"rk-commerce/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const cartItemColumns = `id, user_id, product_id, quantity, created_at`

type cartPgRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartPgRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartPgRepository{
		db:  db,
		log: log,
	}
}

func (cr *cartPgRepository) Create(ctx context.Context, item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (` + cartItemColumns + `)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := cr.db.Exec(ctx, query, item.ID, item.UserID, item.ProductID, item.Quantity, item.CreatedAt)
	if err != nil {
		cr.log.Error("Failed to create cart item",
			zap.Error(err),
			zap.String("user_id", item.UserID),
			zap.String("product_id", item.ProductID),
		)
		return fmt.Errorf("create cart item: %w", err)
	}

	return nil
}

func (cr *cartPgRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items
		WHERE user_id = $1 AND product_id = $2
		LIMIT 1
	`

	item, err := scanCartItem(cr.db.QueryRow(ctx, query, userID, productID))
	if errors.Is(err, pgx.ErrNoRows) {
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

	return item, nil
}

func (cr *cartPgRepository) IncrementQuantity(ctx context.Context, id string, delta int) (*entity.CartItem, error) {
	query := `
		UPDATE cart_items
		SET quantity = quantity + $2
		WHERE id = $1
		RETURNING ` + cartItemColumns

	item, err := scanCartItem(cr.db.QueryRow(ctx, query, id, delta))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to increment cart item", zap.Error(err), zap.String("cart_item_id", id))
		return nil, fmt.Errorf("increment cart item %s: %w", id, err)
	}

	return item, nil
}

func (cr *cartPgRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := cr.db.Query(ctx, query, userID)
	if err != nil {
		cr.log.Error("Failed to list cart items", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list cart items for user %s: %w", userID, err)
	}
	defer rows.Close()

	items := make([]*entity.CartItem, 0)
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			cr.log.Error("Failed to scan cart item row", zap.Error(err))
			return nil, fmt.Errorf("scan cart item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart item rows: %w", err)
	}

	return items, nil
}

func (cr *cartPgRepository) DeleteByIDAndUser(ctx context.Context, id, userID string) (bool, error) {
	result, err := cr.db.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		cr.log.Error("Failed to delete cart item",
			zap.Error(err),
			zap.String("cart_item_id", id),
			zap.String("user_id", userID),
		)
		return false, fmt.Errorf("delete cart item %s: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}

func (cr *cartPgRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	result, err := cr.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		cr.log.Error("Failed to clear cart", zap.Error(err), zap.String("user_id", userID))
		return 0, fmt.Errorf("clear cart for user %s: %w", userID, err)
	}

	return result.RowsAffected(), nil
}

func scanCartItem(row pgx.Row) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := row.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}
