package repository

import (
	"context"
	"fmt"

	"rk-commerce/internal/data/entity"
	"rk-commerce/pkg/database"

	"go.uber.org/zap"
)

type orderPgRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderPgRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderPgRepository{
		db:  db,
		log: log,
	}
}

// Create stores the order with its line items as a JSONB snapshot.
func (orp *orderPgRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, items, total_amount, status,
		                    payment_method, shipping_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := orp.db.Exec(ctx, query,
		order.ID,
		order.UserID,
		order.Items,
		order.TotalAmount,
		order.Status,
		order.PaymentMethod,
		order.ShippingAddress,
		order.CreatedAt,
	)
	if err != nil {
		orp.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID),
			zap.Int("item_count", len(order.Items)),
		)
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

func (orp *orderPgRepository) FindByUserID(ctx context.Context, userID string, limit int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, items, total_amount, status,
		       payment_method, shipping_address, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := orp.db.Query(ctx, query, userID, limit)
	if err != nil {
		orp.log.Error("Failed to list orders", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list orders for user %s: %w", userID, err)
	}
	defer rows.Close()

	orders := make([]*entity.Order, 0)
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Items,
			&order.TotalAmount,
			&order.Status,
			&order.PaymentMethod,
			&order.ShippingAddress,
			&order.CreatedAt,
		)
		if err != nil {
			orp.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		orp.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}
