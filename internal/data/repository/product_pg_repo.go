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

const productColumns = `id, name, description, price, category, image_url, stock, is_active, created_at`

type productPgRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductPgRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productPgRepository{
		db:  db,
		log: log,
	}
}

func (pr *productPgRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if _, err := pr.db.Exec(ctx, query, productArgs(product)...); err != nil {
		pr.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

// CreateMany inserts all products in one transaction.
func (pr *productPgRepository) CreateMany(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := pr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin product batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	batch := &pgx.Batch{}
	for _, product := range products {
		batch.Queue(query, productArgs(product)...)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		pr.log.Error("Failed to insert products", zap.Error(err), zap.Int("count", len(products)))
		return fmt.Errorf("insert %d products: %w", len(products), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit product batch: %w", err)
	}

	return nil
}

func (pr *productPgRepository) FindActiveByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND is_active`

	product, err := scanProduct(pr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by ID", zap.Error(err), zap.String("product_id", id))
		return nil, fmt.Errorf("find product by ID %s: %w", id, err)
	}

	return product, nil
}

func (pr *productPgRepository) FindActive(ctx context.Context, category *string, limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active AND ($1::text IS NULL OR category = $1)
		ORDER BY seq
		LIMIT $2
	`

	rows, err := pr.db.Query(ctx, query, category, limit)
	if err != nil {
		pr.log.Error("Failed to list products", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]*entity.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			pr.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (pr *productPgRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := pr.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		pr.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}

func productArgs(p *entity.Product) []any {
	return []any{p.ID, p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.Stock, p.IsActive, p.CreatedAt}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.ImageURL,
		&p.Stock,
		&p.IsActive,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
