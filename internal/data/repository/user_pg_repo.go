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

const userColumns = `id, email, password_hash, full_name, phone, address, is_active, created_at`

type userPgRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserPgRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userPgRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new user record into the database
func (ur *userPgRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.Phone,
		user.Address,
		user.IsActive,
		user.CreatedAt,
	)
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userPgRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return ur.findOne(ctx, query, "id", id)
}

func (ur *userPgRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return ur.findOne(ctx, query, "email", email)
}

func (ur *userPgRepository) findOne(ctx context.Context, query, field, value string) (*entity.User, error) {
	var user entity.User
	// QueryRow returns at most one row
	err := ur.db.QueryRow(ctx, query, value).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Phone,
		&user.Address,
		&user.IsActive,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user",
			zap.Error(err),
			zap.String(field, value),
		)
		return nil, fmt.Errorf("find user by %s %s: %w", field, value, err)
	}

	return &user, nil
}
