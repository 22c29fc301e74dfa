package repository

import (
	"context"
	"errors"
	"fmt"

	"rk-commerce/internal/data/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

type userMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewUserMongoRepository(db *mongo.Database, log *zap.Logger) UserRepository {
	return &userMongoRepository{
		coll: db.Collection(userCollection),
		log:  log,
	}
}

func (ur *userMongoRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := ur.coll.InsertOne(ctx, user); err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userMongoRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return ur.findOne(ctx, bson.M{"_id": id}, "id", id)
}

func (ur *userMongoRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return ur.findOne(ctx, bson.M{"email": email}, "email", email)
}

func (ur *userMongoRepository) findOne(ctx context.Context, filter bson.M, field, value string) (*entity.User, error) {
	var user entity.User
	err := ur.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
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
