package database

import (
	"context"
	"fmt"

	"rk-commerce/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// InitMongo connects to MONGO_URL and returns the client and the DB_NAME database.
func InitMongo(ctx context.Context, config utils.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(config.MongoURL).
		SetConnectTimeout(config.Timeout).
		SetServerSelectionTimeout(config.Timeout)
	if config.MaxConns > 0 {
		clientOpts.SetMaxPoolSize(uint64(config.MaxConns))
	}

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	return client, client.Database(config.Name), nil
}
