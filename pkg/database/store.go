package database

import (
	"context"
	"fmt"
	"time"

	"rk-commerce/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Store is the process-wide data store handle. Exactly one of Mongo or
// Postgres is set, depending on DB_DRIVER. Open it once at startup and Close
// it on shutdown.
type Store struct {
	Driver   string
	Mongo    *mongo.Database
	Postgres PgxIface

	mongoClient *mongo.Client
}

func Open(ctx context.Context, config utils.DatabaseConfig) (*Store, error) {
	switch config.Driver {
	case utils.DriverMongo:
		client, db, err := InitMongo(ctx, config)
		if err != nil {
			return nil, err
		}
		return &Store{Driver: config.Driver, Mongo: db, mongoClient: client}, nil

	case utils.DriverPostgres:
		db, err := InitPostgres(ctx, config)
		if err != nil {
			return nil, err
		}
		return &Store{Driver: config.Driver, Postgres: db}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
}

// Ping reports whether the backing store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.mongoClient != nil {
		return s.mongoClient.Ping(ctx, readpref.Primary())
	}
	if s.Postgres != nil {
		return s.Postgres.Ping(ctx)
	}
	return fmt.Errorf("store is not open")
}

func (s *Store) Close() error {
	if s.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.mongoClient.Disconnect(ctx)
	}
	if s.Postgres != nil {
		s.Postgres.Close()
	}
	return nil
}
