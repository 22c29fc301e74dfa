// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rk-commerce/cmd"
	"rk-commerce/internal/data/repository"
	"rk-commerce/internal/wire"
	"rk-commerce/pkg/database"
	"rk-commerce/pkg/token"
	"rk-commerce/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	if err := run(config, logger); err != nil {
		logger.Error("Application stopped with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(config *utils.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("db_driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	store, err := database.Open(ctx, config.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	logger.Info("Database connected successfully", zap.String("driver", store.Driver))

	// Initialize all repositories
	repos, err := repository.NewRepository(ctx, store, logger)
	if err != nil {
		return err
	}

	tokens, err := token.NewManager(config.JWT.Secret, config.JWT.Expiry)
	if err != nil {
		return err
	}

	// Wire all dependencies
	app := wire.Wiring(repos, store, tokens, config, logger)

	// Start server
	logger.Info("Starting HTTP server",
		zap.String("port", config.App.Port),
		zap.String("api_prefix", config.App.APIPrefix))

	return cmd.APIServer(ctx, app.Router, config.App.Port, logger)
}
