// main.go
package main

import (
	"context"
	"log"

	"review-insights/cmd"
	"review-insights/internal/accesslog"
	"review-insights/internal/data/repository"
	"review-insights/internal/wire"
	"review-insights/pkg/database"
	"review-insights/pkg/utils"

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

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Development-mode schema bootstrap
	if config.Database.AutoCreate {
		if err := database.CreateSchema(context.Background(), db); err != nil {
			logger.Fatal("Failed to create schema", zap.Error(err))
		}
		logger.Info("Schema ensured")
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Access log queue and worker
	queue := accesslog.NewQueue(config.Queue.BufferSize, logger)
	defer queue.Close()

	worker := accesslog.NewWorker(queue, repos.AccessLog, logger)
	if err := worker.Start(); err != nil {
		logger.Fatal("Failed to start access log worker", zap.Error(err))
	}
	defer worker.Stop()

	// Wire all dependencies
	app := wire.Wiring(repos, queue, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}
