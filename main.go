package main

import (
	"context"
	"log"

	"cinema-tickets/cmd"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/internal/wire"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

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

	// All state lives in memory; seat inventory consistency is enforced by
	// the store's per-showtime locking, not a database.
	st := store.NewStore(logger)

	if config.App.SeedDemo {
		if err := store.SeedDemo(context.Background(), st, logger); err != nil {
			logger.Fatal("Failed to seed demo data", zap.Error(err))
		}
		logger.Info("Demo data seeded")
	}

	app := wire.Wiring(st, config, logger)

	cmd.APIServer(app.Router, config.App.Port, logger)
}
