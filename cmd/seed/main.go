package main

import (
	"context"

	"order-backoffice/internal/config"
	"order-backoffice/internal/db"
	"order-backoffice/internal/logging"
	"order-backoffice/internal/migrate"
	"order-backoffice/internal/seed"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		boot := logging.New("seed", "info", "json")
		boot.Fatal().Err(err).Msg("load config")
	}
	logger := logging.New("seed", cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool, logger); err != nil {
		logger.Fatal().Err(err).Msg("apply migrations")
	}
	if err := seed.Apply(ctx, pool, logger); err != nil {
		logger.Fatal().Err(err).Msg("seed apply")
	}
}
