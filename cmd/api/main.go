package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"order-backoffice/internal/config"
	"order-backoffice/internal/db"
	"order-backoffice/internal/httpserver"
	"order-backoffice/internal/logging"
	"order-backoffice/internal/migrate"
	orderrepo "order-backoffice/internal/repository/order"
	productrepo "order-backoffice/internal/repository/product"
	costrepo "order-backoffice/internal/repository/productcost"
	dashboardsvc "order-backoffice/internal/service/dashboard"
	ordersvc "order-backoffice/internal/service/order"
	productsvc "order-backoffice/internal/service/product"
	costsvc "order-backoffice/internal/service/productcost"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		boot := logging.New("api", "info", "json")
		boot.Fatal().Err(err).Msg("load config")
	}
	logger := logging.New("api", cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to db")
	}
	defer dbpool.Close()

	if cfg.MigrateOnStart {
		if err := migrate.Apply(ctx, dbpool, logger); err != nil {
			logger.Fatal().Err(err).Msg("apply migrations")
		}
	}

	productRepo := productrepo.NewPostgres(dbpool, &logger)
	costRepo := costrepo.NewPostgres(dbpool, &logger)
	orderRepo := orderrepo.NewPostgres(dbpool, &logger)

	productService := productsvc.New(productRepo)
	costService := costsvc.New(costRepo)
	orderService := ordersvc.New(orderRepo)
	dashboardService := dashboardsvc.New(orderService, costService)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Products:     productService,
		ProductCosts: costService,
		Orders:       orderService,
		Dashboard:    dashboardService,
	}, httpserver.Options{CORSAllowedOrigins: cfg.CORSAllowedOrigins})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}
