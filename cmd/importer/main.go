package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"order-backoffice/internal/config"
	"order-backoffice/internal/db"
	"order-backoffice/internal/importer"
	"order-backoffice/internal/logging"
	productrepo "order-backoffice/internal/repository/product"
	costrepo "order-backoffice/internal/repository/productcost"
	productsvc "order-backoffice/internal/service/product"
	costsvc "order-backoffice/internal/service/productcost"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a CSV with productId,productName,cost columns")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		boot := logging.New("importer", "info", "json")
		boot.Fatal().Err(err).Msg("load config")
	}
	logger := logging.New("importer", cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("open file")
	}
	defer f.Close()

	products := productsvc.New(productrepo.NewPostgres(pool, &logger))
	costs := costsvc.New(costrepo.NewPostgres(pool, &logger))
	imp := importer.NewCSVImporter(f, products, costs, logger)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatal().Err(err).Int("imported", count).Msg("import failed")
	}

	fmt.Printf("Imported %d product costs from %s in %s\n", count, filePath, time.Since(start).Truncate(time.Millisecond))
}
