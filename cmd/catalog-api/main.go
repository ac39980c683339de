package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/catalog-service/internal/config"
	"github.com/tuanvumaihuynh/catalog-service/internal/http"
	"github.com/tuanvumaihuynh/catalog-service/internal/log"
	"github.com/tuanvumaihuynh/catalog-service/internal/repository"
	"github.com/tuanvumaihuynh/catalog-service/internal/service"
	"github.com/tuanvumaihuynh/catalog-service/internal/storage/db"
	"github.com/tuanvumaihuynh/catalog-service/internal/telemetry"
	"github.com/tuanvumaihuynh/catalog-service/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running catalog api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
		HTTP     config.HTTP
		Otel     config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)

	productRepository := repository.NewProductRepository(dbClient)
	variantRepository := repository.NewVariantRepository(dbClient)
	categoryRepository := repository.NewCategoryRepository(dbClient)

	productService := service.NewProductService(dbClient, productRepository, variantRepository)
	variantService := service.NewVariantService(variantRepository)
	categoryService := service.NewCategoryService(categoryRepository)

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	wg.Go(func() {
		svc := http.New(cfg.HTTP, logger, productService, variantService, categoryService, dbClient)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Wait()

	return nil
}
