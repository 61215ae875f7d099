package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"workshop-service/internal/config"
	httphandler "workshop-service/internal/http"
	"workshop-service/internal/logger"
	"workshop-service/internal/repository"
	"workshop-service/internal/seed"
	"workshop-service/internal/service"
	"workshop-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	recordStore, err := newRecordStore(cfg)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to open record store")
	}

	ctx := context.Background()
	orders, err := recordStore.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrCorruptStore) {
			appLogger.Fatal().Err(err).Msg("failed to load orders")
		}
		// Unreadable data is reported, not destroyed: the file stays on
		// disk until the first successful save overwrites it.
		appLogger.Warn().Err(err).Msg("persisted orders are unreadable, starting with an empty collection")
		orders = nil
	}

	orderRepo := repository.NewOrderRepository(recordStore, orders)
	orderService := service.NewOrderService(orderRepo)

	if cfg.SeedDemo && orderRepo.Count() == 0 {
		if err := seed.Demo(ctx, orderService); err != nil {
			appLogger.Error().Err(err).Msg("failed to seed demo data")
		} else {
			appLogger.Info().Int("orders", orderRepo.Count()).Msg("seeded demo data")
		}
	}

	handler := httphandler.NewHandler(orderService, appLogger)
	router := httphandler.NewRouter(handler, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().
		Str("addr", addr).
		Str("store_backend", cfg.Store.Backend).
		Str("store_path", cfg.Store.Path).
		Int("orders", orderRepo.Count()).
		Msg("starting workshop service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}

func newRecordStore(cfg *config.Config) (store.RecordStore, error) {
	switch cfg.Store.Backend {
	case "sqlite":
		return store.NewSQLiteStore(cfg.Store.Path)
	default:
		return store.NewFileStore(cfg.Store.Path), nil
	}
}
