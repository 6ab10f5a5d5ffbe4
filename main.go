// Package main is the entry point for the GameStore API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"gamestore/src/app/server"
	"gamestore/src/infra/config"
	"gamestore/src/infra/db"
	"gamestore/src/infra/logger"
	"gamestore/src/infra/metrics"
	"gamestore/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"store", cfg.Store.Driver,
	)

	deps, cleanup, err := buildStores(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.NewRecorder()
	}

	// Create and run HTTP server
	srv := server.New(cfg, log, deps)

	// Run blocks until shutdown signal is received
	return srv.Run()
}

// buildStores opens the configured storage backend.
func buildStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (server.Dependencies, func(), error) {
	if !cfg.Store.UsesPostgres() {
		log.Warn("using in-memory store, data is lost on restart")
		return server.Dependencies{
			Catalog: repo.NewSeededMemoryCatalog(),
			Coupons: repo.NewMemoryCoupons(repo.SeedCoupons()),
		}, func() {}, nil
	}

	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return server.Dependencies{}, nil, err
	}

	if cfg.Database.Migrate {
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return server.Dependencies{}, nil, err
		}
	}

	gdb, err := pg.Gorm()
	if err != nil {
		pg.Close()
		return server.Dependencies{}, nil, err
	}

	return server.Dependencies{
		Catalog: repo.NewPostgresCatalog(pg, logger.WithComponent(log, "catalog_repo")),
		Coupons: repo.NewGormCoupons(gdb, logger.WithComponent(log, "coupon_repo")),
	}, pg.Close, nil
}
