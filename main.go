// Package main is the entry point for the Pokemon review API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"pokemonreview/src/app/server"
	"pokemonreview/src/core/ports"
	"pokemonreview/src/infra/config"
	"pokemonreview/src/infra/db"
	"pokemonreview/src/infra/logger"
	"pokemonreview/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"storage", cfg.Storage.Backend,
		"auth_enabled", cfg.Auth.Enabled(),
	)

	store, closeStore, err := openStore(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := server.New(cfg, log, store)

	// Run blocks until shutdown signal is received
	return srv.Run()
}

// openStore builds the configured storage backend and returns its cleanup func.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (ports.Store, func(), error) {
	if cfg.Storage.Backend == config.StorageMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		return repo.NewMemoryRepository(), func() {}, nil
	}

	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Storage.AutoMigrate {
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, nil, err
		}
	}
	return repo.NewPostgresRepository(pg, logger.WithComponent(log, "postgres")), pg.Close, nil
}
