package cli

import (
	"context"
	"fmt"
	"log/slog"

	"jokebox/src/core/ports"
	"jokebox/src/infra/config"
	"jokebox/src/infra/db"
	"jokebox/src/infra/logger"
	"jokebox/src/infra/repo"
	"jokebox/src/infra/seed"
)

// loadConfig reads the environment and builds the logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.Log), nil
}

// openStore opens the configured backend, applies migrations and seeds the
// store when its schema is new or reset is set. The caller closes the store.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger, reset bool) (*db.Database, ports.JokeRepository, error) {
	jokes, err := seed.Load(cfg.Seed.File)
	if err != nil {
		return nil, nil, err
	}

	store, err := db.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}

	jokeRepo := repo.New(store, logger.WithComponent(log, "repository"))
	seeder := func(ctx context.Context) error {
		_, err := repo.SeedIfEmpty(ctx, jokeRepo, jokes, log)
		return err
	}

	if err := store.Initialize(ctx, reset, seeder); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	return store, jokeRepo, nil
}
