package repo

import (
	"context"
	"log/slog"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
	"jokebox/src/infra/config"
	"jokebox/src/infra/db"
	"jokebox/src/infra/logger"
)

// New returns the repository matching the store's driver.
func New(store *db.Database, log *slog.Logger) ports.JokeRepository {
	if store.Driver() == config.DriverPostgres {
		return NewPostgresRepository(store.Postgres(), log)
	}
	return NewSQLiteRepository(store.SQL(), log)
}

// SeedIfEmpty inserts jokes when the store holds none and returns how many
// were inserted. A store that already has rows is left untouched.
func SeedIfEmpty(ctx context.Context, r ports.JokeRepository, jokes []domain.Joke, log *slog.Logger) (int, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info(log, "store already populated, skipping seed", "count", count)
		return 0, nil
	}
	if err := r.SeedJokes(ctx, jokes); err != nil {
		return 0, err
	}
	logger.Info(log, "seed jokes inserted", "count", len(jokes))
	return len(jokes), nil
}
