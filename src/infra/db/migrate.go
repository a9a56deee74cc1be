package db

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"jokebox/src/infra/config"
	"jokebox/src/infra/db/migrations"
	"jokebox/src/infra/logger"
)

// schemaVersion is the migration that creates the jokes table.
const schemaVersion = 1

// SeedFunc populates a freshly created or reset store.
type SeedFunc func(ctx context.Context) error

func (d *Database) provider() (*goose.Provider, error) {
	dialect := goose.DialectSQLite3
	dir := "sqlite"
	if d.driver == config.DriverPostgres {
		dialect = goose.DialectPostgres
		dir = "postgres"
	}

	fsys, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s migrations: %w", dir, err)
	}

	p, err := goose.NewProvider(dialect, d.sql, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return p, nil
}

// Migrate applies pending migrations. created reports whether the jokes
// table was created by this call.
func (d *Database) Migrate(ctx context.Context) (created bool, err error) {
	p, err := d.provider()
	if err != nil {
		return false, err
	}

	results, err := p.Up(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		logger.Info(d.log, "migration applied",
			"version", r.Source.Version,
			"duration", r.Duration,
		)
		if r.Source.Version == schemaVersion {
			created = true
		}
	}
	return created, nil
}

// Reset rolls every migration back and applies them again, destroying all
// jokes. Identifiers restart at 1 afterwards.
func (d *Database) Reset(ctx context.Context) error {
	p, err := d.provider()
	if err != nil {
		return err
	}

	if _, err := p.DownTo(ctx, 0); err != nil {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	if _, err := p.Up(ctx); err != nil {
		return fmt.Errorf("failed to reapply migrations: %w", err)
	}

	logger.Warn(d.log, "store reset", "driver", d.driver)
	return nil
}

// Initialize creates the schema if absent. A store whose schema was created
// now, or that is reset because reset is true, is populated by seed.
func (d *Database) Initialize(ctx context.Context, reset bool, seed SeedFunc) error {
	fresh, err := d.Migrate(ctx)
	if err != nil {
		return err
	}

	if reset {
		if err := d.Reset(ctx); err != nil {
			return err
		}
		fresh = true
	}

	if !fresh || seed == nil {
		return nil
	}
	if err := seed(ctx); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}
	return nil
}
