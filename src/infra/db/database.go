package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"jokebox/src/infra/config"
	"jokebox/src/infra/logger"
)

// Database is an open storage backend of either supported driver.
type Database struct {
	driver string
	sql    *sql.DB
	pg     *Postgres
	log    *slog.Logger
}

// Open connects to the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Database, error) {
	log = logger.WithComponent(log, "db")

	switch cfg.Driver {
	case config.DriverPostgres:
		pg, err := NewPostgres(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return &Database{driver: cfg.Driver, sql: pg.SQLDB(), pg: pg, log: log}, nil
	case config.DriverSQLite, "":
		conn, err := NewSQLite(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return &Database{driver: config.DriverSQLite, sql: conn, log: log}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Driver returns config.DriverSQLite or config.DriverPostgres.
func (d *Database) Driver() string {
	return d.driver
}

// SQL returns the database/sql handle. For PostgreSQL it shares the pgx pool.
func (d *Database) SQL() *sql.DB {
	return d.sql
}

// Postgres returns the pgx pool wrapper, or nil for SQLite.
func (d *Database) Postgres() *Postgres {
	return d.pg
}

// Health checks if the database is reachable.
func (d *Database) Health(ctx context.Context) error {
	if d.pg != nil {
		return d.pg.Health(ctx)
	}
	return d.sql.PingContext(ctx)
}

// Close releases all connections.
func (d *Database) Close() {
	if err := d.sql.Close(); err != nil {
		logger.Warn(d.log, "failed to close database handle", "error", err)
	}
	if d.pg != nil {
		d.pg.Close()
		return
	}
	logger.Info(d.log, "database connection closed")
}
