package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"jokebox/src/infra/config"
)

// MemoryPath opens a private in-memory SQLite database.
const MemoryPath = ":memory:"

// sqlitePragmas make concurrent writers wait for the lock instead of failing,
// and start write transactions with the lock already held.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"

// NewSQLite opens the SQLite file at cfg.Path, creating it if needed.
func NewSQLite(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", sqliteDSN(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if cfg.Path == MemoryPath {
		// Every connection to :memory: is a separate database.
		conn.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	log.Info("database connection established",
		"driver", config.DriverSQLite,
		"path", cfg.Path,
	)
	return conn, nil
}

func sqliteDSN(path string) string {
	if path == MemoryPath {
		return MemoryPath
	}
	return "file:" + path + "?" + sqlitePragmas
}
