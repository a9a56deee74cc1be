// Package db provides storage connection, migration and reset management.
//
// This package is responsible for:
//   - Opening the configured backend (SQLite file or PostgreSQL pool)
//   - Applying the embedded goose migrations for that backend's dialect
//   - Seeding a freshly created schema, and the destructive reset path
//   - Connection health checks
//
// Example usage:
//
//	store, err := db.Open(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	err = store.Initialize(ctx, cfg.Database.ResetOnStart, seedFn)
package db
