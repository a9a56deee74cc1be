// Package repo contains the storage implementations of ports.JokeRepository.
//
// Two adapters share one contract:
//   - SQLiteRepository over database/sql with the modernc driver
//   - PostgresRepository over a pgx connection pool
//
// Both receive their connection via constructor injection. Missing rows map
// to domain.ErrNotFound and driver failures are wrapped with
// domain.ErrStorage, so callers never inspect driver errors.
//
//	r := repo.New(store, log)
//	joke, err := r.GetByID(ctx, 3)
//	if domain.IsNotFound(err) {
//	    // 404
//	}
package repo
