package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
	"jokebox/src/infra/config"
	"jokebox/src/infra/db"
	"jokebox/src/infra/logger"
)

// openSQLite returns a migrated, empty SQLite store in a temp directory.
func openSQLite(t *testing.T) *db.Database {
	t.Helper()
	ctx := context.Background()

	cfg := config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "jokes.db"),
		MaxOpenConns: 4,
	}
	store, err := db.Open(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(store.Close)

	_, err = store.Migrate(ctx)
	require.NoError(t, err)
	return store
}

// openPostgres returns a reset PostgreSQL store configured through the usual
// APP_DB_* variables. It skips unless APP_TEST_POSTGRES=1.
func openPostgres(t *testing.T) *db.Database {
	t.Helper()
	if os.Getenv("APP_TEST_POSTGRES") != "1" {
		t.Skip("set APP_TEST_POSTGRES=1 to run PostgreSQL repository tests")
	}
	ctx := context.Background()

	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Database.Driver = config.DriverPostgres

	store, err := db.Open(ctx, cfg.Database, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, store.Reset(ctx))
	return store
}

func TestSQLiteRepository(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) ports.JokeRepository {
		return New(openSQLite(t), logger.Discard())
	})
}

func TestPostgresRepository(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) ports.JokeRepository {
		return New(openPostgres(t), logger.Discard())
	})
}

func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) ports.JokeRepository) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		r := newRepo(t)

		jokes, err := r.ListAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, jokes)
		assert.Empty(t, jokes)

		n, err := r.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		_, err = r.GetByID(ctx, 1)
		assert.True(t, domain.IsNotFound(err))

		_, err = r.GetAtOffset(ctx, 0)
		assert.True(t, domain.IsNotFound(err))

		assert.NoError(t, r.Health(ctx))
	})

	t.Run("create assigns ascending ids", func(t *testing.T) {
		r := newRepo(t)

		var want []domain.Joke
		for i := 1; i <= 3; i++ {
			j, err := r.Create(ctx, fmt.Sprintf("Question %d", i), fmt.Sprintf("Answer %d", i))
			require.NoError(t, err)
			assert.Equal(t, int64(i), j.ID)
			want = append(want, *j)
		}

		got, err := r.ListAll(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ListAll mismatch (-want +got):\n%s", diff)
		}

		j, err := r.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Question 2", j.Question)

		j, err = r.GetAtOffset(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), j.ID)

		_, err = r.GetAtOffset(ctx, 3)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("seed keeps order", func(t *testing.T) {
		r := newRepo(t)
		seeds := []domain.Joke{
			{Question: "First question", Answer: "First answer"},
			{Question: "Second question", Answer: "Second answer"},
		}
		require.NoError(t, r.SeedJokes(ctx, seeds))

		got, err := r.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, "Second answer", got[1].Answer)

		j, err := r.Create(ctx, "Third question", "Third answer")
		require.NoError(t, err)
		assert.Equal(t, int64(3), j.ID)
	})

	t.Run("seed if empty", func(t *testing.T) {
		r := newRepo(t)
		seeds := []domain.Joke{{Question: "Seeded question", Answer: "Seeded answer"}}

		n, err := SeedIfEmpty(ctx, r, seeds, logger.Discard())
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = SeedIfEmpty(ctx, r, seeds, logger.Discard())
		require.NoError(t, err)
		assert.Zero(t, n)

		count, err := r.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("concurrent creates get distinct ids", func(t *testing.T) {
		r := newRepo(t)
		const writers = 20

		var (
			mu  sync.Mutex
			ids = make(map[int64]bool)
		)
		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < writers; i++ {
			g.Go(func() error {
				j, err := r.Create(gctx, fmt.Sprintf("Concurrent question %d", i), "Concurrent answer")
				if err != nil {
					return err
				}
				mu.Lock()
				ids[j.ID] = true
				mu.Unlock()
				return nil
			})
		}
		require.NoError(t, g.Wait())
		assert.Len(t, ids, writers)

		n, err := r.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(writers), n)
	})
}

func TestSQLiteRepositoryStorageErrors(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t)
	r := NewSQLiteRepository(store.SQL(), logger.Discard())
	require.NoError(t, store.SQL().Close())

	_, err := r.ListAll(ctx)
	assert.True(t, domain.IsStorageError(err))

	_, err = r.GetByID(ctx, 1)
	assert.True(t, domain.IsStorageError(err))
	assert.False(t, domain.IsNotFound(err))

	_, err = r.Count(ctx)
	assert.True(t, domain.IsStorageError(err))

	_, err = r.Create(ctx, "Hello there", "General Kenobi")
	assert.True(t, domain.IsStorageError(err))

	assert.True(t, domain.IsStorageError(r.SeedJokes(ctx, []domain.Joke{{Question: "a", Answer: "b"}})))
}
