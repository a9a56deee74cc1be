package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
	"jokebox/src/infra/db"
)

var _ ports.JokeRepository = (*PostgresRepository)(nil)

// PostgresRepository implements JokeRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]domain.Joke, error) {
	const q = `
		SELECT id, question, answer
		FROM jokes
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, domain.NewStorageError("list jokes", err)
	}

	jokes, err := pgx.CollectRows(rows, scanJoke)
	if err != nil {
		return nil, domain.NewStorageError("list jokes", err)
	}
	if jokes == nil {
		jokes = []domain.Joke{}
	}
	return jokes, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Joke, error) {
	const q = `
		SELECT id, question, answer
		FROM jokes
		WHERE id = $1
	`
	return r.queryOne(ctx, "get joke", q, id)
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jokes`).Scan(&n); err != nil {
		return 0, domain.NewStorageError("count jokes", err)
	}
	return n, nil
}

func (r *PostgresRepository) GetAtOffset(ctx context.Context, offset int64) (*domain.Joke, error) {
	const q = `
		SELECT id, question, answer
		FROM jokes
		ORDER BY id ASC
		LIMIT 1 OFFSET $1
	`
	return r.queryOne(ctx, "get joke at offset", q, offset)
}

func (r *PostgresRepository) Create(ctx context.Context, question, answer string) (*domain.Joke, error) {
	const q = `
		INSERT INTO jokes (question, answer)
		VALUES ($1, $2)
		RETURNING id, question, answer
	`
	var j domain.Joke
	if err := r.pool.QueryRow(ctx, q, question, answer).Scan(&j.ID, &j.Question, &j.Answer); err != nil {
		return nil, domain.NewStorageError("create joke", err)
	}
	return &j, nil
}

func (r *PostgresRepository) SeedJokes(ctx context.Context, jokes []domain.Joke) error {
	const q = `INSERT INTO jokes (question, answer) VALUES ($1, $2)`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, j := range jokes {
			batch.Queue(q, j.Question, j.Answer)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return domain.NewStorageError("seed jokes", err)
	}
	return nil
}

func (r *PostgresRepository) queryOne(ctx context.Context, op, q string, arg any) (*domain.Joke, error) {
	rows, err := r.pool.Query(ctx, q, arg)
	if err != nil {
		return nil, domain.NewStorageError(op, err)
	}
	j, err := pgx.CollectExactlyOneRow(rows, scanJoke)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, domain.NewStorageError(op, err)
	}
	return &j, nil
}

func scanJoke(row pgx.CollectableRow) (domain.Joke, error) {
	var j domain.Joke
	err := row.Scan(&j.ID, &j.Question, &j.Answer)
	return j, err
}
