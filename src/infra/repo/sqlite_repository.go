package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
)

var _ ports.JokeRepository = (*SQLiteRepository)(nil)

// SQLiteRepository implements JokeRepository using database/sql.
type SQLiteRepository struct {
	db  *sql.DB
	log *slog.Logger
}

// NewSQLiteRepository constructs a repository backed by SQLite.
func NewSQLiteRepository(db *sql.DB, log *slog.Logger) *SQLiteRepository {
	return &SQLiteRepository{
		db:  db,
		log: log,
	}
}

func (r *SQLiteRepository) Health(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]domain.Joke, error) {
	const q = `
		SELECT id, question, answer
		FROM jokes
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.NewStorageError("list jokes", err)
	}
	defer rows.Close()

	jokes := make([]domain.Joke, 0)
	for rows.Next() {
		var j domain.Joke
		if err := rows.Scan(&j.ID, &j.Question, &j.Answer); err != nil {
			return nil, domain.NewStorageError("scan joke", err)
		}
		jokes = append(jokes, j)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list jokes", err)
	}
	return jokes, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*domain.Joke, error) {
	const q = `
		SELECT id, question, answer
		FROM jokes
		WHERE id = ?
	`
	return r.queryOne(ctx, "get joke", q, id)
}

func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jokes`).Scan(&n); err != nil {
		return 0, domain.NewStorageError("count jokes", err)
	}
	return n, nil
}

func (r *SQLiteRepository) GetAtOffset(ctx context.Context, offset int64) (*domain.Joke, error) {
	const q = `
		SELECT id, question, answer
		FROM jokes
		ORDER BY id ASC
		LIMIT 1 OFFSET ?
	`
	return r.queryOne(ctx, "get joke at offset", q, offset)
}

func (r *SQLiteRepository) Create(ctx context.Context, question, answer string) (*domain.Joke, error) {
	const q = `
		INSERT INTO jokes (question, answer)
		VALUES (?, ?)
		RETURNING id, question, answer
	`
	var j domain.Joke
	if err := r.db.QueryRowContext(ctx, q, question, answer).Scan(&j.ID, &j.Question, &j.Answer); err != nil {
		return nil, domain.NewStorageError("create joke", err)
	}
	return &j, nil
}

func (r *SQLiteRepository) SeedJokes(ctx context.Context, jokes []domain.Joke) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewStorageError("begin seed", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO jokes (question, answer) VALUES (?, ?)`)
	if err != nil {
		return domain.NewStorageError("prepare seed", err)
	}
	defer stmt.Close()

	for i, j := range jokes {
		if _, err = stmt.ExecContext(ctx, j.Question, j.Answer); err != nil {
			return domain.NewStorageError(fmt.Sprintf("seed joke %d", i+1), err)
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.NewStorageError("commit seed", err)
	}
	return nil
}

func (r *SQLiteRepository) queryOne(ctx context.Context, op, q string, arg any) (*domain.Joke, error) {
	var j domain.Joke
	if err := r.db.QueryRowContext(ctx, q, arg).Scan(&j.ID, &j.Question, &j.Answer); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, domain.NewStorageError(op, err)
	}
	return &j, nil
}
