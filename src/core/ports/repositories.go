// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"jokebox/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// JokeRepository persists jokes in a single table.
//
// Read methods return domain.ErrNotFound for a missing row and wrap driver
// failures with domain.ErrStorage.
type JokeRepository interface {
	Repository

	// ListAll returns every joke ordered by id ascending. The slice is empty,
	// not nil, when the store has no rows.
	ListAll(ctx context.Context) ([]domain.Joke, error)

	// GetByID returns the joke with the given id.
	GetByID(ctx context.Context, id int64) (*domain.Joke, error)

	// Count returns the number of stored jokes.
	Count(ctx context.Context) (int64, error)

	// GetAtOffset returns the joke at ordinal position offset when rows are
	// ordered by id ascending.
	GetAtOffset(ctx context.Context, offset int64) (*domain.Joke, error)

	// Create inserts an already sanitized joke and returns it with the id
	// assigned by the storage engine.
	Create(ctx context.Context, question, answer string) (*domain.Joke, error)

	// SeedJokes inserts jokes in one transaction, in slice order.
	SeedJokes(ctx context.Context, jokes []domain.Joke) error
}
