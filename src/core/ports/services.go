package ports

import (
	"context"

	"jokebox/src/core/domain"
)

// JokeSource serves random jokes to a client view. Both the HTTP API client
// and usecase.JokeService satisfy it.
type JokeSource interface {
	Random(ctx context.Context) (*domain.Joke, error)
}
