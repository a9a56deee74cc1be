package usecase

import (
	"context"
	"sync"

	"jokebox/src/core/domain"
)

// memRepo is an in-memory JokeRepository used by the service tests.
type memRepo struct {
	mu     sync.Mutex
	jokes  []domain.Joke
	nextID int64
	err    error
}

func newMemRepo(seed ...domain.Joke) *memRepo {
	r := &memRepo{nextID: 1}
	_ = r.SeedJokes(context.Background(), seed)
	return r
}

func (r *memRepo) Health(context.Context) error { return r.err }

func (r *memRepo) ListAll(context.Context) ([]domain.Joke, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.Joke{}, r.jokes...), nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*domain.Joke, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, j := range r.jokes {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, domain.NewNotFoundError("joke")
}

func (r *memRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.jokes)), nil
}

func (r *memRepo) GetAtOffset(_ context.Context, offset int64) (*domain.Joke, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if offset < 0 || offset >= int64(len(r.jokes)) {
		return nil, domain.NewNotFoundError("joke")
	}
	j := r.jokes[offset]
	return &j, nil
}

func (r *memRepo) Create(_ context.Context, question, answer string) (*domain.Joke, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	j := domain.Joke{ID: r.nextID, Question: question, Answer: answer}
	r.nextID++
	r.jokes = append(r.jokes, j)
	return &j, nil
}

func (r *memRepo) SeedJokes(_ context.Context, jokes []domain.Joke) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, j := range jokes {
		j.ID = r.nextID
		r.nextID++
		r.jokes = append(r.jokes, j)
	}
	return nil
}
