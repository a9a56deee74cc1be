package usecase

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/go-playground/validator/v10"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
)

// Picker returns a uniform random integer in [0, n). n is always > 0.
type Picker func(n int64) int64

// CreateJokeInput is the raw text submitted for a new joke.
type CreateJokeInput struct {
	Question string `json:"question" validate:"required,min=5,max=255"`
	Answer   string `json:"answer" validate:"required,min=5,max=255"`
}

// JokeService implements the joke operations on top of a JokeRepository.
type JokeService struct {
	repo     ports.JokeRepository
	log      *slog.Logger
	validate *validator.Validate
	pick     Picker
}

// JokeOption customizes a JokeService.
type JokeOption func(*JokeService)

// WithPicker replaces the random source used by Random.
func WithPicker(p Picker) JokeOption {
	return func(s *JokeService) {
		s.pick = p
	}
}

// NewJokeService creates a new JokeService.
func NewJokeService(repo ports.JokeRepository, log *slog.Logger, opts ...JokeOption) *JokeService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &JokeService{
		repo:     repo,
		log:      log.With("component", "jokes"),
		validate: newValidator(),
		pick:     rand.Int64N,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all jokes ordered by id.
func (s *JokeService) List(ctx context.Context) ([]domain.Joke, error) {
	jokes, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logStorage("list jokes", err)
		return nil, err
	}
	return jokes, nil
}

// Get returns a single joke.
func (s *JokeService) Get(ctx context.Context, id int64) (*domain.Joke, error) {
	joke, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logStorage("get joke", err, "id", id)
		return nil, err
	}
	return joke, nil
}

// Random picks a row offset uniformly in [0, count) and returns the joke at
// that offset in id order. Uniformity holds only while ids stay contiguous;
// jokes are never deleted, so they do.
func (s *JokeService) Random(ctx context.Context) (*domain.Joke, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logStorage("count jokes", err)
		return nil, err
	}
	if count == 0 {
		return nil, domain.NewNotFoundError("joke")
	}

	offset := s.pick(count)
	joke, err := s.repo.GetAtOffset(ctx, offset)
	if err != nil {
		s.logStorage("random joke", err, "offset", offset)
		return nil, err
	}
	return joke, nil
}

// Create trims, validates and escapes the input, then stores it.
// Validation failures of both fields are reported together.
func (s *JokeService) Create(ctx context.Context, in CreateJokeInput) (*domain.Joke, error) {
	in.Question = domain.NormalizeText(in.Question)
	in.Answer = domain.NormalizeText(in.Answer)

	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	sanitized := domain.NewJoke(in.Question, in.Answer)
	joke, err := s.repo.Create(ctx, sanitized.Question, sanitized.Answer)
	if err != nil {
		s.logStorage("create joke", err)
		return nil, err
	}

	s.log.Info("joke created", "id", joke.ID)
	return joke, nil
}

func (s *JokeService) logStorage(op string, err error, args ...any) {
	if domain.IsNotFound(err) {
		return
	}
	s.log.Error(op+" failed", append(args, "error", err)...)
}
