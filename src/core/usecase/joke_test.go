package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"jokebox/src/core/domain"
	"jokebox/src/infra/logger"
)

func seedJokes(n int) []domain.Joke {
	jokes := make([]domain.Joke, 0, n)
	for i := 0; i < n; i++ {
		jokes = append(jokes, domain.NewJoke("Seed question?", "Seed answer."))
	}
	return jokes
}

func TestJokeServiceList(t *testing.T) {
	svc := NewJokeService(newMemRepo(seedJokes(3)...), logger.Discard())

	jokes, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, jokes, 3)
	for i, j := range jokes {
		assert.Equal(t, int64(i+1), j.ID)
	}
}

func TestJokeServiceGet(t *testing.T) {
	svc := NewJokeService(newMemRepo(seedJokes(2)...), logger.Discard())

	j, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), j.ID)

	_, err = svc.Get(context.Background(), 99)
	assert.True(t, domain.IsNotFound(err))
}

func TestJokeServiceRandomUsesPickerOffset(t *testing.T) {
	var gotN int64
	svc := NewJokeService(newMemRepo(seedJokes(5)...), logger.Discard(), WithPicker(func(n int64) int64 {
		gotN = n
		return 3
	}))

	j, err := svc.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), gotN)
	assert.Equal(t, int64(4), j.ID, "offset 3 in id order is the fourth joke")
}

func TestJokeServiceRandomEmptyStore(t *testing.T) {
	called := false
	svc := NewJokeService(newMemRepo(), logger.Discard(), WithPicker(func(int64) int64 {
		called = true
		return 0
	}))

	_, err := svc.Random(context.Background())
	assert.True(t, domain.IsNotFound(err))
	assert.False(t, called, "picker must not be called on an empty store")
}

func TestJokeServiceCreate(t *testing.T) {
	repo := newMemRepo(seedJokes(10)...)
	svc := NewJokeService(repo, logger.Discard())

	j, err := svc.Create(context.Background(), CreateJokeInput{
		Question: "  Quoi donc?  ",
		Answer:   "Pas grand chose.",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), j.ID)
	assert.Equal(t, "Quoi donc?", j.Question)
	assert.Equal(t, "Pas grand chose.", j.Answer)

	j, err = svc.Create(context.Background(), CreateJokeInput{
		Question: "<script>alert(1)</script>",
		Answer:   "Nice try & goodbye",
	})
	require.NoError(t, err)
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;&#x2F;script&gt;", j.Question)
	assert.Equal(t, "Nice try &amp; goodbye", j.Answer)
}

func TestJokeServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		in     CreateJokeInput
		fields map[string]string
	}{
		{
			name: "both too short",
			in:   CreateJokeInput{Question: "Why?", Answer: "Why."},
			fields: map[string]string{
				"question": "question must be at least 5 characters",
				"answer":   "answer must be at least 5 characters",
			},
		},
		{
			name: "both missing",
			in:   CreateJokeInput{},
			fields: map[string]string{
				"question": "question is required",
				"answer":   "answer is required",
			},
		},
		{
			name: "whitespace only is empty after trim",
			in:   CreateJokeInput{Question: "      ", Answer: "A fine answer"},
			fields: map[string]string{
				"question": "question is required",
			},
		},
		{
			name: "trim happens before the length check",
			in:   CreateJokeInput{Question: "   abcd   ", Answer: "A fine answer"},
			fields: map[string]string{
				"question": "question must be at least 5 characters",
			},
		},
		{
			name: "too long",
			in:   CreateJokeInput{Question: "A fine question", Answer: strings.Repeat("x", 256)},
			fields: map[string]string{
				"answer": "answer must be at most 255 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			svc := NewJokeService(repo, logger.Discard())

			_, err := svc.Create(context.Background(), tt.in)
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))

			got := make(map[string]string)
			for _, fe := range domain.FieldErrors(err) {
				assert.Equal(t, domain.LocationBody, fe.Location)
				got[fe.Field] = fe.Message
			}
			assert.Equal(t, tt.fields, got)

			n, _ := repo.Count(context.Background())
			assert.Zero(t, n, "nothing persisted")
		})
	}
}

func TestJokeServiceLengthBoundsAreInclusive(t *testing.T) {
	svc := NewJokeService(newMemRepo(), logger.Discard())

	_, err := svc.Create(context.Background(), CreateJokeInput{
		Question: "12345",
		Answer:   strings.Repeat("é", domain.MaxTextLength),
	})
	assert.NoError(t, err)
}

func TestJokeServiceStorageErrorsPropagate(t *testing.T) {
	repo := newMemRepo()
	repo.err = domain.NewStorageError("list jokes", errors.New("disk full"))
	svc := NewJokeService(repo, logger.Discard())
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.True(t, domain.IsStorageError(err))

	_, err = svc.Random(ctx)
	assert.True(t, domain.IsStorageError(err))

	_, err = svc.Create(ctx, CreateJokeInput{Question: "Valid question", Answer: "Valid answer"})
	assert.True(t, domain.IsStorageError(err))
}

// validText draws text whose trimmed length is within bounds.
func validText() *rapid.Generator[string] {
	return rapid.StringMatching(`[ ]{0,3}[A-Za-z0-9?!.,'<>&"][A-Za-z0-9 ?!.,'<>&"]{3,120}[A-Za-z0-9?!.][ ]{0,3}`)
}

// invalidText draws text that is empty or too short once trimmed.
func invalidText() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.StringMatching(`[ ]{0,5}`),
		rapid.StringMatching(`[ ]{0,2}[A-Za-z?]{1,4}[ ]{0,2}`),
	)
}

func TestCreateThenGetRoundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repo := newMemRepo()
		svc := NewJokeService(repo, logger.Discard())
		ctx := context.Background()

		q := validText().Draw(t, "question")
		a := validText().Draw(t, "answer")

		before, _ := repo.Count(ctx)
		created, err := svc.Create(ctx, CreateJokeInput{Question: q, Answer: a})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		got, err := svc.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Question != domain.EscapeText(strings.TrimSpace(q)) {
			t.Fatalf("question mismatch: %q", got.Question)
		}
		if got.Answer != domain.EscapeText(strings.TrimSpace(a)) {
			t.Fatalf("answer mismatch: %q", got.Answer)
		}

		after, _ := repo.Count(ctx)
		if after != before+1 {
			t.Fatalf("count went from %d to %d", before, after)
		}
	})
}

func TestCreateRejectsShortInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repo := newMemRepo(seedJokes(2)...)
		svc := NewJokeService(repo, logger.Discard())
		ctx := context.Background()

		in := CreateJokeInput{Question: validText().Draw(t, "question"), Answer: validText().Draw(t, "answer")}
		if rapid.Bool().Draw(t, "badQuestion") {
			in.Question = invalidText().Draw(t, "shortQuestion")
		} else {
			in.Answer = invalidText().Draw(t, "shortAnswer")
		}

		_, err := svc.Create(ctx, in)
		if !domain.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(domain.FieldErrors(err)) == 0 {
			t.Fatalf("expected field errors")
		}
		if n, _ := repo.Count(ctx); n != 2 {
			t.Fatalf("store count changed to %d", n)
		}
	})
}

func TestRandomAlwaysReturnsExistingJoke(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(t, "n")
		svc := NewJokeService(newMemRepo(seedJokes(n)...), logger.Discard())

		j, err := svc.Random(context.Background())
		if err != nil {
			t.Fatalf("random failed: %v", err)
		}
		if j.ID < 1 || j.ID > int64(n) {
			t.Fatalf("id %d outside [1,%d]", j.ID, n)
		}
	})
}
