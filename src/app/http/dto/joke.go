package dto

import (
	"jokebox/src/core/domain"
	"jokebox/src/core/usecase"
)

// CreateJokeRequest is the payload for POST /items.
// Constraints are enforced by the joke service after trimming, so the
// fields carry no binding tags.
type CreateJokeRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ToInput converts the request to the service input.
func (r *CreateJokeRequest) ToInput() usecase.CreateJokeInput {
	return usecase.CreateJokeInput{
		Question: r.Question,
		Answer:   r.Answer,
	}
}

// JokeResponse is the wire form of a joke.
type JokeResponse struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// JokeFromDomain converts a domain joke.
func JokeFromDomain(j *domain.Joke) JokeResponse {
	return JokeResponse{
		ID:       j.ID,
		Question: j.Question,
		Answer:   j.Answer,
	}
}

// JokesFromDomain converts a list, keeping an empty list non-nil so it
// encodes as [].
func JokesFromDomain(jokes []domain.Joke) []JokeResponse {
	out := make([]JokeResponse, 0, len(jokes))
	for i := range jokes {
		out = append(out, JokeFromDomain(&jokes[i]))
	}
	return out
}

// CreateJokeResponse is returned by POST /items.
type CreateJokeResponse struct {
	Message string       `json:"message"`
	Joke    JokeResponse `json:"joke"`
}

// Endpoint describes one route in the service index.
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// IndexResponse is returned by GET /.
type IndexResponse struct {
	Message   string     `json:"message"`
	Endpoints []Endpoint `json:"endpoints"`
}
