// Package client is the terminal front end of the joke API: an HTTP client
// for the random endpoint and a single-view bubbletea model that shows a
// joke and reveals its answer on demand.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jokebox/src/core/domain"
)

// DefaultBaseURL is the address of a locally running server.
const DefaultBaseURL = "http://localhost:3000"

// randomPath is the endpoint returning one random joke.
const randomPath = "/items/random"

// maxBodySize bounds how much of a response is read.
const maxBodySize = 64 << 10

// StatusError reports a non-200 answer from the server.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// APIClient calls the joke API over HTTP.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates a client for the server at baseURL. Every request is
// bounded by timeout.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Random fetches a random joke. It returns (nil, nil) when the server
// answers 200 without a joke in the body.
func (c *APIClient) Random(ctx context.Context) (*domain.Joke, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+randomPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch random joke: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}

	var joke *domain.Joke
	if err := json.Unmarshal(body, &joke); err != nil {
		return nil, fmt.Errorf("decode joke: %w", err)
	}
	if joke == nil || (joke.Question == "" && joke.Answer == "") {
		return nil, nil
	}
	return joke, nil
}
