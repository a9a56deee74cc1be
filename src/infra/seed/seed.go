// Package seed loads the example jokes inserted into a fresh or reset store.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jokebox/src/core/domain"
)

//go:embed jokes.yaml
var defaultJokes []byte

// File is the YAML layout of a seed file.
type File struct {
	Jokes []domain.Joke `yaml:"jokes"`
}

// Load returns the seed set from path, or the built-in set when path is
// empty. Every entry is validated and sanitized like a created joke.
func Load(path string) ([]domain.Joke, error) {
	data := defaultJokes
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes and validates a seed document.
func Parse(data []byte) ([]domain.Joke, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	if len(f.Jokes) == 0 {
		return nil, errors.New("seed file has no jokes")
	}

	jokes := make([]domain.Joke, 0, len(f.Jokes))
	for i, j := range f.Jokes {
		q, a := domain.NormalizeText(j.Question), domain.NormalizeText(j.Answer)
		if err := errors.Join(
			domain.CheckTextLength("question", q),
			domain.CheckTextLength("answer", a),
		); err != nil {
			return nil, fmt.Errorf("seed joke %d: %w", i+1, err)
		}
		jokes = append(jokes, domain.NewJoke(q, a))
	}
	return jokes, nil
}
