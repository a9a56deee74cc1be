package domain

// Joke is a question/answer pair with a store-assigned identifier.
// Question and Answer hold the sanitized (trimmed and escaped) text.
type Joke struct {
	ID       int64  `json:"id" yaml:"-"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// NewJoke sanitizes raw text into a Joke ready to be persisted.
// It does not assign an identifier; the store does that on insert.
// Callers must have validated the text first.
func NewJoke(question, answer string) Joke {
	return Joke{
		Question: EscapeText(NormalizeText(question)),
		Answer:   EscapeText(NormalizeText(answer)),
	}
}
