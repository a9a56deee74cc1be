package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokebox/src/core/domain"
)

func TestLoadDefaultSet(t *testing.T) {
	jokes, err := Load("")
	require.NoError(t, err)
	require.Len(t, jokes, 10)

	assert.Equal(t, "Quelle est la femelle du hamster ?", jokes[0].Question)
	assert.Equal(t, "L&#x27;Amsterdam.", jokes[0].Answer, "seed text is escaped like created jokes")
	for _, j := range jokes {
		assert.Zero(t, j.ID)
		assert.NoError(t, domain.CheckTextLength("question", j.Question))
		assert.NoError(t, domain.CheckTextLength("answer", j.Answer))
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jokes:
  - question: "  Why did the gopher cross the road?  "
    answer: "To <go> to the other side."
`), 0o600))

	jokes, err := Load(path)
	require.NoError(t, err)
	require.Len(t, jokes, 1)
	assert.Equal(t, "Why did the gopher cross the road?", jokes[0].Question)
	assert.Equal(t, "To &lt;go&gt; to the other side.", jokes[0].Answer)
}

func TestParseRejectsInvalidSeeds(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", "jokes: []"},
		{"short answer", "jokes:\n  - question: \"Hello there\"\n    answer: \"Hi\""},
		{"missing question", "jokes:\n  - answer: \"Hello there\""},
		{"unknown field", "jokes:\n  - question: \"Hello there\"\n    answer: \"Hello back\"\n    rating: 5"},
		{"not yaml", "jokes: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
