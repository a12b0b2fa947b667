package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/spellserve/pkg/dictionary"
)

func newData(words ...string) Data {
	return NewData(dictionary.NewWordList(words...))
}

func TestFuzzyMatchesDeletion(t *testing.T) {
	data := newData("lambda")
	// one character missing from the middle
	matches := FuzzyMatches("lamda", data)
	assert.Equal(t, []string{"lambda"}, matches)
}

func TestFuzzyMatchesInsertion(t *testing.T) {
	data := newData("lambda")
	matches := FuzzyMatches("lambbda", data)
	assert.Equal(t, []string{"lambda"}, matches)
}

func TestFuzzyMatchesSubstitution(t *testing.T) {
	data := newData("receive")
	matches := FuzzyMatches("reczive", data)
	assert.Equal(t, []string{"receive"}, matches)
}

func TestFuzzyMatchesEdgeEdits(t *testing.T) {
	data := newData("lambda")
	queries := map[string]string{
		"ambda":   "first character missing",
		"zambda":  "first character wrong",
		"xlambda": "extra first character",
		"lambd":   "last character missing",
		"lambdz":  "last character wrong",
		"lambdax": "extra last character",
	}
	for query, desc := range queries {
		t.Run(query, func(t *testing.T) {
			assert.Equal(t, []string{"lambda"}, FuzzyMatches(query, data), desc)
		})
	}
}

func TestFuzzyEdgeEditAmbiguitySkipped(t *testing.T) {
	// "lambd" is one edit from both, so neither is guessed
	data := newData("lambda", "lambs")
	assert.Empty(t, FuzzyMatches("lambd", data))
}

func TestFuzzyMatchesWithLargerCorpus(t *testing.T) {
	data := newData("lambda", "receive", "foo", "notebook")
	matches := FuzzyMatches("lamda", data)
	assert.Equal(t, []string{"lambda"}, matches)
}

func TestFuzzyMinimumLength(t *testing.T) {
	data := newData("cat", "cart", "chart")
	// three characters is below the minimum meaningful length
	assert.Empty(t, FuzzyMatches("cat", data))
	assert.Empty(t, FuzzyMatches("ca", data))
}

func TestFuzzyAmbiguousSurvivorsSkipped(t *testing.T) {
	// both words survive the final intersection, so neither is guessed
	data := newData("tested", "tasted")
	assert.Empty(t, FuzzyMatches("tsted", data))
}

func TestFuzzyEmptyCorpus(t *testing.T) {
	data := newData()
	assert.NotPanics(t, func() {
		assert.Empty(t, FuzzyMatches("anything", data))
	})
}

func TestFuzzyExactWordNotReturned(t *testing.T) {
	data := newData("lambda")
	assert.Empty(t, FuzzyMatches("lambda", data))
}

func TestFuzzyDeterministic(t *testing.T) {
	data := newData("lambda", "lamina", "lament", "lander")
	first := FuzzyMatches("lamda", data)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FuzzyMatches("lamda", data))
	}
}

func TestFuzzyRespectsConfiguredMinimum(t *testing.T) {
	data := newData("note", "nose")
	opts := data.Opts
	opts.MinFuzzyLength = 6
	data = data.WithOptions(opts)
	assert.Empty(t, FuzzyMatches("notee", data))
}

func TestFuzzyCaseInsensitive(t *testing.T) {
	data := newData("Lambda")
	matches := FuzzyMatches("LAMDA", data)
	require.Len(t, matches, 1)
	// the stored spelling comes back
	assert.Equal(t, "Lambda", matches[0])
}
