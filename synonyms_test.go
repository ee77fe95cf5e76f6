package brandforge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type errThesaurus struct{}

func (errThesaurus) Lookup(string) (map[string][]string, error) {
	return nil, errors.New("dictionary offline")
}

type countingThesaurus struct {
	table   StaticThesaurus
	lookups int
}

func (c *countingThesaurus) Lookup(word string) (map[string][]string, error) {
	c.lookups++
	return c.table.Lookup(word)
}

func TestExpandDeterministicOrder(t *testing.T) {
	e := NewExpander(StaticThesaurus{
		"fast": {"speedy", "swift", "rapid", "quick"},
	})
	// length first, then lexicographic
	require.Equal(t, []string{"quick", "rapid", "swift", "speedy"}, e.Expand("fast", 10))
	require.Equal(t, []string{"quick", "rapid"}, e.Expand("fast", 2))
}

func TestExpandFiltering(t *testing.T) {
	e := NewExpander(StaticThesaurus{
		"fast": {"fast", "x", "extraordinarilyfast", "Quick", "quick", "bad word"},
	})
	// token itself, single chars, >15 chars, duplicates and words that
	// cannot appear in a label are all dropped
	require.Equal(t, []string{"quick"}, e.Expand("fast", 10))
}

func TestExpandFallbacks(t *testing.T) {
	// lookup failure degrades to the bare token
	e := NewExpander(errThesaurus{})
	require.Equal(t, []string{"fast"}, e.Expand("fast", 5))

	// unknown token with no stem match also degrades to the bare token
	e = NewExpander(StaticThesaurus{})
	require.Equal(t, []string{"qwxz"}, e.Expand("qwxz", 5))

	// the stemmed form is retried once before giving up
	e = NewExpander(StaticThesaurus{"run": {"dash", "sprint"}})
	require.Equal(t, []string{"dash", "sprint"}, e.Expand("running", 5))
}

func TestExpandMemoized(t *testing.T) {
	src := &countingThesaurus{table: StaticThesaurus{"fast": {"quick"}}}
	e := NewExpander(src)
	require.Equal(t, []string{"quick"}, e.Expand("fast", 5))
	require.Equal(t, []string{"quick"}, e.Expand("fast", 5))
	require.Equal(t, 1, src.lookups)
}
