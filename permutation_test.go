package brandforge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func domains(candidates []PartialCandidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Domain)
	}
	return out
}

func TestPermutationSingleToken(t *testing.T) {
	q := &Query{
		Tokens:      []string{"solo"},
		OrderedTLDs: []string{"com"},
	}
	var s PermutationStrategy
	// no cross-product with itself
	require.Equal(t, []string{"solo.com"}, domains(s.Generate(q)))
}

func TestPermutationSingleTokenWithSynonyms(t *testing.T) {
	q := &Query{
		Tokens:      []string{"fast"},
		Synonyms:    map[string][]string{"fast": {"quick", "rapid"}},
		OrderedTLDs: []string{"com", "io"},
	}
	var s PermutationStrategy
	require.Equal(t,
		[]string{"fast.com", "fast.io", "quick.com", "quick.io", "rapid.com", "rapid.io"},
		domains(s.Generate(q)))
}

func TestPermutationPairs(t *testing.T) {
	q := &Query{
		Tokens:            []string{"fast", "tech"},
		IncludeHyphenated: true,
		OrderedTLDs:       []string{"com"},
	}
	var s PermutationStrategy
	require.Equal(t,
		[]string{"fast.com", "tech.com", "fasttech.com", "techfast.com", "fast-tech.com", "tech-fast.com"},
		domains(s.Generate(q)))

	q.IncludeHyphenated = false
	require.Equal(t,
		[]string{"fast.com", "tech.com", "fasttech.com", "techfast.com"},
		domains(s.Generate(q)))
}

func TestPermutationBudget(t *testing.T) {
	q := &Query{
		Tokens:            []string{"fast", "tech", "shop"},
		Synonyms:          map[string][]string{"fast": {"quick", "rapid"}, "shop": {"store"}},
		IncludeHyphenated: true,
		OrderedTLDs:       []string{"com", "io"},
		Limit:             10,
	}
	var s PermutationStrategy
	got := s.Generate(q)
	require.Len(t, got, 10)
}

func TestPermutationDeterministic(t *testing.T) {
	q := &Query{
		Tokens:            []string{"green", "cloud", "shop"},
		Synonyms:          map[string][]string{"green": {"eco"}, "cloud": {"sky"}},
		IncludeHyphenated: true,
		OrderedTLDs:       []string{"com", "io"},
		Limit:             50,
	}
	var s PermutationStrategy
	first := s.Generate(q)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, s.Generate(q))
	}
}

func TestPermutationNoTLDs(t *testing.T) {
	q := &Query{Tokens: []string{"solo"}}
	var s PermutationStrategy
	require.Empty(t, s.Generate(q))
}
