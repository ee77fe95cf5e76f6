package brandforge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAffixSingleToken(t *testing.T) {
	q := &Query{
		Tokens:      []string{"zen"},
		Prefixes:    []string{"go"},
		Suffixes:    []string{"ly"},
		OrderedTLDs: []string{"com"},
	}
	var s AffixStrategy
	require.Equal(t, []string{"gozen.com", "zenly.com"}, domains(s.Generate(q)))
}

func TestAffixTwoTokensIncludesConcatenations(t *testing.T) {
	q := &Query{
		Tokens:      []string{"fast", "tech"},
		Prefixes:    []string{"my"},
		OrderedTLDs: []string{"io"},
	}
	var s AffixStrategy
	require.Equal(t,
		[]string{"myfast.io", "mytech.io", "myfasttech.io"},
		domains(s.Generate(q)))
}

func TestAffixSynonymBases(t *testing.T) {
	q := &Query{
		Tokens:      []string{"shop"},
		Synonyms:    map[string][]string{"shop": {"store"}},
		Suffixes:    []string{"hub"},
		OrderedTLDs: []string{"com"},
	}
	var s AffixStrategy
	require.Equal(t, []string{"shophub.com", "storehub.com"}, domains(s.Generate(q)))
}

func TestAffixNoTLDs(t *testing.T) {
	q := &Query{Tokens: []string{"zen"}, Prefixes: []string{"go"}}
	var s AffixStrategy
	require.Empty(t, s.Generate(q))
}
