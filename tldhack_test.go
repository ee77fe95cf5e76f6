package brandforge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTLDHackSingleWord(t *testing.T) {
	q := &Query{
		Tokens:      []string{"brandly"},
		OrderedTLDs: []string{"ly"},
	}
	var s TLDHackStrategy
	require.Equal(t, []string{"brand.ly"}, domains(s.Generate(q)))
}

func TestTLDHackMultiWord(t *testing.T) {
	// splicing works regardless of original tokenization
	q := &Query{
		Tokens:      []string{"brand", "ly"},
		OrderedTLDs: []string{"ly"},
	}
	var s TLDHackStrategy
	require.Equal(t, []string{"brand.ly"}, domains(s.Generate(q)))
}

func TestTLDHackNoMatch(t *testing.T) {
	q := &Query{
		Tokens:      []string{"hello", "world"},
		OrderedTLDs: []string{"ly"},
	}
	var s TLDHackStrategy
	require.Empty(t, s.Generate(q))
}

func TestTLDHackSynonymTail(t *testing.T) {
	q := &Query{
		Tokens:      []string{"fast"},
		Synonyms:    map[string][]string{"fast": {"speedy"}},
		OrderedTLDs: []string{"dy", "st"},
	}
	var s TLDHackStrategy
	require.Equal(t, []string{"fa.st", "spee.dy"}, domains(s.Generate(q)))
}

func TestTLDHackDedupe(t *testing.T) {
	// plain and hyphenated bases resolve to the same spliced domain
	q := &Query{
		Tokens:      []string{"brandly"},
		Synonyms:    map[string][]string{"brandly": {"brand-ly"}},
		OrderedTLDs: []string{"ly"},
	}
	var s TLDHackStrategy
	require.Equal(t, []string{"brand.ly"}, domains(s.Generate(q)))
}
