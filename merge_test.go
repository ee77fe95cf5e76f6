package brandforge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubStrategy struct {
	name string
	out  []PartialCandidate
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Generate(q *Query) []PartialCandidate { return s.out }

func pc(domain, suffix string) PartialCandidate {
	return PartialCandidate{Domain: domain, Suffix: suffix}
}

func TestMergeFirstOccurrenceWins(t *testing.T) {
	first := &stubStrategy{name: "first", out: []PartialCandidate{pc("a.com", "com"), pc("b.com", "com")}}
	second := &stubStrategy{name: "second", out: []PartialCandidate{pc("b.com", "com"), pc("c.com", "com")}}
	m := NewMerger(first, second)

	merged, err := m.Merge(context.Background(), &Query{Tokens: []string{"a"}})
	require.Nil(t, err)
	require.Equal(t, []Candidate{
		{Domain: "a.com", Suffix: "com", Strategy: "first"},
		{Domain: "b.com", Suffix: "com", Strategy: "first"},
		{Domain: "c.com", Suffix: "com", Strategy: "second"},
	}, merged)
}

func TestMergeOrderStableAcrossRuns(t *testing.T) {
	// strategy priority order must win over goroutine completion order
	first := &stubStrategy{name: "first", out: []PartialCandidate{pc("a.com", "com"), pc("shared.com", "com")}}
	second := &stubStrategy{name: "second", out: []PartialCandidate{pc("shared.com", "com"), pc("z.com", "com")}}
	m := NewMerger(first, second)

	q := &Query{Tokens: []string{"a"}}
	want, err := m.Merge(context.Background(), q)
	require.Nil(t, err)
	for i := 0; i < 50; i++ {
		got, err := m.Merge(context.Background(), q)
		require.Nil(t, err)
		require.Equal(t, want, got)
	}
}

func TestMergeAltCandidates(t *testing.T) {
	first := &stubStrategy{name: "first", out: []PartialCandidate{pc("a.com", "com")}}
	m := NewMerger(first)

	merged, err := m.Merge(context.Background(), &Query{Tokens: []string{"a"}},
		pc("a.com", "com"),        // duplicate of a builtin result
		pc("Extra.IO", ".io"),     // normalized before merging
		pc("bad_domain.io", "io"), // malformed, dropped
		pc("orphan.net", "org"),   // suffix mismatch, dropped
	)
	require.Nil(t, err)
	require.Equal(t, []Candidate{
		{Domain: "a.com", Suffix: "com", Strategy: "first"},
		{Domain: "extra.io", Suffix: "io", Strategy: StrategyAlt},
	}, merged)
}

func TestMergeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMerger(&stubStrategy{name: "first", out: []PartialCandidate{pc("a.com", "com")}})
	_, err := m.Merge(ctx, &Query{Tokens: []string{"a"}})
	require.Error(t, err)
}
