package brandforge

import (
	"hash/fnv"
	"math/rand"
	"strings"
)

// PermutationStrategy builds labels from combinatorial joins of token and
// synonym lists: every word standalone, plus pairwise concatenations in
// both orders (hyphenated variants when enabled). The full cross-product
// of all token positions is deliberately never taken.
type PermutationStrategy struct{}

func (s *PermutationStrategy) Name() string { return StrategyPermutation }

func (s *PermutationStrategy) Generate(q *Query) []PartialCandidate {
	return pairWithTLDs(s.labels(q), q.OrderedTLDs, q.Limit)
}

func (s *PermutationStrategy) labels(q *Query) []string {
	var out []string
	seen := map[string]struct{}{}
	add := func(label string) bool {
		if q.Limit > 0 && len(out) >= q.Limit {
			return false
		}
		if _, ok := seen[label]; !ok {
			seen[label] = struct{}{}
			out = append(out, label)
		}
		return true
	}

	if len(q.Tokens) == 1 {
		for _, word := range baseList(q, q.Tokens[0]) {
			if !add(word) {
				break
			}
		}
		return out
	}

	// every individual token/synonym stands alone first
	for _, token := range q.Tokens {
		for _, word := range baseList(q, token) {
			if !add(word) {
				return out
			}
		}
	}

	// all C(n,2) position pairs; the iteration order is shuffled with a
	// seed derived from the tokens so earlier positions get no systematic
	// bias while identical queries still reproduce identical output
	for _, p := range tokenPairs(q.Tokens) {
		first, second := baseList(q, q.Tokens[p[0]]), baseList(q, q.Tokens[p[1]])
		for _, a := range first {
			for _, b := range second {
				if !add(a+b) || !add(b+a) {
					return out
				}
				if q.IncludeHyphenated {
					if !add(a+"-"+b) || !add(b+"-"+a) {
						return out
					}
				}
			}
		}
	}
	return out
}

func tokenPairs(tokens []string) [][2]int {
	n := len(tokens)
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	rng := rand.New(rand.NewSource(tokenSeed(tokens)))
	rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
	return pairs
}

func tokenSeed(tokens []string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(tokens, "\x00")))
	return int64(h.Sum64())
}
