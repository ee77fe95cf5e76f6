package brandforge

import (
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/go-porterstemmer"
)

// longer words make poor label material
const maxSynonymLength = 15

// Thesaurus looks up related words for a single word, grouped by category
// (noun/verb/related/..). Implementations may fail or return nothing; the
// expander degrades to the bare token in both cases.
type Thesaurus interface {
	Lookup(word string) (map[string][]string, error)
}

// StaticThesaurus is an in-memory Thesaurus backed by a fixed table.
type StaticThesaurus map[string][]string

func (st StaticThesaurus) Lookup(word string) (map[string][]string, error) {
	related, ok := st[word]
	if !ok {
		return nil, nil
	}
	return map[string][]string{"related": related}, nil
}

// Expander memoizes synonym lookups per token. The cache is owned by the
// expander instance (created at service start, never cleared); concurrent
// lookups for the same uncached token may recompute, which is harmless
// since Lookup is idempotent.
type Expander struct {
	source Thesaurus
	mu     sync.RWMutex
	memo   map[string][]string
}

// NewExpander returns an Expander backed by the given thesaurus.
// A nil source falls back to the builtin table.
func NewExpander(source Thesaurus) *Expander {
	if source == nil {
		source = DefaultThesaurus
	}
	return &Expander{
		source: source,
		memo:   map[string][]string{},
	}
}

// Expand returns up to max related words for token in a deterministic order
// (length, then lexicographic). On lookup failure or empty results the
// stemmed form of the token is retried once; if that also yields nothing
// the bare token is returned. Expand never fails.
func (e *Expander) Expand(token string, max int) []string {
	token = strings.ToLower(token)

	e.mu.RLock()
	cached, ok := e.memo[token]
	e.mu.RUnlock()
	if !ok {
		cached = e.expand(token)
		e.mu.Lock()
		e.memo[token] = cached
		e.mu.Unlock()
	}
	if len(cached) == 0 {
		return []string{token}
	}
	if max > 0 && len(cached) > max {
		cached = cached[:max]
	}
	// callers must not mutate the memoized slice
	return append([]string(nil), cached...)
}

func (e *Expander) expand(token string) []string {
	words := e.lookup(token)
	if len(words) == 0 {
		if stem := porterstemmer.StemString(token); stem != "" && stem != token {
			words = e.lookup(stem)
		}
	}
	return filterSynonyms(token, words)
}

func (e *Expander) lookup(word string) []string {
	categories, err := e.source.Lookup(word)
	if err != nil {
		// recoverable: the strategies fall back to the bare token
		return nil
	}
	// flatten categories in sorted key order for reproducibility
	keys := make([]string, 0, len(categories))
	for k := range categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var words []string
	for _, k := range keys {
		words = append(words, categories[k]...)
	}
	return words
}

func filterSynonyms(token string, words []string) []string {
	out := make([]string, 0, len(words))
	seen := map[string]struct{}{token: {}}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) <= 1 || len(w) > maxSynonymLength {
			continue
		}
		if !labelRegex.MatchString(w) {
			// malformed dictionary data, skip the variant
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
