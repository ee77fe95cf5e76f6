package brandforge

import "strings"

// Strategy names used as candidate provenance tags. The set is closed:
// the ranking engine keys its diversity constraints on these values.
const (
	StrategyPermutation = "permutation"
	StrategyAffix       = "affix"
	StrategyTLDHack     = "tldhack"
	StrategyAlt         = "alt"
)

// PartialCandidate is a strategy output before merging: the full domain
// string plus the TLD suffix it was paired with (no leading dot).
type PartialCandidate struct {
	Domain string
	Suffix string
}

// Candidate is one generated domain flowing through the pipeline. Strategy
// is set by the merger, Score by the scoring engine; after scoring a
// candidate is never mutated in place (the availability re-rank works on
// copies).
type Candidate struct {
	Domain   string `json:"domain"`
	Suffix   string `json:"suffix"`
	Strategy string `json:"strategy"`
	Score    *Score `json:"score,omitempty"`
}

// Label returns the domain with its TLD suffix stripped.
func (c *Candidate) Label() string {
	return strings.TrimSuffix(c.Domain, "."+c.Suffix)
}

// Strategy generates candidate domains from a processed query. Generate
// must be a pure function of its input so strategies are safely runnable
// concurrently over the same query.
type Strategy interface {
	Name() string
	Generate(q *Query) []PartialCandidate
}

// DefaultStrategies returns the builtin strategies in priority order.
// The order matters: the merger's first-occurrence-wins dedupe uses it.
func DefaultStrategies() []Strategy {
	return []Strategy{
		&PermutationStrategy{},
		&AffixStrategy{},
		&TLDHackStrategy{},
	}
}

// baseList returns the label material for one token: the token itself
// followed by its synonyms.
func baseList(q *Query, token string) []string {
	return append([]string{token}, q.Synonyms[token]...)
}

// baseLabels returns the shared base-label set used by the affix and
// tld-hack strategies: every token and synonym standalone, plus the plain
// in-order concatenations when the query has exactly two tokens.
func baseLabels(q *Query) []string {
	var out []string
	seen := map[string]struct{}{}
	add := func(label string) {
		if label == "" {
			return
		}
		if _, ok := seen[label]; ok {
			return
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	for _, token := range q.Tokens {
		for _, word := range baseList(q, token) {
			add(word)
		}
	}
	if len(q.Tokens) == 2 {
		for _, first := range baseList(q, q.Tokens[0]) {
			for _, second := range baseList(q, q.Tokens[1]) {
				add(first + second)
			}
		}
	}
	return out
}

// pairWithTLDs pairs every label with every TLD in priority order,
// deduplicating on the resulting domain. A non-positive limit means
// unbounded; hitting the limit is the designed early-termination path.
func pairWithTLDs(labels, tlds []string, limit int) []PartialCandidate {
	if len(tlds) == 0 {
		return nil
	}
	out := make([]PartialCandidate, 0, len(labels)*len(tlds))
	seen := map[string]struct{}{}
	for _, label := range labels {
		for _, tld := range tlds {
			if limit > 0 && len(out) >= limit {
				return out
			}
			domain := label + "." + tld
			if _, ok := seen[domain]; ok {
				continue
			}
			seen[domain] = struct{}{}
			out = append(out, PartialCandidate{Domain: domain, Suffix: tld})
		}
	}
	return out
}
