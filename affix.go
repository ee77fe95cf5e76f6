package brandforge

// Affix patterns rendered for every (affix, base label) combination.
var (
	prefixPattern = "{{affix}}{{label}}"
	suffixPattern = "{{label}}{{affix}}"
)

// AffixStrategy attaches configured prefixes and suffixes to base label
// combinations. No budget short-circuit is needed: the output is bounded
// by |prefixes+suffixes| x |bases| x |tlds|.
type AffixStrategy struct{}

func (s *AffixStrategy) Name() string { return StrategyAffix }

func (s *AffixStrategy) Generate(q *Query) []PartialCandidate {
	bases := baseLabels(q)
	labels := make([]string, 0, len(bases)*(len(q.Prefixes)+len(q.Suffixes)))
	seen := map[string]struct{}{}
	add := func(label string) {
		if _, ok := seen[label]; ok {
			return
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	for _, base := range bases {
		for _, prefix := range q.Prefixes {
			add(Replace(prefixPattern, map[string]interface{}{"affix": prefix, "label": base}))
		}
		for _, suffix := range q.Suffixes {
			add(Replace(suffixPattern, map[string]interface{}{"affix": suffix, "label": base}))
		}
	}
	return pairWithTLDs(labels, q.OrderedTLDs, 0)
}
