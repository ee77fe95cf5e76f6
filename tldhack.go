package brandforge

import "strings"

// TLDHackStrategy splices base labels whose tail matches a supported TLD,
// turning "brandly" into "brand.ly". Labels already containing a dot are
// skipped; output is deduplicated on the spliced domain.
type TLDHackStrategy struct{}

func (s *TLDHackStrategy) Name() string { return StrategyTLDHack }

func (s *TLDHackStrategy) Generate(q *Query) []PartialCandidate {
	var out []PartialCandidate
	seen := map[string]struct{}{}
	for _, label := range baseLabels(q) {
		if strings.Contains(label, ".") {
			continue
		}
		for _, tld := range q.OrderedTLDs {
			// labels and TLDs are normalized to lowercase upstream, so a
			// plain suffix check is already case-insensitive
			if !strings.HasSuffix(label, tld) {
				continue
			}
			head := strings.TrimSuffix(label[:len(label)-len(tld)], "-")
			if head == "" {
				continue
			}
			domain := head + "." + tld
			if _, ok := seen[domain]; ok {
				continue
			}
			seen[domain] = struct{}{}
			out = append(out, PartialCandidate{Domain: domain, Suffix: tld})
		}
	}
	return out
}
