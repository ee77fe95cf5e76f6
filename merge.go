package brandforge

import (
	"context"
	"strings"

	"github.com/brandforge/brandforge/internal/dedupe"
	"github.com/projectdiscovery/gologger"
	"golang.org/x/sync/errgroup"
)

// Merger fans the generation strategies out over the same query and unions
// their outputs into a deduplicated candidate list.
type Merger struct {
	strategies []Strategy
}

// NewMerger returns a merger over the given strategies; with none given the
// builtin set is used. Strategy order is the dedupe priority order.
func NewMerger(strategies ...Strategy) *Merger {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Merger{strategies: strategies}
}

// Merge runs every strategy concurrently, tags each candidate with its
// originating strategy and deduplicates by full domain string. Each
// strategy writes into its own slot, so the first-occurrence-wins rule
// follows strategy priority order, never goroutine completion order.
// Alt candidates (AI or other external generators) are appended after the
// builtin strategies and participate in the same dedupe.
func (m *Merger) Merge(ctx context.Context, q *Query, alt ...PartialCandidate) ([]Candidate, error) {
	slots := make([][]PartialCandidate, len(m.strategies))
	g, gctx := errgroup.WithContext(ctx)
	for i, strategy := range m.strategies {
		i, strategy := i, strategy
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			slots[i] = strategy.Generate(q)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	backend := dedupe.NewMapBackend()
	defer backend.Cleanup()
	var merged []Candidate
	for i, slot := range slots {
		name := m.strategies[i].Name()
		for _, pc := range slot {
			if c, ok := acceptCandidate(pc, name, backend); ok {
				merged = append(merged, c)
			}
		}
	}
	for _, pc := range alt {
		if c, ok := acceptCandidate(pc, StrategyAlt, backend); ok {
			merged = append(merged, c)
		}
	}
	return merged, nil
}

// acceptCandidate normalizes and validates a strategy output, dropping
// duplicates and malformed domains. External generators are not trusted to
// hand back clean input, so the charset check applies to every source.
func acceptCandidate(pc PartialCandidate, strategy string, backend dedupe.Backend) (Candidate, bool) {
	domain := strings.ToLower(strings.TrimSpace(pc.Domain))
	suffix := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(pc.Suffix), "."))
	if suffix == "" || !strings.HasSuffix(domain, "."+suffix) {
		gologger.Warning().Msgf("skipping %v candidate %v: domain does not end with suffix %v", strategy, domain, suffix)
		return Candidate{}, false
	}
	if !domainRegex.MatchString(domain) || strings.TrimSuffix(domain, "."+suffix) == "" {
		gologger.Warning().Msgf("skipping %v candidate %v: malformed domain", strategy, domain)
		return Candidate{}, false
	}
	if !backend.Upsert(domain) {
		return Candidate{}, false
	}
	return Candidate{Domain: domain, Suffix: suffix, Strategy: strategy}, true
}
