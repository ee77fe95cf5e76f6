package brandforge

import "sort"

// RankOptions tune the diversity-aware selection.
type RankOptions struct {
	// result window; Limit <= 0 means everything
	Limit  int
	Offset int
	// max consecutive picks sharing a strategy before an alternative is
	// preferred (default 1: never the same strategy twice in a row when an
	// alternative exists in the window)
	MaxStrategyRun int
	// how many still-queued items per group are scanned for a pick
	// (default 6)
	Lookahead int
}

func (o RankOptions) normalized() RankOptions {
	if o.MaxStrategyRun <= 0 {
		o.MaxStrategyRun = 1
	}
	if o.Lookahead <= 0 {
		o.Lookahead = 6
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}

type suffixGroup struct {
	suffix string
	items  []Candidate
}

// Rank orders scored candidates by descending score, then interleaves
// TLD groups while avoiding repeated labels and long same-strategy runs.
// Pure score order would let one cheap high-scoring strategy flood the top
// with near-duplicate names; a little score-optimality is traded for
// perceived variety.
func Rank(candidates []Candidate, opts RankOptions) []Candidate {
	opts = opts.normalized()

	sorted := append([]Candidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return scoreTotal(&sorted[i]) > scoreTotal(&sorted[j])
	})

	// group by suffix; first-seen order over the sorted slice equals
	// ordering groups by their own top score descending
	var groups []*suffixGroup
	index := map[string]*suffixGroup{}
	for _, c := range sorted {
		g, ok := index[c.Suffix]
		if !ok {
			g = &suffixGroup{suffix: c.Suffix}
			index[c.Suffix] = g
			groups = append(groups, g)
		}
		g.items = append(g.items, c)
	}

	target := len(sorted)
	if opts.Limit > 0 && opts.Offset+opts.Limit < target {
		target = opts.Offset + opts.Limit
	}

	out := make([]Candidate, 0, target)
	usedLabels := map[string]struct{}{}
	lastStrategy := ""
	runLength := 0

	for len(groups) > 0 && len(out) < target {
		picked := false
		for _, g := range groups {
			if len(out) >= target {
				break
			}
			if len(g.items) == 0 {
				continue
			}
			k := pickFromGroup(g, usedLabels, lastStrategy, runLength, opts)
			choice := g.items[k]
			g.items = append(g.items[:k], g.items[k+1:]...)

			usedLabels[choice.Label()] = struct{}{}
			if choice.Strategy == lastStrategy {
				runLength++
			} else {
				lastStrategy = choice.Strategy
				runLength = 1
			}
			out = append(out, choice)
			picked = true
		}
		// guard against stalling; with the window-head fallback a nonempty
		// group always yields a pick, so this only trips on logic drift
		if !picked {
			break
		}
		live := groups[:0]
		for _, g := range groups {
			if len(g.items) > 0 {
				live = append(live, g)
			}
		}
		groups = live
	}

	if opts.Offset >= len(out) {
		return nil
	}
	out = out[opts.Offset:]
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}

// pickFromGroup scans the group's lookahead window and returns the index
// of the item to emit next. Preference order: unused label respecting the
// strategy-run constraint, then any unused label, then the window head
// (accepting a duplicate label rather than stalling).
func pickFromGroup(g *suffixGroup, usedLabels map[string]struct{}, lastStrategy string, runLength int, opts RankOptions) int {
	window := opts.Lookahead
	if window > len(g.items) {
		window = len(g.items)
	}
	fallback := -1
	for k := 0; k < window; k++ {
		it := &g.items[k]
		if _, used := usedLabels[it.Label()]; used {
			continue
		}
		if fallback < 0 {
			fallback = k
		}
		if it.Strategy == lastStrategy && runLength >= opts.MaxStrategyRun {
			continue
		}
		return k
	}
	if fallback >= 0 {
		return fallback
	}
	return 0
}

// RerankWithDemand applies the availability signal: every candidate whose
// label is shared by one or more known-unavailable candidates gets an
// additive availabilityDemand component on a fresh scored copy, then the
// adjusted set is re-ranked. With no demand at all the input is returned
// untouched.
func RerankWithDemand(ranked, unavailable []Candidate, cfg *ScoringConfig, opts RankOptions) []Candidate {
	if cfg == nil {
		cfg = DefaultScoringConfig()
	}
	demand := map[string]int{}
	for i := range unavailable {
		demand[unavailable[i].Label()]++
	}
	if len(demand) == 0 {
		return ranked
	}
	adjusted := make([]Candidate, len(ranked))
	for i := range ranked {
		adjusted[i] = ranked[i]
		if n := demand[ranked[i].Label()]; n > 0 && ranked[i].Score != nil {
			adjusted[i].Score = ranked[i].Score.withComponent(ComponentAvailabilityDemand, float64(n)*cfg.DemandBonus)
		}
	}
	return Rank(adjusted, opts)
}

func scoreTotal(c *Candidate) float64 {
	if c.Score == nil {
		return 0
	}
	return c.Score.Total
}
