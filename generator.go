package brandforge

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// DefaultLimit bounds generation when the caller does not set one.
const DefaultLimit = 100

// default number of synonyms expanded per token
const defaultMaxSynonyms = 6

// AltSource is an optional external candidate generator (AI or otherwise)
// whose output is merged into the pipeline before scoring. Failures fall
// back to the builtin strategies silently.
type AltSource interface {
	Generate(ctx context.Context, q *Query) ([]PartialCandidate, error)
}

// Generator Options
type Options struct {
	// Query is the raw search text to expand
	Query string
	// TLDs to pair labels with; defaults to DefaultConfig.TLDs when empty
	TLDs []string
	// Location is an optional country TLD granted the regional bonus
	Location string
	// affixes attached by the affix strategy
	// if empty DefaultConfig values are used
	Prefixes []string
	Suffixes []string
	// emit hyphenated label variants
	IncludeHyphenated bool
	// Limit caps generation and the ranked result (0 = DefaultLimit)
	Limit int
	// Offset skips ranked results for pagination
	Offset int
	// MaxStrategyRun and Lookahead tune ranking diversity (see RankOptions)
	MaxStrategyRun int
	Lookahead      int
	// MaxSynonyms caps expansion per token
	MaxSynonyms int
	// Scoring overrides the default weights
	Scoring *ScoringConfig
	// Thesaurus backs synonym expansion; builtin table when nil
	Thesaurus Thesaurus
	// Dictionary backs the word bonuses; builtin set when nil
	Dictionary *Dictionary
	// AltSource merges extra external candidates (optional)
	AltSource AltSource
	// Checker enables the availability-demand re-rank (optional)
	Checker Checker
	// CheckTimeout bounds one availability batch (default 5s)
	CheckTimeout time.Duration
}

// Result is the ranked output plus aggregate metadata.
type Result struct {
	Candidates []Candidate `json:"candidates"`
	// distinct candidates after merge/dedupe, before ranking
	Total       int            `json:"total"`
	PerStrategy map[string]int `json:"per_strategy"`
	Elapsed     time.Duration  `json:"elapsed"`
	TLDFiltered bool           `json:"tld_filtered"`
}

// Generator runs the generate -> merge -> score -> rank pipeline for one
// processed query.
type Generator struct {
	Options *Options

	query          *Query
	merger         *Merger
	scorer         *Scorer
	tldFiltered    bool
	candidateCount int
}

// New creates and returns a new generator instance from options
func New(opts *Options) (*Generator, error) {
	if opts == nil || strings.TrimSpace(opts.Query) == "" {
		return nil, errorutil.NewWithTag("brandforge", "no query provided to generate names")
	}
	tokens := Tokenize(opts.Query)
	if len(tokens) == 0 {
		return nil, errorutil.NewWithTag("brandforge", "query %q contains no usable tokens", opts.Query)
	}

	tldFiltered := len(opts.TLDs) > 0
	tldInput := opts.TLDs
	if len(tldInput) == 0 {
		tldInput = DefaultConfig.TLDs
	}
	tlds, err := normalizeTLDs(tldInput)
	if err != nil {
		return nil, err
	}

	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Offset < 0 {
		return nil, errorutil.NewWithTag("brandforge", "offset cannot be negative")
	}
	if opts.MaxSynonyms <= 0 {
		opts.MaxSynonyms = defaultMaxSynonyms
	}
	if opts.Prefixes == nil {
		opts.Prefixes = DefaultConfig.Prefixes
	}
	if opts.Suffixes == nil {
		opts.Suffixes = DefaultConfig.Suffixes
	}
	opts.Prefixes = cleanAffixes("prefix", opts.Prefixes)
	opts.Suffixes = cleanAffixes("suffix", opts.Suffixes)

	expander := NewExpander(opts.Thesaurus)
	synonyms := make(map[string][]string, len(tokens))
	for _, token := range tokens {
		words := expander.Expand(token, opts.MaxSynonyms)
		// by convention the expansion list excludes the token itself
		if len(words) == 1 && words[0] == token {
			words = nil
		}
		synonyms[token] = words
	}

	location := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(opts.Location), "."))

	scoring := opts.Scoring
	if scoring == nil {
		scoring = DefaultScoringConfig()
	}
	if scoring.TLDWeights == nil {
		scoring.TLDWeights = DefaultConfig.TLDWeights
	}

	g := &Generator{
		Options: opts,
		query: &Query{
			Tokens:            tokens,
			Synonyms:          synonyms,
			OrderedTLDs:       tlds,
			IncludeHyphenated: opts.IncludeHyphenated,
			Limit:             opts.Limit,
			Prefixes:          opts.Prefixes,
			Suffixes:          opts.Suffixes,
			Location:          location,
		},
		merger:      NewMerger(),
		scorer:      NewScorer(scoring, opts.Dictionary, location),
		tldFiltered: tldFiltered,
	}
	return g, nil
}

// cleanAffixes lowercases affixes, drops values that cannot appear in a
// domain label and purges duplicates.
func cleanAffixes(kind string, affixes []string) []string {
	valid := make([]string, 0, len(affixes))
	for _, affix := range affixes {
		affix = strings.ToLower(strings.TrimSpace(affix))
		if affix == "" {
			continue
		}
		if !labelRegex.MatchString(affix) {
			gologger.Warning().Msgf("skipping invalid %v %q", kind, affix)
			continue
		}
		valid = append(valid, affix)
	}
	deduped := sliceutil.Dedupe(valid)
	if len(valid) != len(deduped) {
		gologger.Warning().Msgf("%v duplicate %ves found. purging them..", len(valid)-len(deduped), kind)
	}
	return deduped
}

// Query returns the processed query the strategies run over.
func (g *Generator) Query() *Query {
	return g.query
}

// Execute runs the full pipeline and returns the ranked candidates.
// Output is deterministic for fixed options and dictionary state.
func (g *Generator) Execute(ctx context.Context) ([]Candidate, error) {
	res, err := g.ExecuteResult(ctx)
	if err != nil {
		return nil, err
	}
	return res.Candidates, nil
}

// ExecuteResult runs the full pipeline and returns the ranked candidates
// together with aggregate metadata.
func (g *Generator) ExecuteResult(ctx context.Context) (*Result, error) {
	start := time.Now()

	var alt []PartialCandidate
	if g.Options.AltSource != nil {
		got, err := g.Options.AltSource.Generate(ctx, g.query)
		if err != nil {
			gologger.Warning().Msgf("alternate generator failed, continuing without it: %v", err)
		} else {
			alt = got
		}
	}

	merged, err := g.merger.Merge(ctx, g.query, alt...)
	if err != nil {
		return nil, err
	}
	g.candidateCount = len(merged)

	perStrategy := make(map[string]int, 4)
	for i := range merged {
		merged[i].Score = g.scorer.ScoreDomain(merged[i].Label(), merged[i].Suffix)
		perStrategy[merged[i].Strategy]++
	}

	rankOpts := RankOptions{
		Limit:          g.Options.Limit,
		Offset:         g.Options.Offset,
		MaxStrategyRun: g.Options.MaxStrategyRun,
		Lookahead:      g.Options.Lookahead,
	}

	var ranked []Candidate
	if unavailable := g.unavailable(ctx, merged); len(unavailable) > 0 {
		ranked = RerankWithDemand(merged, unavailable, g.scorer.cfg, rankOpts)
	} else {
		ranked = Rank(merged, rankOpts)
	}

	return &Result{
		Candidates:  ranked,
		Total:       len(merged),
		PerStrategy: perStrategy,
		Elapsed:     time.Since(start),
		TLDFiltered: g.tldFiltered,
	}, nil
}

// unavailable runs the optional availability check and returns the
// candidates known to be taken. Errors and timeouts degrade to an empty
// result, never to a failed search.
func (g *Generator) unavailable(ctx context.Context, candidates []Candidate) []Candidate {
	if g.Options.Checker == nil || len(candidates) == 0 {
		return nil
	}
	domains := make([]string, len(candidates))
	for i := range candidates {
		domains[i] = candidates[i].Domain
	}
	statuses := CheckWithTimeout(ctx, g.Options.Checker, domains, g.Options.CheckTimeout)
	var unavailable []Candidate
	for i := range candidates {
		if statuses[candidates[i].Domain].Unavailable() {
			unavailable = append(unavailable, candidates[i])
		}
	}
	return unavailable
}

// ExecuteWithWriter executes the Generator and writes ranked domains
// directly to a type that implements the io.Writer interface
func (g *Generator) ExecuteWithWriter(writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("brandforge", "writer destination cannot be nil")
	}
	ranked, err := g.Execute(context.TODO())
	if err != nil {
		return err
	}
	for i := range ranked {
		if _, err := writer.Write([]byte(ranked[i].Domain + "\n")); err != nil {
			return err
		}
	}
	return nil
}

// EstimateCount estimates the number of distinct candidates generation
// will produce and caches it for CandidateCount.
func (g *Generator) EstimateCount() int {
	merged, err := g.merger.Merge(context.Background(), g.query)
	if err != nil {
		return 0
	}
	g.candidateCount = len(merged)
	return g.candidateCount
}

// CandidateCount returns the last computed distinct candidate count.
func (g *Generator) CandidateCount() int {
	if g.candidateCount == 0 {
		g.EstimateCount()
	}
	return g.candidateCount
}
