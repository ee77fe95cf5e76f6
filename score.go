package brandforge

import "strings"

// Score component names. The set is closed: callers can rely on these keys
// when explaining a score to the user.
const (
	ComponentBase                    = "base"
	ComponentLengthPenalty           = "lengthPenalty"
	ComponentHyphenPenalty           = "hyphenPenalty"
	ComponentNumberPenalty           = "numberPenalty"
	ComponentVowelRatio              = "vowelRatio"
	ComponentLowVowelPenalty         = "lowVowelPenalty"
	ComponentConsonantClusterPenalty = "consonantClusterPenalty"
	ComponentRepeatedLettersPenalty  = "repeatedLettersPenalty"
	ComponentTLDWeight               = "tldWeight"
	ComponentLocationBonus           = "locationBonus"
	ComponentDictWord                = "dictWord"
	ComponentDictSubstr              = "dictSubstr"
	ComponentAvailabilityDemand      = "availabilityDemand"
)

// Score is a structured brandability score: the total plus the named
// non-zero components that produced it.
type Score struct {
	Total      float64            `json:"total"`
	Components map[string]float64 `json:"components"`
}

// add sums value into the total and records it as a named component when
// non-zero.
func (s *Score) add(name string, value float64) {
	if value != 0 {
		s.Components[name] = value
	}
	s.Total += value
}

// withComponent returns a copy of the score with one extra component.
// The receiver is never mutated: scored candidates are shared.
func (s *Score) withComponent(name string, value float64) *Score {
	clone := &Score{Total: s.Total, Components: make(map[string]float64, len(s.Components)+1)}
	for k, v := range s.Components {
		clone.Components[k] = v
	}
	clone.add(name, value)
	return clone
}

// ScoringConfig holds the named weights of the brandability heuristic.
// Immutable per search; callers override any subset of the defaults.
type ScoringConfig struct {
	BaseScore               float64            `yaml:"base-score"`
	PerCharPenalty          float64            `yaml:"per-char-penalty"`
	HyphenPenalty           float64            `yaml:"hyphen-penalty"`
	NumberPenalty           float64            `yaml:"number-penalty"`
	VowelWeight             float64            `yaml:"vowel-weight"`
	VowelThreshold          float64            `yaml:"vowel-threshold"`
	LowVowelPenalty         float64            `yaml:"low-vowel-penalty"`
	ConsonantClusterPenalty float64            `yaml:"consonant-cluster-penalty"`
	RepeatedLettersPenalty  float64            `yaml:"repeated-letters-penalty"`
	TLDWeights              map[string]float64 `yaml:"tld-weights"`
	LocationBonus           float64            `yaml:"location-bonus"`
	DictWordBonus           float64            `yaml:"dict-word-bonus"`
	DictSubstrBonus         float64            `yaml:"dict-substr-bonus"`
	DemandBonus             float64            `yaml:"demand-bonus"`
}

// DefaultScoringConfig returns the documented default weights.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		BaseScore:               100,
		PerCharPenalty:          1.5,
		HyphenPenalty:           12,
		NumberPenalty:           10,
		VowelWeight:             20,
		VowelThreshold:          0.25,
		LowVowelPenalty:         10,
		ConsonantClusterPenalty: 15,
		RepeatedLettersPenalty:  10,
		TLDWeights:              DefaultTLDWeights,
		LocationBonus:           15,
		DictWordBonus:           25,
		DictSubstrBonus:         12,
		DemandBonus:             5,
	}
}

// Scorer computes brandability scores. Pure and deterministic: the same
// label/suffix always yields the same score for a fixed config, dictionary
// and location, so it is safe to call at high volume and from multiple
// goroutines.
type Scorer struct {
	cfg      *ScoringConfig
	dict     *Dictionary
	location string
}

// NewScorer builds a scorer; nil config or dictionary fall back to the
// builtin defaults. locationTLD is the optional country TLD granted the
// regional-relevance bonus.
func NewScorer(cfg *ScoringConfig, dict *Dictionary, locationTLD string) *Scorer {
	if cfg == nil {
		cfg = DefaultScoringConfig()
	}
	if dict == nil {
		dict = DefaultDictionary
	}
	return &Scorer{cfg: cfg, dict: dict, location: strings.ToLower(locationTLD)}
}

// ScoreDomain scores a label/suffix pair. Components are recorded only
// when non-zero but every term is summed into the total.
func (s *Scorer) ScoreDomain(label, suffix string) *Score {
	cfg := s.cfg
	score := &Score{Components: map[string]float64{}}

	score.add(ComponentBase, cfg.BaseScore)
	score.add(ComponentLengthPenalty, -float64(len(label)+len(suffix))*cfg.PerCharPenalty)
	score.add(ComponentHyphenPenalty, -float64(strings.Count(label, "-"))*cfg.HyphenPenalty)
	score.add(ComponentNumberPenalty, -float64(countDigits(label))*cfg.NumberPenalty)

	ratio := vowelRatio(label)
	score.add(ComponentVowelRatio, ratio*cfg.VowelWeight)
	if ratio < cfg.VowelThreshold {
		score.add(ComponentLowVowelPenalty, -cfg.LowVowelPenalty)
	}
	if consonantClusterRegex.MatchString(label) {
		score.add(ComponentConsonantClusterPenalty, -cfg.ConsonantClusterPenalty)
	}
	if hasRepeatedLetters(label, 3) {
		score.add(ComponentRepeatedLettersPenalty, -cfg.RepeatedLettersPenalty)
	}

	score.add(ComponentTLDWeight, cfg.TLDWeights[suffix])
	if s.location != "" && strings.EqualFold(suffix, s.location) {
		score.add(ComponentLocationBonus, cfg.LocationBonus)
	}

	if s.dict.Contains(label) {
		score.add(ComponentDictWord, cfg.DictWordBonus)
	} else if s.dict.Decomposes(label) {
		score.add(ComponentDictSubstr, cfg.DictSubstrBonus)
	}
	return score
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
