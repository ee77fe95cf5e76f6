package brandforge

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the file-configurable generation and scoring defaults.
type Config struct {
	Prefixes   []string           `yaml:"prefixes"`
	Suffixes   []string           `yaml:"suffixes"`
	TLDs       []string           `yaml:"tlds"`
	TLDWeights map[string]float64 `yaml:"tld-weights"`
	Scoring    *ScoringConfig     `yaml:"scoring,omitempty"`
}

// DefaultConfig is consulted by New when Options leave affixes or TLDs
// unset; the runner may replace it from a user config file.
var DefaultConfig = Config{
	Prefixes:   DefaultPrefixes,
	Suffixes:   DefaultSuffixes,
	TLDs:       DefaultTLDs,
	TLDWeights: DefaultTLDWeights,
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	cfg := DefaultConfig
	cfg.Scoring = DefaultScoringConfig()
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
