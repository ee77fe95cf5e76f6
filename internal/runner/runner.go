package runner

import (
	"os"

	"github.com/brandforge/brandforge"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
)

var version = "v0.1.0"

type Options struct {
	Query          string
	TLDs           goflags.StringSlice // TLDs to pair generated labels with
	Location       string              // country TLD granted the regional bonus
	Prefixes       goflags.StringSlice
	Suffixes       goflags.StringSlice
	Hyphenated     bool
	Limit          int
	Offset         int
	MaxSynonyms    int
	MaxStrategyRun int
	Config         string
	Output         string
	JSON           bool
	Estimate       bool
	Verbose        bool
	Silent         bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Brandable domain name generator: expands a short query into scored, ranked candidate domains.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Query, "query", "q", "", "query text to expand into domain candidates"),
		flagSet.StringSliceVarP(&opts.TLDs, "tld", "t", nil, "tlds to pair generated labels with (comma-separated)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Location, "location", "loc", "", "country tld granted the regional relevance bonus"),
	)

	flagSet.CreateGroup("generation", "Generation",
		flagSet.StringSliceVarP(&opts.Prefixes, "prefix", "px", nil, "prefixes attached to base labels (comma-separated)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&opts.Suffixes, "suffix", "sx", nil, "suffixes attached to base labels (comma-separated)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.BoolVarP(&opts.Hyphenated, "hyphenated", "hy", false, "also emit hyphenated label variants"),
		flagSet.IntVarP(&opts.MaxSynonyms, "max-synonyms", "msy", 0, "max synonyms expanded per token (default 6)"),
		flagSet.IntVar(&opts.Limit, "limit", 0, "limit the number of results to return (default 100)"),
		flagSet.IntVar(&opts.Offset, "offset", 0, "skip ranked results for pagination"),
		flagSet.IntVarP(&opts.MaxStrategyRun, "max-strategy-run", "msr", 0, "max consecutive picks per strategy while ranking (default 1)"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", "brandforge config file with affixes and scoring weights"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write generated domains"),
		flagSet.BoolVarP(&opts.JSON, "json", "j", false, "write candidates as json lines with score components"),
		flagSet.BoolVarP(&opts.Estimate, "estimate", "es", false, "estimate candidate count without ranking output"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display brandforge version"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if opts.Config != "" && !fileutil.FileExists(opts.Config) {
		gologger.Fatal().Msgf("config file %v does not exist", opts.Config)
	}

	if opts.Query == "" {
		gologger.Fatal().Msgf("brandforge: no query provided")
	}

	return opts
}

// MergeConfig folds a user config file into the package defaults so that
// options built from flags pick them up, and returns it for the scoring
// overrides it may carry.
func MergeConfig(path string) *brandforge.Config {
	cfg, err := brandforge.NewConfig(path)
	if err != nil {
		gologger.Fatal().Msgf("failed to read config file %v got: %v", path, err)
	}
	if len(cfg.Prefixes) > 0 {
		brandforge.DefaultConfig.Prefixes = cfg.Prefixes
	}
	if len(cfg.Suffixes) > 0 {
		brandforge.DefaultConfig.Suffixes = cfg.Suffixes
	}
	if len(cfg.TLDs) > 0 {
		brandforge.DefaultConfig.TLDs = cfg.TLDs
	}
	if len(cfg.TLDWeights) > 0 {
		brandforge.DefaultConfig.TLDWeights = cfg.TLDWeights
	}
	return cfg
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
