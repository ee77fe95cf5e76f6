package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/brandforge/brandforge"
	"github.com/brandforge/brandforge/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	cliOpts := runner.ParseFlags()

	opts := &brandforge.Options{
		Query:             cliOpts.Query,
		TLDs:              cliOpts.TLDs,
		Location:          cliOpts.Location,
		Prefixes:          cliOpts.Prefixes,
		Suffixes:          cliOpts.Suffixes,
		IncludeHyphenated: cliOpts.Hyphenated,
		Limit:             cliOpts.Limit,
		Offset:            cliOpts.Offset,
		MaxSynonyms:       cliOpts.MaxSynonyms,
		MaxStrategyRun:    cliOpts.MaxStrategyRun,
	}

	if cliOpts.Config != "" {
		cfg := runner.MergeConfig(cliOpts.Config)
		if cfg.Scoring != nil {
			opts.Scoring = cfg.Scoring
		}
	}

	g, err := brandforge.New(opts)
	if err != nil {
		gologger.Fatal().Msgf("failed to prepare generator got %v", err)
	}

	if cliOpts.Estimate {
		gologger.Info().Msgf("Estimated distinct candidates: %v", g.EstimateCount())
		return
	}

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	res, err := g.ExecuteResult(context.Background())
	if err != nil {
		gologger.Fatal().Msgf("generation failed: %v", err)
	}

	if cliOpts.JSON {
		enc := json.NewEncoder(output)
		for i := range res.Candidates {
			if err := enc.Encode(&res.Candidates[i]); err != nil {
				gologger.Error().Msgf("failed to write output got %v", err)
				return
			}
		}
	} else {
		for i := range res.Candidates {
			if _, err := output.Write([]byte(res.Candidates[i].Domain + "\n")); err != nil {
				gologger.Error().Msgf("failed to write output got %v", err)
				return
			}
		}
	}

	gologger.Info().Msgf("Returned %v of %v distinct candidates in %v", len(res.Candidates), res.Total, res.Elapsed)
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
