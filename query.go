package brandforge

import (
	"regexp"
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	"golang.org/x/net/publicsuffix"
)

var (
	tokenRegex = regexp.MustCompile(`[a-z0-9]+`)
	tldRegex   = regexp.MustCompile(`^[a-z]{2,63}(\.[a-z]{2,63})?$`)
)

// Query is the processed, immutable unit of work handed to every strategy.
// It is built once per search via Generator.New and read-only afterwards.
type Query struct {
	// ordered unique lowercase tokens, stop-words removed
	Tokens []string
	// token -> ordered related words (token itself excluded)
	Synonyms map[string][]string
	// normalized TLDs without leading dot, insertion order = priority
	OrderedTLDs []string
	// emit hyphenated label variants
	IncludeHyphenated bool
	// generation budget / result cap
	Limit int
	// affixes attached by the affix strategy
	Prefixes []string
	Suffixes []string
	// optional ccTLD used for the location bonus while scoring
	Location string
}

// Tokenize splits a raw query into lowercase alphanumeric tokens,
// dropping stop-words and duplicates while preserving order.
func Tokenize(query string) []string {
	matches := tokenRegex.FindAllString(strings.ToLower(query), -1)
	tokens := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, tok := range matches {
		if _, ok := stopWords[tok]; ok {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}

// normalizeTLDs lowercases and validates TLDs, preserving input order and
// dropping duplicates. Unknown suffixes are allowed but flagged since they
// usually indicate a typo.
func normalizeTLDs(tlds []string) ([]string, error) {
	out := make([]string, 0, len(tlds))
	seen := make(map[string]struct{}, len(tlds))
	for _, tld := range tlds {
		tld = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tld), "."))
		if tld == "" {
			continue
		}
		if !tldRegex.MatchString(tld) {
			return nil, errorutil.NewWithTag("brandforge", "malformed tld: %v", tld)
		}
		if _, icann := publicsuffix.PublicSuffix("example." + tld); !icann {
			gologger.Warning().Msgf("tld %v is not a known public suffix", tld)
		}
		if _, ok := seen[tld]; ok {
			continue
		}
		seen[tld] = struct{}{}
		out = append(out, tld)
	}
	return out, nil
}
