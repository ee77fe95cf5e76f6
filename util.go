package brandforge

import (
	"regexp"
	"strings"
)

var (
	labelRegex            = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
	domainRegex           = regexp.MustCompile(`^[a-z0-9][a-z0-9-.]*[a-z0-9]$`)
	consonantClusterRegex = regexp.MustCompile(`[bcdfghjklmnpqrstvwxyz]{4,}`)
)

// vowelRatio returns count of [aeiou] over count of [a-z] in s,
// 0 if s contains no letters.
func vowelRatio(s string) float64 {
	letters, vowels := 0, 0
	for _, r := range s {
		if r < 'a' || r > 'z' {
			continue
		}
		letters++
		if strings.ContainsRune("aeiou", r) {
			vowels++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(vowels) / float64(letters)
}

// hasRepeatedLetters reports whether s contains a run of n or more
// identical consecutive letters. Implemented by hand since RE2 has no
// backreferences.
func hasRepeatedLetters(s string, n int) bool {
	run := 0
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}
