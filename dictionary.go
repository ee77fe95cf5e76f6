package brandforge

import "strings"

// decomposeWindow bounds the split points probed near either end of a
// label when checking whether it is a compound of two dictionary words.
// Mid-label splits of long labels are deliberately missed: the check is a
// cheap heuristic, not an exhaustive segmentation.
const decomposeWindow = 6

// Dictionary answers O(1) word-membership queries for the brandability
// bonuses. Precomputed and static for the lifetime of the service.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary builds a dictionary from a word list.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.words[strings.ToLower(w)] = struct{}{}
	}
	return d
}

// Contains reports whether word is a known dictionary word.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Decomposes reports whether label splits into exactly two dictionary
// words: the two hyphen-joined parts for hyphenated labels, otherwise a
// left/right split probed only within decomposeWindow characters of
// either end.
func (d *Dictionary) Decomposes(label string) bool {
	if parts := strings.Split(label, "-"); len(parts) == 2 {
		return d.Contains(parts[0]) && d.Contains(parts[1])
	}
	if strings.Contains(label, "-") {
		return false
	}
	n := len(label)
	for i := 1; i < n && i <= decomposeWindow; i++ {
		if d.Contains(label[:i]) && d.Contains(label[i:]) {
			return true
		}
	}
	for i := n - 1; i > 0 && i >= n-decomposeWindow; i-- {
		if d.Contains(label[:i]) && d.Contains(label[i:]) {
			return true
		}
	}
	return false
}
