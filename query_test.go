package brandforge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testcases := []struct {
		query    string
		expected []string
	}{
		{"Fast Tech", []string{"fast", "tech"}},
		{"The Fast-Tech SHOP!", []string{"fast", "tech", "shop"}},
		{"pay2go for devs", []string{"pay2go", "devs"}},
		{"fast fast FAST", []string{"fast"}},
		{"the and of", []string{}},
		{"", []string{}},
		{"  cafe & croissant  ", []string{"cafe", "croissant"}},
	}
	for _, tc := range testcases {
		require.EqualValues(t, tc.expected, Tokenize(tc.query), "query %q", tc.query)
	}
}

func TestNormalizeTLDs(t *testing.T) {
	got, err := normalizeTLDs([]string{" .COM ", "io", "com", ".co.uk", ""})
	require.Nil(t, err)
	require.Equal(t, []string{"com", "io", "co.uk"}, got)

	_, err = normalizeTLDs([]string{"com", "bad_tld"})
	require.Error(t, err)

	_, err = normalizeTLDs([]string{"c"})
	require.Error(t, err)
}
