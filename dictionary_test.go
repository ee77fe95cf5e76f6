package brandforge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictionaryContains(t *testing.T) {
	d := NewDictionary([]string{"Fast", "tech"})
	require.True(t, d.Contains("fast"))
	require.True(t, d.Contains("tech"))
	require.False(t, d.Contains("fasttech"))
}

func TestDictionaryDecomposes(t *testing.T) {
	d := NewDictionary([]string{"fast", "tech", "stellar", "compass"})

	require.True(t, d.Decomposes("fasttech"))
	require.True(t, d.Decomposes("fast-tech"))
	require.False(t, d.Decomposes("fast-tech-hub"))
	require.False(t, d.Decomposes("fastzzz"))

	// splits are probed only near either end of the label; a valid
	// mid-label split beyond the window is deliberately missed
	require.False(t, d.Decomposes("stellarcompass"))
}
