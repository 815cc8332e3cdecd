package pyveil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestObfuscateLevels checks both levels through the public surface.
func TestObfuscateLevels(t *testing.T) {
	src := "# comment\nsecret_total = 1\n"

	res, err := Obfuscate(src, LevelLow)
	require.NoError(t, err)
	assert.Contains(t, res.Code, "var1")
	assert.Contains(t, res.Code, "# comment")
	require.Len(t, res.Mapping, 1)

	res, err = Obfuscate(src, LevelHigh)
	require.NoError(t, err)
	assert.Equal(t, "PLACEHOLDER_0 = 1", res.Code)

	_, err = Obfuscate(src, Level("paranoid"))
	assert.Error(t, err)
}

// TestDeobfuscateReversesMapping checks the reverse helper.
func TestDeobfuscateReversesMapping(t *testing.T) {
	res, err := Obfuscate("limit = 10\ncount = limit\n", LevelLow)
	require.NoError(t, err)
	assert.Equal(t, "limit = 10\ncount = limit\n", Deobfuscate(res.Code, res.Mapping))
}
