package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHighRenamesEverything checks that comments vanish and every identifier
// including the function name becomes a placeholder.
func TestHighRenamesEverything(t *testing.T) {
	src := "# note\nx = 1"
	high := NewHigh(DefaultHighOptions())
	out := high.Obfuscate(src)
	assert.Equal(t, "PLACEHOLDER_0 = 1", out)
	require.Len(t, high.Mapping(), 1)
	assert.Equal(t, Pair{Original: "x", Placeholder: "PLACEHOLDER_0"}, high.Mapping()[0])
}

// TestHighRenamesFunctions checks that def names get placeholders, with
// assignment following the sorted discovery order.
func TestHighRenamesFunctions(t *testing.T) {
	src := "def add(a, b):\n    return a + b\n\nresult = add(2, 3)"
	high := NewHigh(DefaultHighOptions())
	out := high.Obfuscate(src)
	assert.Equal(t,
		"def PLACEHOLDER_1(PLACEHOLDER_0, PLACEHOLDER_2):\n    return PLACEHOLDER_0 + PLACEHOLDER_2\n\nPLACEHOLDER_3 = PLACEHOLDER_1(2, 3)",
		out)
}

// TestHighRenamesDefWithDocstring checks a def loses both its name and its
// docstring while the keyword line structure survives.
func TestHighRenamesDefWithDocstring(t *testing.T) {
	src := "def foo():\n    \"\"\"doc\"\"\"\n    return 1"
	high := NewHigh(DefaultHighOptions())
	out := high.Obfuscate(src)
	assert.Equal(t, "def PLACEHOLDER_0():\n    return 1", out)
	assert.NotContains(t, out, "doc")
}

// TestHighInlineComment checks trailing comments vanish alongside renames.
func TestHighInlineComment(t *testing.T) {
	out := NewHigh(DefaultHighOptions()).Obfuscate("x = 5  # note")
	assert.Equal(t, "PLACEHOLDER_0 = 5", out)
}

// TestHighStripsDocstringsAndWhitespace checks the later pipeline stages:
// docstrings removed, blank runs collapsed, edges trimmed.
func TestHighStripsDocstringsAndWhitespace(t *testing.T) {
	src := "\n\n\"\"\"Module doc.\"\"\"\n\n\ndef f():\n    \"\"\"Doc.\"\"\"\n    return 1   \n\n\n"
	high := NewHigh(DefaultHighOptions())
	out := high.Obfuscate(src)
	assert.NotContains(t, out, "doc")
	assert.NotContains(t, out, "Doc")
	assert.False(t, strings.HasPrefix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.NotContains(t, out, "\n\n\n")
	assert.NotContains(t, out, " \n")
}

// TestHighMalformedKeepsCommentStripping checks the fail-soft order: comment
// stripping needs no parse, so unparseable input still loses its comments,
// keeps its identifiers, and produces no mapping.
func TestHighMalformedKeepsCommentStripping(t *testing.T) {
	src := "# secret note\ndef broken(:\n    pass"
	high := NewHigh(DefaultHighOptions())
	out := high.Obfuscate(src)
	assert.NotContains(t, out, "secret note")
	assert.Contains(t, out, "broken")
	assert.Empty(t, high.Mapping())
}

// TestHighBlankInput checks empty and whitespace-only inputs pass through
// all stages untouched.
func TestHighBlankInput(t *testing.T) {
	high := NewHigh(DefaultHighOptions())
	assert.Equal(t, "", high.Obfuscate(""))
	assert.Equal(t, " \n \n", high.Obfuscate(" \n \n"))
	assert.Empty(t, high.Mapping())
}

// TestHighHashInStringSurvives checks the comment scanner's string tracking.
func TestHighHashInStringSurvives(t *testing.T) {
	src := "tag = '#hashtag'  # trailing comment"
	high := NewHigh(DefaultHighOptions())
	out := high.Obfuscate(src)
	assert.Contains(t, out, "'#hashtag'")
	assert.NotContains(t, out, "trailing comment")
}

// TestHighDeterministic checks repeated runs agree byte for byte.
func TestHighDeterministic(t *testing.T) {
	src := "# c\ndef process(data):\n    \"\"\"d\"\"\"\n    cleaned = data.strip()\n    return cleaned"
	first := NewHigh(DefaultHighOptions()).Obfuscate(src)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, NewHigh(DefaultHighOptions()).Obfuscate(src))
	}
}

// TestHighToggles exercises the stage switches individually.
func TestHighToggles(t *testing.T) {
	src := "# keep\nx = 1\n\n\ny = 2"
	opts := DefaultHighOptions()
	opts.StripComments = false
	opts.NormalizeWhitespace = false
	out := NewHigh(opts).Obfuscate(src)
	assert.Contains(t, out, "# keep")
	assert.Contains(t, out, "\n\n\n")
}

// TestHighObfuscatedStaysValid checks renamed output still parses, so
// privacy metrics compare two valid programs.
func TestHighObfuscatedStaysValid(t *testing.T) {
	src := "def fib(n):\n    if n < 2:\n        return n\n    return fib(n - 1) + fib(n - 2)"
	high := NewHigh(DefaultHighOptions())
	out := high.Obfuscate(src)
	assert.True(t, high.ValidateCode(out))
}

// TestNewByLevel checks the level constructor and its rejection of unknown
// levels.
func TestNewByLevel(t *testing.T) {
	low, err := New(LevelLow)
	require.NoError(t, err)
	assert.Equal(t, LevelLow, low.Level())

	high, err := New(LevelHigh)
	require.NoError(t, err)
	assert.Equal(t, LevelHigh, high.Level())

	_, err = New(PrivacyLevel("medium"))
	assert.Error(t, err)
}
