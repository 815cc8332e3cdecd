package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevenshteinDistance checks the classic cases.
func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"same", "same", 0},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevenshteinDistance(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

// TestEditDistanceScore checks normalization bounds.
func TestEditDistanceScore(t *testing.T) {
	assert.Equal(t, 0.0, EditDistanceScore("", ""))
	assert.Equal(t, 0.0, EditDistanceScore("x = 1", "x = 1"))
	assert.Equal(t, 1.0, EditDistanceScore("abc", "xyz"))
	score := EditDistanceScore("total = a + b", "var1 = var2 + var3")
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

// TestJaccardDistance checks set overlap semantics.
func TestJaccardDistance(t *testing.T) {
	assert.Equal(t, 0.0, JaccardDistance("", ""))
	assert.Equal(t, 0.0, JaccardDistance("a b c", "c b a"))
	assert.Equal(t, 1.0, JaccardDistance("alpha beta", "gamma delta"))
	assert.InDelta(t, 0.6, JaccardDistance("a b c", "a b d e"), 1e-9)
}

// TestCosineDistance checks frequency-vector semantics and edge cases.
func TestCosineDistance(t *testing.T) {
	assert.Equal(t, 0.0, CosineDistance("", ""))
	assert.Equal(t, 1.0, CosineDistance("something", ""))
	assert.InDelta(t, 0.0, CosineDistance("a a b", "a a b"), 1e-9)
	assert.InDelta(t, 1.0, CosineDistance("alpha", "beta"), 1e-9)
}

// TestObfuscationIncreasesDistance checks the property the study rests on:
// renaming identifiers moves every privacy metric away from zero.
func TestObfuscationIncreasesDistance(t *testing.T) {
	original := "def count_words(text):\n    words = text.split()\n    return len(words)"
	obfuscated := "def count_words(var2):\n    var3 = var2.split()\n    return len(var3)"
	p := ScorePrivacy(original, obfuscated)
	assert.Greater(t, p.EditDistance, 0.0)
	assert.Greater(t, p.Jaccard, 0.0)
	assert.Greater(t, p.Cosine, 0.0)
	identical := ScorePrivacy(original, original)
	assert.Zero(t, identical.EditDistance)
	assert.Zero(t, identical.Jaccard)
}

// TestScorePrivacyBatch checks the length-mismatch guard.
func TestScorePrivacyBatch(t *testing.T) {
	scores, err := ScorePrivacyBatch([]string{"a", "b"}, []string{"a", "c"})
	require.NoError(t, err)
	assert.Len(t, scores, 2)
	assert.Zero(t, scores[0].EditDistance)

	_, err = ScorePrivacyBatch([]string{"a"}, []string{"a", "b"})
	assert.Error(t, err)
}

// TestRougeN checks unigram and bigram overlap.
func TestRougeN(t *testing.T) {
	assert.InDelta(t, 1.0, RougeN("return x + y", "return x + y", 1), 1e-9)
	assert.Equal(t, 0.0, RougeN("", "return x", 1))
	assert.Equal(t, 0.0, RougeN("alpha", "beta", 1))
	partial := RougeN("return x", "return y", 1)
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 1.0)
	assert.InDelta(t, 1.0, RougeN("a b c", "a b c", 2), 1e-9)
}

// TestRougeL checks subsequence matching tolerates insertions.
func TestRougeL(t *testing.T) {
	assert.InDelta(t, 1.0, RougeL("a b c", "a b c"), 1e-9)
	score := RougeL("a x b c", "a b c")
	assert.Greater(t, score, 0.5)
	assert.Less(t, score, 1.0)
	assert.Equal(t, 0.0, RougeL("", "a b c"))
}

// TestBLEU checks the perfect, disjoint and short-pair cases.
func TestBLEU(t *testing.T) {
	assert.InDelta(t, 1.0, BLEU("return the result now", "return the result now"), 1e-9)
	assert.Equal(t, 0.0, BLEU("alpha beta gamma delta", "one two three four"))
	assert.Equal(t, 0.0, BLEU("", "a b"))
	short := BLEU("a b", "a b")
	assert.InDelta(t, 1.0, short, 1e-9)
}

// TestExactMatch checks whitespace-insensitive equality.
func TestExactMatch(t *testing.T) {
	assert.True(t, ExactMatch("  x = 1\n", "x = 1"))
	assert.False(t, ExactMatch("x = 1", "x = 2"))
}

// TestUtilityMetricLookup checks name-based metric selection.
func TestUtilityMetricLookup(t *testing.T) {
	u := ScoreUtility("a b c", "a b c")
	for _, name := range []string{"rouge1", "rouge2", "rougeL", "bleu", "exact"} {
		v, err := u.Metric(name)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, v, 1e-9, name)
	}
	_, err := u.Metric("f1")
	assert.Error(t, err)
}

// TestAggregate checks the summary statistics.
func TestAggregate(t *testing.T) {
	s := Aggregate([]float64{1, 2, 3, 4})
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-9)
	assert.InDelta(t, 1.118033988, s.Std, 1e-6)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)

	assert.Equal(t, Summary{}, Aggregate(nil))
}
