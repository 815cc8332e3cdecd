package evaluate

import (
	"fmt"
	"math"
)

// Privacy metrics measure how far an obfuscated source has moved from its
// original. All scores are distances in [0, 1]: 0 means identical, 1 means
// nothing shared.

// LevenshteinDistance returns the edit distance between a and b in runes,
// using the two-row dynamic programming form.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// EditDistanceScore is the Levenshtein distance normalized by the longer
// input. Two empty strings score 0.
func EditDistanceScore(original, obfuscated string) float64 {
	la, lb := len([]rune(original)), len([]rune(obfuscated))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	return float64(LevenshteinDistance(original, obfuscated)) / float64(longest)
}

// JaccardDistance is one minus the Jaccard similarity of the token sets.
func JaccardDistance(original, obfuscated string) float64 {
	sa := tokenSet(tokenize(original))
	sb := tokenSet(tokenize(obfuscated))
	if len(sa) == 0 && len(sb) == 0 {
		return 0
	}
	inter := 0
	for tok := range sa {
		if sb[tok] {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	if union == 0 {
		return 0
	}
	return 1 - float64(inter)/float64(union)
}

// CosineDistance is one minus the cosine similarity of the term frequency
// vectors. A pair with one empty side scores 1; two empty sides score 0.
func CosineDistance(original, obfuscated string) float64 {
	fa := termFreq(tokenize(original))
	fb := termFreq(tokenize(obfuscated))
	if len(fa) == 0 && len(fb) == 0 {
		return 0
	}
	if len(fa) == 0 || len(fb) == 0 {
		return 1
	}
	var dot, na, nb float64
	for tok, ca := range fa {
		na += float64(ca) * float64(ca)
		if cb, ok := fb[tok]; ok {
			dot += float64(ca) * float64(cb)
		}
	}
	for _, cb := range fb {
		nb += float64(cb) * float64(cb)
	}
	denom := math.Sqrt(na) * math.Sqrt(nb)
	if denom == 0 {
		return 1
	}
	sim := dot / denom
	if sim > 1 {
		sim = 1
	}
	return 1 - sim
}

// PrivacyScores bundles the per-pair distances.
type PrivacyScores struct {
	EditDistance float64 `json:"edit_distance"`
	Jaccard      float64 `json:"jaccard"`
	Cosine       float64 `json:"cosine"`
}

// ScorePrivacy computes every privacy distance for one original/obfuscated
// pair.
func ScorePrivacy(original, obfuscated string) PrivacyScores {
	return PrivacyScores{
		EditDistance: EditDistanceScore(original, obfuscated),
		Jaccard:      JaccardDistance(original, obfuscated),
		Cosine:       CosineDistance(original, obfuscated),
	}
}

// ScorePrivacyBatch scores parallel slices of originals and obfuscations.
func ScorePrivacyBatch(originals, obfuscated []string) ([]PrivacyScores, error) {
	if len(originals) != len(obfuscated) {
		return nil, fmt.Errorf("batch length mismatch: %d originals, %d obfuscated", len(originals), len(obfuscated))
	}
	out := make([]PrivacyScores, len(originals))
	for i := range originals {
		out[i] = ScorePrivacy(originals[i], obfuscated[i])
	}
	return out, nil
}
