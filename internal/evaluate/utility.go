package evaluate

import (
	"fmt"
	"math"
	"strings"
)

// Utility metrics measure how close a model completion stayed to the
// canonical solution. All scores are similarities in [0, 1].

// RougeN is the F1 overlap of n-grams between a generated text and a
// reference, with clipped counts.
func RougeN(generated, reference string, n int) float64 {
	genGrams := ngrams(tokenize(generated), n)
	refGrams := ngrams(tokenize(reference), n)
	genTotal, refTotal := total(genGrams), total(refGrams)
	if genTotal == 0 || refTotal == 0 {
		return 0
	}
	overlap := 0
	for gram, c := range genGrams {
		if rc, ok := refGrams[gram]; ok {
			if rc < c {
				overlap += rc
			} else {
				overlap += c
			}
		}
	}
	precision := float64(overlap) / float64(genTotal)
	recall := float64(overlap) / float64(refTotal)
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// RougeL is the F1 built from the longest common token subsequence.
func RougeL(generated, reference string) float64 {
	gen := tokenize(generated)
	ref := tokenize(reference)
	if len(gen) == 0 || len(ref) == 0 {
		return 0
	}
	l := lcsLength(gen, ref)
	precision := float64(l) / float64(len(gen))
	recall := float64(l) / float64(len(ref))
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

func lcsLength(a, b []string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
		for j := range curr {
			curr[j] = 0
		}
	}
	return prev[len(b)]
}

// BLEU is the standard corpus-style score for a single pair: geometric mean
// of clipped 1..4-gram precisions with a brevity penalty. Pairs too short for
// an order simply drop it.
func BLEU(generated, reference string) float64 {
	gen := tokenize(generated)
	ref := tokenize(reference)
	if len(gen) == 0 || len(ref) == 0 {
		return 0
	}
	var logSum float64
	orders := 0
	for n := 1; n <= 4 && n <= len(gen) && n <= len(ref); n++ {
		genGrams := ngrams(gen, n)
		refGrams := ngrams(ref, n)
		overlap := 0
		for gram, c := range genGrams {
			if rc, ok := refGrams[gram]; ok {
				if rc < c {
					overlap += rc
				} else {
					overlap += c
				}
			}
		}
		if overlap == 0 {
			return 0
		}
		logSum += math.Log(float64(overlap) / float64(total(genGrams)))
		orders++
	}
	if orders == 0 {
		return 0
	}
	score := math.Exp(logSum / float64(orders))
	if len(gen) < len(ref) {
		score *= math.Exp(1 - float64(len(ref))/float64(len(gen)))
	}
	return score
}

// ExactMatch reports whether the two texts agree after trimming surrounding
// whitespace.
func ExactMatch(generated, reference string) bool {
	return strings.TrimSpace(generated) == strings.TrimSpace(reference)
}

func total(grams map[string]int) int {
	sum := 0
	for _, c := range grams {
		sum += c
	}
	return sum
}

// UtilityScores bundles the per-pair similarities.
type UtilityScores struct {
	Rouge1     float64 `json:"rouge1"`
	Rouge2     float64 `json:"rouge2"`
	RougeL     float64 `json:"rougeL"`
	BLEU       float64 `json:"bleu"`
	ExactMatch bool    `json:"exact_match"`
}

// ScoreUtility computes every utility metric for one completion/reference
// pair.
func ScoreUtility(generated, reference string) UtilityScores {
	return UtilityScores{
		Rouge1:     RougeN(generated, reference, 1),
		Rouge2:     RougeN(generated, reference, 2),
		RougeL:     RougeL(generated, reference),
		BLEU:       BLEU(generated, reference),
		ExactMatch: ExactMatch(generated, reference),
	}
}

// Metric returns the named score out of a UtilityScores bundle. ExactMatch
// maps to 1 or 0.
func (u UtilityScores) Metric(name string) (float64, error) {
	switch name {
	case "rouge1":
		return u.Rouge1, nil
	case "rouge2":
		return u.Rouge2, nil
	case "rougeL", "rougel":
		return u.RougeL, nil
	case "bleu":
		return u.BLEU, nil
	case "exact":
		if u.ExactMatch {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown utility metric %q", name)
	}
}
