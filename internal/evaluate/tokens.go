// Package evaluate scores obfuscation runs: privacy metrics compare original
// and obfuscated sources, utility metrics compare model completions against
// canonical solutions.
package evaluate

import "strings"

// tokenize lowercases text and splits it into identifier-shaped tokens.
// Underscores stay inside tokens so snake_case names count as one term.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		case r == '_':
			return false
		}
		return true
	})
}

func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}

func termFreq(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		freq[tok]++
	}
	return freq
}

// ngrams returns the n-grams of tokens joined by a space, with counts.
func ngrams(tokens []string, n int) map[string]int {
	grams := make(map[string]int)
	if n <= 0 || len(tokens) < n {
		return grams
	}
	for i := 0; i+n <= len(tokens); i++ {
		grams[strings.Join(tokens[i:i+n], " ")]++
	}
	return grams
}
