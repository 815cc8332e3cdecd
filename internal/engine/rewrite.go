package engine

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// buildMapping assigns placeholders to names in the order given. Callers pass
// a sorted name list, so equal inputs always produce equal mappings.
func buildMapping(names []string, placeholder func(i int) string) []Pair {
	if len(names) == 0 {
		return nil
	}
	mapping := make([]Pair, 0, len(names))
	for i, name := range names {
		mapping = append(mapping, Pair{Original: name, Placeholder: placeholder(i)})
	}
	return mapping
}

// applyMapping rewrites every whole-token occurrence of each original name,
// longest originals first so that shorter names never clobber longer ones
// that contain them. The rewrite is textual: occurrences inside string
// literals and docstrings are replaced too, which keeps code that builds
// strings from identifier names consistent with the renamed code around it.
func applyMapping(code string, mapping []Pair) string {
	if len(mapping) == 0 {
		return code
	}
	ordered := make([]Pair, len(mapping))
	copy(ordered, mapping)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Original) > len(ordered[j].Original)
	})
	for _, p := range ordered {
		if !identRe.MatchString(p.Original) {
			continue
		}
		code = replaceToken(code, p.Original, p.Placeholder)
	}
	return code
}

// replaceToken substitutes every whole-token occurrence of name in code.
// Boundaries are checked rune-wise, so non-ASCII identifiers (Python allows
// them) match the same way ASCII ones do. Replacements are not rescanned.
func replaceToken(code, name, replacement string) string {
	var b strings.Builder
	for {
		i := strings.Index(code, name)
		if i < 0 {
			break
		}
		end := i + len(name)
		if tokenBoundary(code, i, end) {
			b.WriteString(code[:i])
			b.WriteString(replacement)
			code = code[end:]
			continue
		}
		b.WriteString(code[:end])
		code = code[end:]
	}
	if b.Len() == 0 {
		return code
	}
	b.WriteString(code)
	return b.String()
}

// tokenBoundary reports whether code[start:end] is delimited by non-identifier
// runes (or the text edges) on both sides.
func tokenBoundary(code string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(code[:start]); isIdentRune(r) {
			return false
		}
	}
	if end < len(code) {
		if r, _ := utf8.DecodeRuneInString(code[end:]); isIdentRune(r) {
			return false
		}
	}
	return true
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// DeobfuscateWith substitutes originals back for their placeholders, longest
// placeholders first. The reverse pass is plain substring replacement, not
// token matching: PLACEHOLDER_12 must be rewritten before PLACEHOLDER_1 eats
// its prefix, hence the length ordering, and text that coincidentally
// contains a placeholder is rewritten as well.
func DeobfuscateWith(code string, mapping []Pair) string {
	if len(mapping) == 0 {
		return code
	}
	ordered := make([]Pair, len(mapping))
	copy(ordered, mapping)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Placeholder) > len(ordered[j].Placeholder)
	})
	for _, p := range ordered {
		code = strings.ReplaceAll(code, p.Placeholder, p.Original)
	}
	return code
}
