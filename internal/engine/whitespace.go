package engine

import "strings"

// normalizeWhitespace trims trailing spaces and tabs from every line,
// collapses runs of blank lines to a single blank line, and drops blank
// lines at the start and end of the text. Indentation is untouched.
func normalizeWhitespace(code string) string {
	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if prevBlank {
				continue
			}
			prevBlank = true
		} else {
			prevBlank = false
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
