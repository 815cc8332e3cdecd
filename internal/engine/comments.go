package engine

import "strings"

// stripComments removes # comments line by line. The scanner tracks ordinary
// single-quoted and double-quoted strings so a # inside one survives, and it
// gives up on a line as soon as a triple-quote opener appears: multi-line
// string state does not carry across lines, so the rest of that line passes
// through verbatim. A # inside a multi-line string on a later line is
// therefore stripped as if it were a comment. Trailing spaces left behind by
// a removed comment are trimmed.
func stripComments(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(stripLineComment(line), " \t")
	}
	return strings.Join(lines, "\n")
}

func stripLineComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if quote != 0 {
			switch ch {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch ch {
		case '\'', '"':
			if i+2 < len(line) && line[i+1] == ch && line[i+2] == ch {
				return line
			}
			quote = ch
		case '#':
			return line[:i]
		}
	}
	return line
}
