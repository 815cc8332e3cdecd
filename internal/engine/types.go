package engine

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// PrivacyLevel selects an obfuscation strategy.
type PrivacyLevel string

const (
	// LevelLow renames user variables and parameters to var1, var2, ...
	// while keeping function names and overall structure readable.
	LevelLow PrivacyLevel = "low"
	// LevelHigh renames everything including function names to
	// PLACEHOLDER_0, PLACEHOLDER_1, ... and strips comments, docstrings
	// and redundant whitespace.
	LevelHigh PrivacyLevel = "high"
)

// Pair is one entry of an obfuscation mapping: a placeholder and the original
// identifier it replaced.
type Pair struct {
	Original    string `json:"original"`
	Placeholder string `json:"placeholder"`
}

// Result is the outcome of a single stateless transformation. Mapping is nil
// when the input could not be parsed or contained nothing to rename.
type Result struct {
	Code    string `json:"code"`
	Mapping []Pair `json:"mapping,omitempty"`
}

// Strategy is the uniform surface every privacy level exposes. Obfuscate and
// Mapping are the stateful pair used by experiment sweeps; Transform is the
// stateless form safe for concurrent use of a single instance.
type Strategy interface {
	// Transform obfuscates code and returns the result together with the
	// mapping it used. It never fails: unparseable input comes back
	// unchanged (or comment-stripped, at the high level) with a nil
	// mapping.
	Transform(code string) Result
	// Obfuscate runs Transform and stores the mapping for later retrieval
	// via Mapping and Deobfuscate. Each call replaces the stored mapping.
	Obfuscate(code string) string
	// Mapping returns a copy of the mapping from the most recent Obfuscate
	// call, ordered by placeholder assignment.
	Mapping() []Pair
	// Deobfuscate reverses the stored mapping textually. It is best effort:
	// placeholders that leaked into strings are replaced too, and text that
	// coincidentally contains a placeholder is rewritten.
	Deobfuscate(code string) string
	// ExtractIdentifiers lists every renameable identifier in code, sorted,
	// or nil when code does not parse.
	ExtractIdentifiers(code string) []string
	// ValidateCode reports whether code parses as a Python module.
	ValidateCode(code string) bool
	// Level identifies the strategy.
	Level() PrivacyLevel
}

// LowOptions configures the low privacy strategy.
type LowOptions struct {
	// VariablePrefix is prepended to the 1-based counter: var1, var2, ...
	VariablePrefix string
	// PreserveFunctionNames keeps function and method names (and references
	// to them) out of the rename set.
	PreserveFunctionNames bool
	// StripDocstrings removes module, class and function docstrings after
	// renaming.
	StripDocstrings bool
}

// DefaultLowOptions returns the standard low strategy configuration.
func DefaultLowOptions() LowOptions {
	return LowOptions{
		VariablePrefix:        "var",
		PreserveFunctionNames: true,
		StripDocstrings:       true,
	}
}

// HighOptions configures the high privacy strategy.
type HighOptions struct {
	// PlaceholderPrefix is joined to the 0-based counter with an
	// underscore: PLACEHOLDER_0, PLACEHOLDER_1, ...
	PlaceholderPrefix   string
	StripComments       bool
	StripDocstrings     bool
	NormalizeWhitespace bool
}

// DefaultHighOptions returns the standard high strategy configuration.
func DefaultHighOptions() HighOptions {
	return HighOptions{
		PlaceholderPrefix:   "PLACEHOLDER",
		StripComments:       true,
		StripDocstrings:     true,
		NormalizeWhitespace: true,
	}
}

// New returns the strategy for level with default options.
func New(level PrivacyLevel) (Strategy, error) {
	switch level {
	case LevelLow:
		return NewLow(DefaultLowOptions()), nil
	case LevelHigh:
		return NewHigh(DefaultHighOptions()), nil
	default:
		return nil, fmt.Errorf("unknown privacy level %q (expected %q or %q)", level, LevelLow, LevelHigh)
	}
}

// mappingState is the stored-mapping half of a strategy. It is shared by both
// levels and guards the mapping with a mutex so Obfuscate, Mapping and
// Deobfuscate can race safely on one instance.
type mappingState struct {
	mu      sync.Mutex
	mapping []Pair
}

func (s *mappingState) setMapping(m []Pair) {
	s.mu.Lock()
	s.mapping = m
	s.mu.Unlock()
}

func (s *mappingState) Mapping() []Pair {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.mapping) == 0 {
		return nil
	}
	out := make([]Pair, len(s.mapping))
	copy(out, s.mapping)
	return out
}

func (s *mappingState) Deobfuscate(code string) string {
	return DeobfuscateWith(code, s.Mapping())
}

// isBlank reports whether code contains no non-whitespace characters. Blank
// input passes through every strategy untouched.
func isBlank(code string) bool {
	return strings.TrimSpace(code) == ""
}

// identRe validates that a candidate identifier is a plain name, Unicode
// letters included, before the rewrite treats it as a token.
var identRe = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*$`)
