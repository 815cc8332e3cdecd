package engine

import "strconv"

// High renames every identifier including function names to PLACEHOLDER_0,
// PLACEHOLDER_1, ... and strips comments, docstrings and redundant
// whitespace. Only structure (control flow, literals, builtins) survives.
type High struct {
	mappingState
	opts HighOptions
}

// NewHigh returns a high privacy strategy with the given options.
func NewHigh(opts HighOptions) *High {
	if opts.PlaceholderPrefix == "" {
		opts.PlaceholderPrefix = "PLACEHOLDER"
	}
	return &High{opts: opts}
}

func (h *High) Level() PrivacyLevel { return LevelHigh }

// Transform obfuscates code statelessly. Comment stripping needs no parse and
// always runs first; when the stripped text then fails to parse, it is
// returned as-is with a nil mapping and the remaining stages are skipped
// except whitespace normalization, which is purely textual.
func (h *High) Transform(code string) Result {
	if isBlank(code) {
		return Result{Code: code}
	}
	out := code
	if h.opts.StripComments {
		out = stripComments(out)
	}

	var mapping []Pair
	src := []byte(out)
	if tree, err := parseModule(src); err == nil {
		ids := collectIdentifiers(tree.RootNode(), src)
		tree.Close()
		names := ids.renameTargets(false, true)
		mapping = buildMapping(names, func(i int) string {
			return h.opts.PlaceholderPrefix + "_" + strconv.Itoa(i)
		})
		out = applyMapping(out, mapping)
		if h.opts.StripDocstrings {
			out = stripDocstrings(out)
		}
	}
	if h.opts.NormalizeWhitespace {
		out = normalizeWhitespace(out)
	}
	return Result{Code: out, Mapping: mapping}
}

// Obfuscate runs Transform and replaces the stored mapping, even when the
// transformation found nothing to rename.
func (h *High) Obfuscate(code string) string {
	res := h.Transform(code)
	h.setMapping(res.Mapping)
	return res.Code
}

func (h *High) ExtractIdentifiers(code string) []string { return extractIdentifiers(code) }

func (h *High) ValidateCode(code string) bool { return validSource(code) }
