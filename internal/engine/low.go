package engine

import "strconv"

// Low renames variables and parameters to var1, var2, ... and strips
// docstrings, leaving function names, comments and layout intact so the
// result still reads as the same program.
type Low struct {
	mappingState
	opts LowOptions
}

// NewLow returns a low privacy strategy with the given options.
func NewLow(opts LowOptions) *Low {
	if opts.VariablePrefix == "" {
		opts.VariablePrefix = "var"
	}
	return &Low{opts: opts}
}

func (l *Low) Level() PrivacyLevel { return LevelLow }

// Transform obfuscates code statelessly. Input that is blank or does not
// parse comes back unchanged with a nil mapping.
func (l *Low) Transform(code string) Result {
	if isBlank(code) {
		return Result{Code: code}
	}
	src := []byte(code)
	tree, err := parseModule(src)
	if err != nil {
		return Result{Code: code}
	}
	ids := collectIdentifiers(tree.RootNode(), src)
	tree.Close()

	names := ids.renameTargets(l.opts.PreserveFunctionNames, false)
	mapping := buildMapping(names, func(i int) string {
		return l.opts.VariablePrefix + strconv.Itoa(i+1)
	})
	out := applyMapping(code, mapping)
	if l.opts.StripDocstrings {
		out = stripDocstrings(out)
	}
	return Result{Code: out, Mapping: mapping}
}

// Obfuscate runs Transform and replaces the stored mapping, even when the
// transformation found nothing to rename.
func (l *Low) Obfuscate(code string) string {
	res := l.Transform(code)
	l.setMapping(res.Mapping)
	return res.Code
}

func (l *Low) ExtractIdentifiers(code string) []string { return extractIdentifiers(code) }

func (l *Low) ValidateCode(code string) bool { return validSource(code) }
