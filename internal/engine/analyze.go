package engine

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// SourceFeatures holds the result of static analysis on a Python source.
type SourceFeatures struct {
	Parses bool

	LineCount       int
	FunctionCount   int
	ClassCount      int
	CommentCount    int
	DocstringCount  int
	IdentifierCount int // renameable identifiers
	ReservedCount   int // distinct reserved names in use

	HasTypeHints  bool
	HasDecorators bool
	HasFStrings   bool
	HasAsync      bool
	HasLambdas    bool
	HasImports    bool

	RecommendedLevel PrivacyLevel
	Warnings         []string
}

// AnalyzeSource statically inspects code and recommends a privacy level.
// Unparseable input yields a line count, Parses=false and a warning; the
// structural counters stay zero.
func AnalyzeSource(code string) *SourceFeatures {
	f := &SourceFeatures{LineCount: strings.Count(code, "\n") + 1}

	src := []byte(code)
	tree, err := parseModule(src)
	if err != nil {
		f.Warnings = append(f.Warnings, "source does not parse as Python; obfuscation will pass it through unchanged")
		f.RecommendedLevel = LevelLow
		return f
	}
	defer tree.Close()
	f.Parses = true

	reserved := make(map[string]bool)
	countFeatures(tree.RootNode(), src, f, reserved)
	f.ReservedCount = len(reserved)

	ids := collectIdentifiers(tree.RootNode(), src)
	f.IdentifierCount = len(ids.allNames())

	f.DocstringCount = countDocstrings(tree.RootNode())

	f.recommend()
	return f
}

func countFeatures(n *sitter.Node, src []byte, f *SourceFeatures, reserved map[string]bool) {
	switch n.Type() {
	case "function_definition":
		f.FunctionCount++
		if n.ChildByFieldName("return_type") != nil {
			f.HasTypeHints = true
		}
	case "class_definition":
		f.ClassCount++
	case "comment":
		f.CommentCount++
	case "decorator":
		f.HasDecorators = true
	case "lambda":
		f.HasLambdas = true
	case "interpolation":
		f.HasFStrings = true
	case "typed_parameter", "typed_default_parameter", "type":
		f.HasTypeHints = true
	case "import_statement", "import_from_statement":
		f.HasImports = true
	case "await", "async":
		f.HasAsync = true
	case "identifier":
		if name := nodeText(n, src); IsReserved(name) {
			reserved[name] = true
		}
	}
	if strings.HasPrefix(n.Type(), "async") {
		f.HasAsync = true
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		countFeatures(n.NamedChild(i), src, f, reserved)
	}
}

func countDocstrings(root *sitter.Node) int {
	count := 0
	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		switch n.Type() {
		case "module":
			if hasLeadingString(n) {
				count++
			}
		case "function_definition", "class_definition":
			if body := n.ChildByFieldName("body"); body != nil && hasLeadingString(body) {
				count++
			}
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			visit(n.NamedChild(i))
		}
	}
	visit(root)
	return count
}

func hasLeadingString(block *sitter.Node) bool {
	for i := 0; i < int(block.NamedChildCount()); i++ {
		stmt := block.NamedChild(i)
		if stmt.Type() == "comment" {
			continue
		}
		if stmt.Type() == "expression_statement" {
			if v := stmt.NamedChild(0); v != nil {
				return v.Type() == "string" || v.Type() == "concatenated_string"
			}
		}
		return false
	}
	return false
}

func (f *SourceFeatures) recommend() {
	// Sources carrying lots of intent in names and prose gain most from the
	// high level; short, already-bare snippets keep more utility at low.
	switch {
	case f.CommentCount+f.DocstringCount >= 3:
		f.RecommendedLevel = LevelHigh
	case f.IdentifierCount >= 10:
		f.RecommendedLevel = LevelHigh
	default:
		f.RecommendedLevel = LevelLow
	}

	if f.HasFStrings {
		f.Warnings = append(f.Warnings, "f-strings present: identifiers inside interpolations are renamed with the code")
	}
	if f.FunctionCount > 0 && f.DocstringCount == 0 && f.CommentCount == 0 {
		f.Warnings = append(f.Warnings, "no comments or docstrings: low-level obfuscation only renames identifiers here")
	}
	if f.ClassCount > 0 {
		f.Warnings = append(f.Warnings, fmt.Sprintf("%d class(es) defined: class names and attribute names are preserved at every level", f.ClassCount))
	}
}
