package engine

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// stripDocstrings removes module, class and function docstrings by deleting
// the source lines their statements span. The pass re-parses its input, so it
// works on already renamed text; if that parse fails the input comes back
// unchanged.
func stripDocstrings(code string) string {
	src := []byte(code)
	tree, err := parseModule(src)
	if err != nil {
		return code
	}
	defer tree.Close()

	drop := make(map[int]bool)
	markDocstringRows(tree.RootNode(), drop)
	if len(drop) == 0 {
		return code
	}

	lines := strings.Split(code, "\n")
	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		if drop[i] {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// markDocstringRows records the 0-based rows of every docstring statement:
// the first real statement of the module or of a def/class body, when that
// statement is a bare string expression.
func markDocstringRows(n *sitter.Node, drop map[int]bool) {
	switch n.Type() {
	case "module":
		markLeadingString(n, drop)
	case "function_definition", "class_definition":
		if body := n.ChildByFieldName("body"); body != nil {
			markLeadingString(body, drop)
		}
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		markDocstringRows(n.NamedChild(i), drop)
	}
}

func markLeadingString(block *sitter.Node, drop map[int]bool) {
	for i := 0; i < int(block.NamedChildCount()); i++ {
		stmt := block.NamedChild(i)
		if stmt.Type() == "comment" {
			continue
		}
		if stmt.Type() == "expression_statement" {
			if v := stmt.NamedChild(0); v != nil {
				switch v.Type() {
				case "string", "concatenated_string":
					for row := int(stmt.StartPoint().Row); row <= int(stmt.EndPoint().Row); row++ {
						drop[row] = true
					}
				}
			}
		}
		return
	}
}
