package engine

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

// identifierSet is the outcome of one discovery walk over a parsed module.
// Identifiers are classified by the role of their defining or referencing
// site; each bucket is already filtered against the reserved tables except
// funcs, which callers filter depending on the strategy.
type identifierSet struct {
	vars   map[string]bool // variable reads and writes, call targets, annotation references
	params map[string]bool // function and lambda parameters
	funcs  map[string]bool // names bound by def, unfiltered
}

func newIdentifierSet() *identifierSet {
	return &identifierSet{
		vars:   make(map[string]bool),
		params: make(map[string]bool),
		funcs:  make(map[string]bool),
	}
}

// collectIdentifiers walks the tree rooted at root and classifies every
// renameable identifier occurrence.
func collectIdentifiers(root *sitter.Node, src []byte) *identifierSet {
	ids := newIdentifierSet()
	ids.walk(root, src)
	return ids
}

// walk visits expression positions the way a symbol-table pass would: the
// parent node decides which children hold real identifier references.
// Attribute names after a dot, keyword-argument names, import paths and
// class names are not variable references and are skipped.
func (ids *identifierSet) walk(n *sitter.Node, src []byte) {
	switch n.Type() {
	case "identifier":
		ids.addVar(nodeText(n, src))
		return

	case "function_definition":
		if name := n.ChildByFieldName("name"); name != nil {
			ids.funcs[nodeText(name, src)] = true
		}
		if params := n.ChildByFieldName("parameters"); params != nil {
			ids.collectParameters(params, src)
		}
		if ret := n.ChildByFieldName("return_type"); ret != nil {
			ids.walk(ret, src)
		}
		if body := n.ChildByFieldName("body"); body != nil {
			ids.walk(body, src)
		}
		return

	case "lambda":
		if params := n.ChildByFieldName("parameters"); params != nil {
			ids.collectParameters(params, src)
		}
		if body := n.ChildByFieldName("body"); body != nil {
			ids.walk(body, src)
		}
		return

	case "class_definition":
		// The class name itself is a binding, not a reference; it stays.
		if sup := n.ChildByFieldName("superclasses"); sup != nil {
			ids.walk(sup, src)
		}
		if body := n.ChildByFieldName("body"); body != nil {
			ids.walk(body, src)
		}
		return

	case "attribute":
		// obj.attr: only obj is a variable reference.
		if obj := n.ChildByFieldName("object"); obj != nil {
			ids.walk(obj, src)
		}
		return

	case "keyword_argument":
		// f(name=value): name is a parameter label at the call site.
		if v := n.ChildByFieldName("value"); v != nil {
			ids.walk(v, src)
		}
		return

	case "import_statement", "import_from_statement", "future_import_statement":
		// Module paths and import aliases keep their names.
		return

	case "global_statement", "nonlocal_statement":
		// Scope declarations name bindings made elsewhere; the binding
		// sites are where the names get collected.
		return
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		ids.walk(n.NamedChild(i), src)
	}
}

// collectParameters handles a parameter list of a def or lambda. Default
// values and annotations are ordinary expressions and go through the walk.
func (ids *identifierSet) collectParameters(params *sitter.Node, src []byte) {
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		switch p.Type() {
		case "identifier":
			ids.addParam(nodeText(p, src))
		case "typed_parameter":
			if inner := p.NamedChild(0); inner != nil {
				ids.addParamPattern(inner, src)
			}
			if t := p.ChildByFieldName("type"); t != nil {
				ids.walk(t, src)
			}
		case "default_parameter":
			if name := p.ChildByFieldName("name"); name != nil {
				ids.addParamPattern(name, src)
			}
			if v := p.ChildByFieldName("value"); v != nil {
				ids.walk(v, src)
			}
		case "typed_default_parameter":
			if name := p.ChildByFieldName("name"); name != nil {
				ids.addParamPattern(name, src)
			}
			if t := p.ChildByFieldName("type"); t != nil {
				ids.walk(t, src)
			}
			if v := p.ChildByFieldName("value"); v != nil {
				ids.walk(v, src)
			}
		case "list_splat_pattern", "dictionary_splat_pattern":
			ids.addParamPattern(p, src)
		}
	}
}

// addParamPattern records the identifier inside a parameter pattern, which is
// either a bare name or a *args / **kwargs splat wrapping one.
func (ids *identifierSet) addParamPattern(n *sitter.Node, src []byte) {
	if n.Type() == "identifier" {
		ids.addParam(nodeText(n, src))
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == "identifier" {
			ids.addParam(nodeText(c, src))
			return
		}
	}
}

func (ids *identifierSet) addVar(name string) {
	if name != "" && !IsReserved(name) {
		ids.vars[name] = true
	}
}

func (ids *identifierSet) addParam(name string) {
	if name != "" && !IsReserved(name) {
		ids.params[name] = true
	}
}

// renameTargets returns the sorted list of names a strategy will rename.
// Function names are excluded when preserveFuncs is set: both the def sites
// (never in vars) and, via the funcs set, the call references that landed in
// vars. includeFuncs additionally pulls in non-reserved def names, which the
// high level renames along with everything else.
func (ids *identifierSet) renameTargets(preserveFuncs, includeFuncs bool) []string {
	set := make(map[string]bool, len(ids.vars)+len(ids.params)+len(ids.funcs))
	for name := range ids.vars {
		if preserveFuncs && ids.funcs[name] {
			continue
		}
		set[name] = true
	}
	for name := range ids.params {
		set[name] = true
	}
	if includeFuncs {
		for name := range ids.funcs {
			if !IsReserved(name) {
				set[name] = true
			}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// allNames returns every discovered non-reserved identifier, sorted. This is
// the level-independent view behind ExtractIdentifiers.
func (ids *identifierSet) allNames() []string {
	return ids.renameTargets(false, true)
}

// extractIdentifiers lists the renameable identifiers of code, or nil when it
// does not parse.
func extractIdentifiers(code string) []string {
	src := []byte(code)
	tree, err := parseModule(src)
	if err != nil {
		return nil
	}
	defer tree.Close()
	return collectIdentifiers(tree.RootNode(), src).allNames()
}
