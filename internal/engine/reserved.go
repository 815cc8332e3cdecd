package engine

// Reserved name tables. An identifier appearing in any of these sets must
// never be renamed, at any privacy level. Python is case sensitive, so lookups
// are exact; the tables are fixed at build time and shared by every strategy.

// pythonKeywords contains the language keywords, including the soft keywords
// match and case. Keywords cannot appear as identifiers in valid code, but
// keeping them here guards the textual rewrite stage as well.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true,
	"and": true, "as": true, "assert": true, "async": true, "await": true,
	"break": true, "class": true, "continue": true, "def": true, "del": true,
	"elif": true, "else": true, "except": true, "finally": true, "for": true,
	"from": true, "global": true, "if": true, "import": true, "in": true,
	"is": true, "lambda": true, "nonlocal": true, "not": true, "or": true,
	"pass": true, "raise": true, "return": true, "try": true, "while": true,
	"with": true, "yield": true,
	"match": true, "case": true,
}

// pythonBuiltins contains the builtin functions and types completion models
// rely on to understand code. Renaming print or len would break behavior and
// destroy utility for no privacy gain.
var pythonBuiltins = map[string]bool{
	"print": true, "len": true, "range": true, "str": true, "int": true,
	"float": true, "list": true, "dict": true, "set": true, "tuple": true,
	"bool": true, "type": true, "isinstance": true, "hasattr": true,
	"getattr": true, "setattr": true, "open": true, "input": true,
	"abs": true, "all": true, "any": true, "bin": true, "chr": true,
	"enumerate": true, "filter": true, "format": true, "hex": true,
	"id": true, "iter": true, "map": true, "max": true, "min": true,
	"next": true, "oct": true, "ord": true, "pow": true, "repr": true,
	"reversed": true, "round": true, "slice": true, "sorted": true,
	"sum": true, "super": true, "zip": true,
}

// typingNames contains the names commonly imported from the typing module.
// Annotations built from these stay readable after obfuscation.
var typingNames = map[string]bool{
	"List": true, "Dict": true, "Set": true, "Tuple": true,
	"Optional": true, "Union": true, "Any": true, "Callable": true,
	"Iterable": true, "Iterator": true, "Sequence": true, "Mapping": true,
	"TypeVar": true, "Generic": true, "Protocol": true, "Literal": true,
	"Final": true, "ClassVar": true, "Type": true, "cast": true,
	"overload": true, "TypedDict": true,
}

// IsReserved reports whether name must survive obfuscation unchanged.
func IsReserved(name string) bool {
	return pythonKeywords[name] || pythonBuiltins[name] || typingNames[name]
}

// ReservedNames returns a fresh copy of the full reserved set, for callers
// that want to display or count it.
func ReservedNames() map[string]bool {
	out := make(map[string]bool, len(pythonKeywords)+len(pythonBuiltins)+len(typingNames))
	for _, table := range []map[string]bool{pythonKeywords, pythonBuiltins, typingNames} {
		for name := range table {
			out[name] = true
		}
	}
	return out
}
