// # internal/parser/types.go
package parser

// ImportStatement is one extracted import/require declaration. Intermediate
// only: it does not survive past link construction.
type ImportStatement struct {
	Module    string   // Raw module reference text (e.g. "pkg.sub", "./util")
	Symbols   []string // Imported symbol names, alias-stripped
	IsDefault bool     // Default-style single-symbol import
	Line      int      // 1-based line number
	Raw       string   // Original source line
}

// CallSite is one detected qualified external call. The Callee keeps the
// full dotted form; the final segment is the invoked function name.
type CallSite struct {
	Callee   string
	Line     int
	External bool
}

// InheritanceClause is one detected base-class reference.
type InheritanceClause struct {
	Base string
	Line int
}
