// # internal/parser/imports.go
package parser

import (
	"regexp"
	"strings"
)

var (
	pyFromRe   = regexp.MustCompile(`^\s*from\s+([A-Za-z_][\w.]*)\s+import\s+(.+)$`)
	pyImportRe = regexp.MustCompile(`^\s*import\s+([A-Za-z_][\w.]*)`)

	tsNamedRe        = regexp.MustCompile(`import\s*\{\s*([^}]+?)\s*\}\s*from\s*['"]([^'"]+)['"]`)
	tsDefaultRe      = regexp.MustCompile(`import\s+([A-Za-z_$][\w$]*)\s+from\s*['"]([^'"]+)['"]`)
	tsRequireDestrRe = regexp.MustCompile(`(?:const|let|var)\s*\{\s*([^}]+?)\s*\}\s*=\s*require\(\s*['"]([^'"]+)['"]\s*\)`)
	tsRequireRe      = regexp.MustCompile(`(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*require\(\s*['"]([^'"]+)['"]\s*\)`)

	javaImportRe = regexp.MustCompile(`^\s*import\s+(?:static\s+)?([A-Za-z_][\w.]*?)(\.\*)?\s*;`)
	csUsingRe    = regexp.MustCompile(`^\s*using\s+([A-Za-z_][\w.]*)\s*;`)
)

// ParseImportLine extracts zero or more import statements from one source
// line. A line may legitimately match more than one pattern; every match is
// emitted. Unknown languages yield nothing.
func ParseImportLine(line string, lineNum int, lang Language) []ImportStatement {
	switch lang {
	case LangPython:
		return parsePythonImports(line, lineNum)
	case LangTypeScript, LangJavaScript:
		return parseScriptImports(line, lineNum)
	case LangJava:
		return parseJavaImports(line, lineNum)
	case LangCSharp:
		return parseCSharpImports(line, lineNum)
	default:
		return nil
	}
}

// parsePythonImports handles "from X import a, b" and bare "import X".
// Dotted modules emit two candidates, one with the full dotted path and one
// with only the final component, because package-relative imports commonly
// resolve by last-segment filename match.
func parsePythonImports(line string, lineNum int) []ImportStatement {
	var out []ImportStatement

	if m := pyFromRe.FindStringSubmatch(line); m != nil {
		symbols := splitSymbolList(m[2])
		out = append(out, dottedCandidates(m[1], symbols, false, lineNum, line)...)
		return out
	}

	if m := pyImportRe.FindStringSubmatch(line); m != nil {
		module := m[1]
		symbols := []string{lastSegment(module, ".")}
		out = append(out, dottedCandidates(module, symbols, true, lineNum, line)...)
	}

	return out
}

func parseScriptImports(line string, lineNum int) []ImportStatement {
	var out []ImportStatement

	for _, m := range tsNamedRe.FindAllStringSubmatch(line, -1) {
		out = append(out, ImportStatement{
			Module:  m[2],
			Symbols: splitSymbolList(m[1]),
			Line:    lineNum,
			Raw:     line,
		})
	}
	for _, m := range tsDefaultRe.FindAllStringSubmatch(line, -1) {
		out = append(out, ImportStatement{
			Module:    m[2],
			Symbols:   []string{m[1]},
			IsDefault: true,
			Line:      lineNum,
			Raw:       line,
		})
	}
	for _, m := range tsRequireDestrRe.FindAllStringSubmatch(line, -1) {
		out = append(out, ImportStatement{
			Module:  m[2],
			Symbols: splitSymbolList(m[1]),
			Line:    lineNum,
			Raw:     line,
		})
	}
	for _, m := range tsRequireRe.FindAllStringSubmatch(line, -1) {
		out = append(out, ImportStatement{
			Module:    m[2],
			Symbols:   []string{m[1]},
			IsDefault: true,
			Line:      lineNum,
			Raw:       line,
		})
	}

	return out
}

func parseJavaImports(line string, lineNum int) []ImportStatement {
	m := javaImportRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	module := m[1]
	if m[2] != "" {
		// Wildcard import: record "*" and do not treat as default.
		return []ImportStatement{{
			Module:  module,
			Symbols: []string{"*"},
			Line:    lineNum,
			Raw:     line,
		}}
	}
	return []ImportStatement{{
		Module:    module,
		Symbols:   []string{lastSegment(module, ".")},
		IsDefault: true,
		Line:      lineNum,
		Raw:       line,
	}}
}

func parseCSharpImports(line string, lineNum int) []ImportStatement {
	m := csUsingRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return []ImportStatement{{
		Module:    m[1],
		Symbols:   []string{lastSegment(m[1], ".")},
		IsDefault: true,
		Line:      lineNum,
		Raw:       line,
	}}
}

// dottedCandidates emits the full dotted reference plus, when the module is
// dotted, a second candidate holding only the final component. Both carry
// the same symbol list.
func dottedCandidates(module string, symbols []string, isDefault bool, lineNum int, raw string) []ImportStatement {
	out := []ImportStatement{{
		Module:    module,
		Symbols:   symbols,
		IsDefault: isDefault,
		Line:      lineNum,
		Raw:       raw,
	}}
	if last := lastSegment(module, "."); last != module {
		out = append(out, ImportStatement{
			Module:    last,
			Symbols:   symbols,
			IsDefault: isDefault,
			Line:      lineNum,
			Raw:       raw,
		})
	}
	return out
}

// splitSymbolList splits a comma-separated symbol list and strips "as"
// aliases down to the source name.
func splitSymbolList(list string) []string {
	parts := strings.Split(list, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		if idx := strings.Index(name, " as "); idx >= 0 {
			name = strings.TrimSpace(name[:idx])
		}
		symbols = append(symbols, name)
	}
	return symbols
}

func lastSegment(s, sep string) string {
	if idx := strings.LastIndex(s, sep); idx >= 0 {
		return s[idx+len(sep):]
	}
	return s
}
