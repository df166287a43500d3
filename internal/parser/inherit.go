// # internal/parser/inherit.go
package parser

import (
	"regexp"
	"strings"
)

var (
	extendsRe = regexp.MustCompile(`\bclass\s+[A-Za-z_$][\w$]*(?:<[^>]*>)?\s+extends\s+([A-Za-z_$][\w$.]*)`)
	pyClassRe = regexp.MustCompile(`^\s*class\s+[A-Za-z_]\w*\s*\(([^)]+)\)\s*:`)
	csClassRe = regexp.MustCompile(`\bclass\s+[A-Za-z_]\w*\s*:\s*([A-Za-z_][\w.]*)`)
)

// ParseInheritance extracts base-class references from one source line.
// Only the declaration forms each language actually uses are matched;
// anything else falls through silently.
func ParseInheritance(line string, lineNum int, lang Language) []InheritanceClause {
	switch lang {
	case LangTypeScript, LangJavaScript, LangJava:
		if m := extendsRe.FindStringSubmatch(line); m != nil {
			return []InheritanceClause{{Base: m[1], Line: lineNum}}
		}
	case LangPython:
		if m := pyClassRe.FindStringSubmatch(line); m != nil {
			return pythonBases(m[1], lineNum)
		}
	case LangCSharp:
		if m := csClassRe.FindStringSubmatch(line); m != nil {
			return []InheritanceClause{{Base: m[1], Line: lineNum}}
		}
	}
	return nil
}

func pythonBases(list string, lineNum int) []InheritanceClause {
	var out []InheritanceClause
	for _, p := range strings.Split(list, ",") {
		base := strings.TrimSpace(p)
		// Keyword arguments (metaclass=...) and the implicit root are not bases.
		if base == "" || base == "object" || strings.Contains(base, "=") {
			continue
		}
		out = append(out, InheritanceClause{Base: base, Line: lineNum})
	}
	return out
}
