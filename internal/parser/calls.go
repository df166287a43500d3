// # internal/parser/calls.go
package parser

import (
	"regexp"
	"strings"
)

// qualifiedCallRe matches zero-or-more "identifier." prefixes followed by an
// identifier and an opening parenthesis. Bare calls carry no qualifier group.
var qualifiedCallRe = regexp.MustCompile(`((?:[A-Za-z_$][\w$]*\.)+)([A-Za-z_$][\w$]*)\s*\(`)

// ExtractCalls scans one line for qualified external calls. A call is
// external when it has at least one "identifier.identifier" qualifier and
// does not begin with a self-reference prefix ("this." or "self.").
// Purely bare calls are never external and are not returned.
func ExtractCalls(line string, lineNum int) []CallSite {
	matches := qualifiedCallRe.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}

	calls := make([]CallSite, 0, len(matches))
	for _, m := range matches {
		callee := m[1] + m[2]
		if strings.HasPrefix(callee, "this.") || strings.HasPrefix(callee, "self.") {
			continue
		}
		calls = append(calls, CallSite{
			Callee:   callee,
			Line:     lineNum,
			External: true,
		})
	}
	return calls
}

// CalleeFunction returns the final identifier of a qualified callee.
func CalleeFunction(callee string) string {
	return lastSegment(callee, ".")
}

// CalleeRoot returns the first identifier of a qualified callee.
func CalleeRoot(callee string) string {
	if idx := strings.Index(callee, "."); idx >= 0 {
		return callee[:idx]
	}
	return callee
}
