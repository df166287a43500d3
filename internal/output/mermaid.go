// # internal/output/mermaid.go
package output

import (
	"fmt"
	"path"
	"strings"

	"depgraph/internal/graph"
)

// Mermaid renders the link list as a mermaid flowchart. Node ids are
// sanitized path basenames; circular edges get a thick arrow.
func Mermaid(links []*graph.Link) string {
	var buf strings.Builder
	buf.WriteString("graph LR\n")

	ids := make(map[string]string)
	id := func(node string) string {
		if v, ok := ids[node]; ok {
			return v
		}
		v := fmt.Sprintf("n%d", len(ids))
		ids[node] = v
		fmt.Fprintf(&buf, "  %s[\"%s\"]\n", v, path.Base(node))
		return v
	}

	for _, l := range links {
		from := id(l.Source)
		to := id(l.Target)
		arrow := "-->"
		if l.Kind == graph.KindCircular {
			arrow = "==>"
		}
		if l.Bidirectional {
			arrow = "<" + arrow
		}
		fmt.Fprintf(&buf, "  %s %s|%s| %s\n", from, arrow, l.Kind, to)
	}

	return buf.String()
}
