// # internal/output/dot.go
package output

import (
	"fmt"
	"strings"

	"depgraph/internal/graph"
)

// DOT renders the link list as a Graphviz digraph. Circular edges are
// highlighted in red; bidirectional edges are drawn with dir=both.
func DOT(links []*graph.Link) string {
	var buf strings.Builder

	buf.WriteString("digraph dependencies {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=8, penwidth=1.2];\n")
	buf.WriteString("  splines=polyline;\n")
	buf.WriteString("  overlap=false;\n\n")

	circularNodes := make(map[string]bool)
	for _, l := range links {
		if l.Kind == graph.KindCircular {
			circularNodes[l.Source] = true
			circularNodes[l.Target] = true
		}
	}

	nodes := make(map[string]bool)
	for _, l := range links {
		nodes[l.Source] = true
		nodes[l.Target] = true
	}
	for _, node := range sortedKeys(nodes) {
		if circularNodes[node] {
			fmt.Fprintf(&buf, "  %q [fillcolor=\"mistyrose\", style=\"rounded,filled\", color=\"red\"];\n", node)
		} else {
			fmt.Fprintf(&buf, "  %q [color=\"darkslategrey\"];\n", node)
		}
	}
	buf.WriteString("\n")

	for _, l := range links {
		attrs := []string{
			fmt.Sprintf("label=\"%s (%.2f)\"", l.Kind, l.Strength),
		}
		if l.Kind == graph.KindCircular {
			attrs = append(attrs, "color=\"red\"", "penwidth=2.0")
		}
		if l.Bidirectional {
			attrs = append(attrs, "dir=both")
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", l.Source, l.Target, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}
