// # internal/output/tsv.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"depgraph/internal/graph"
	"depgraph/internal/shared/util"
)

// TSV renders the link list as tab-separated rows with a header, one row
// per link, in list order.
func TSV(links []*graph.Link) string {
	var buf strings.Builder
	buf.WriteString("source\ttarget\tkind\tstrength\tbidirectional\tsymbols\tlines\n")

	for _, l := range links {
		lines := make([]string, len(l.Lines))
		for i, n := range l.Lines {
			lines[i] = strconv.Itoa(n)
		}
		fmt.Fprintf(&buf, "%s\t%s\t%s\t%.2f\t%t\t%s\t%s\n",
			l.Source,
			l.Target,
			l.Kind,
			l.Strength,
			l.Bidirectional,
			strings.Join(l.Symbols, ","),
			strings.Join(lines, ","),
		)
	}

	return buf.String()
}

func sortedKeys(m map[string]bool) []string {
	return util.SortedStringKeys(m)
}
