package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"depgraph/internal/graph"
)

// PrintSummary writes a human-readable run summary to stdout.
func (a *App) PrintSummary(result *RunResult) {
	stats := result.Stats

	var b strings.Builder
	b.WriteString("Dependency Analysis\n")
	b.WriteString("===================\n")
	fmt.Fprintf(&b, "Files analyzed:      %d\n", stats.Files)
	fmt.Fprintf(&b, "Dependency links:    %d\n", stats.Links)
	fmt.Fprintf(&b, "  imports:           %d\n", stats.Imports)
	fmt.Fprintf(&b, "  calls:             %d\n", stats.Calls)
	fmt.Fprintf(&b, "  inheritance:       %d\n", stats.Inherits)
	fmt.Fprintf(&b, "  circular:          %d\n", stats.Circular)
	fmt.Fprintf(&b, "Bidirectional pairs: %d\n", stats.Bidirectional)
	fmt.Fprintf(&b, "Unresolved imports:  %d\n", stats.Unresolved)

	if stats.Circular > 0 {
		b.WriteString("\nCircular dependencies:\n")
		for _, l := range result.Links {
			if l.Kind == graph.KindCircular {
				fmt.Fprintf(&b, "  %s -> %s (lines %v)\n", l.Source, l.Target, l.Lines)
			}
		}
	}

	fmt.Fprint(os.Stdout, b.String())
}

// PrintTrend writes the recent history snapshots for the project.
func (a *App) PrintTrend() error {
	if a.store == nil {
		return fmt.Errorf("no history store configured")
	}

	snapshots, err := a.store.LoadSnapshots(a.Config.History.ProjectKey, time.Time{})
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	fmt.Println("timestamp\tfiles\tlinks\tcircular\tbidirectional\tunresolved")
	for _, s := range snapshots {
		fmt.Printf("%s\t%d\t%d\t%d\t%d\t%d\n",
			s.Timestamp.Format(time.RFC3339),
			s.FileCount,
			s.LinkCount,
			s.CircularCount,
			s.BidirectionalCount,
			s.UnresolvedCount,
		)
	}
	return nil
}
