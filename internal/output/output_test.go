package output

import (
	"strings"
	"testing"

	"depgraph/internal/graph"
)

func sampleLinks() []*graph.Link {
	return []*graph.Link{
		{
			Source:   "src/main.py",
			Target:   "src/util.py",
			Kind:     graph.KindImport,
			Strength: 0.75,
			Symbols:  []string{"helper"},
			Lines:    []int{3},
		},
		{
			Source:        "src/a.py",
			Target:        "src/b.py",
			Kind:          graph.KindCircular,
			Strength:      1.0,
			Symbols:       []string{"x", "y"},
			Lines:         []int{1, 4},
			Bidirectional: true,
		},
	}
}

func TestDOT(t *testing.T) {
	out := DOT(sampleLinks())

	if !strings.HasPrefix(out, "digraph dependencies {") {
		t.Errorf("missing digraph header:\n%s", out)
	}
	if !strings.Contains(out, `"src/main.py" -> "src/util.py" [label="import (0.75)"]`) {
		t.Errorf("missing import edge:\n%s", out)
	}
	if !strings.Contains(out, `"src/a.py" -> "src/b.py" [label="circular (1.00)", color="red", penwidth=2.0, dir=both]`) {
		t.Errorf("missing circular edge:\n%s", out)
	}
	if !strings.Contains(out, `"src/a.py" [fillcolor="mistyrose"`) {
		t.Errorf("circular node not highlighted:\n%s", out)
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "}") {
		t.Errorf("digraph not closed:\n%s", out)
	}
}

func TestTSV(t *testing.T) {
	out := TSV(sampleLinks())
	rows := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0] != "source\ttarget\tkind\tstrength\tbidirectional\tsymbols\tlines" {
		t.Errorf("unexpected header %q", rows[0])
	}
	if rows[1] != "src/main.py\tsrc/util.py\timport\t0.75\tfalse\thelper\t3" {
		t.Errorf("unexpected row %q", rows[1])
	}
	if rows[2] != "src/a.py\tsrc/b.py\tcircular\t1.00\ttrue\tx,y\t1,4" {
		t.Errorf("unexpected row %q", rows[2])
	}
}

func TestMermaid(t *testing.T) {
	out := Mermaid(sampleLinks())

	if !strings.HasPrefix(out, "graph LR\n") {
		t.Errorf("missing flowchart header:\n%s", out)
	}
	if !strings.Contains(out, `n0["main.py"]`) {
		t.Errorf("node declaration missing:\n%s", out)
	}
	if !strings.Contains(out, "n0 -->|import| n1") {
		t.Errorf("import edge missing:\n%s", out)
	}
	if !strings.Contains(out, "n2 <==>|circular| n3") {
		t.Errorf("bidirectional circular edge missing:\n%s", out)
	}
}

func TestEmptyLinkLists(t *testing.T) {
	if out := DOT(nil); !strings.Contains(out, "digraph dependencies") {
		t.Errorf("DOT of empty list should still be a valid digraph:\n%s", out)
	}
	if out := TSV(nil); !strings.HasPrefix(out, "source\t") {
		t.Errorf("TSV of empty list should keep the header:\n%s", out)
	}
	if out := Mermaid(nil); out != "graph LR\n" {
		t.Errorf("unexpected empty mermaid output: %q", out)
	}
}
