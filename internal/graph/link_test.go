package graph

import (
	"reflect"
	"testing"
)

func TestAddImportStrength(t *testing.T) {
	s := NewLinkSet()
	s.AddImport("a.py", "b.py", []string{"x", "y"}, 1, false)

	links := s.Links()
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	l := links[0]
	if l.Kind != KindImport {
		t.Errorf("expected import kind, got %q", l.Kind)
	}
	// 0.7 base + 0.05 per symbol.
	if !closeTo(l.Strength, 0.8) {
		t.Errorf("expected strength 0.8, got %v", l.Strength)
	}
}

func TestAddImportDefaultBonusAndSymbolCap(t *testing.T) {
	s := NewLinkSet()
	s.AddImport("a.ts", "b.ts", []string{"p", "q", "r", "s", "t", "u"}, 1, true)

	l := s.Links()[0]
	// Symbol contribution caps at 0.2; with the default bonus the total hits
	// the 1.0 ceiling.
	if l.Strength != 1.0 {
		t.Errorf("expected capped strength 1.0, got %v", l.Strength)
	}
}

func TestSelfReferenceDropped(t *testing.T) {
	s := NewLinkSet()
	s.AddImport("a.py", "a.py", []string{"x"}, 1, false)
	s.AddCall("a.py", "a.py", "fn", 2)
	if s.Len() != 0 {
		t.Fatalf("self-references must not produce links, got %d", s.Len())
	}
}

func TestFoldRepeatObservations(t *testing.T) {
	s := NewLinkSet()
	s.AddCall("a.py", "b.py", "fn", 3)
	s.AddCall("a.py", "b.py", "other", 9)
	s.AddCall("a.py", "b.py", "fn", 14)

	if s.Len() != 1 {
		t.Fatalf("expected observations to fold into one link, got %d", s.Len())
	}
	l := s.Links()[0]
	if l.Kind != KindCall {
		t.Errorf("expected call kind, got %q", l.Kind)
	}
	if !reflect.DeepEqual(l.Symbols, []string{"fn", "other"}) {
		t.Errorf("expected deduplicated symbols [fn other], got %v", l.Symbols)
	}
	if !reflect.DeepEqual(l.Lines, []int{3, 9, 14}) {
		t.Errorf("expected all lines recorded, got %v", l.Lines)
	}
	// 0.6 base + 0.1 per fold.
	if !closeTo(l.Strength, 0.8) {
		t.Errorf("expected strength 0.8, got %v", l.Strength)
	}
}

func TestFoldKeepsFirstKind(t *testing.T) {
	s := NewLinkSet()
	s.AddImport("a.py", "b.py", []string{"x"}, 1, false)
	s.AddCall("a.py", "b.py", "fn", 5)

	if s.Len() != 1 {
		t.Fatalf("expected one link per ordered pair, got %d", s.Len())
	}
	if got := s.Links()[0].Kind; got != KindImport {
		t.Errorf("first-observed kind should win, got %q", got)
	}
}

func TestOppositeDirectionsStayDistinct(t *testing.T) {
	s := NewLinkSet()
	s.AddImport("a.py", "b.py", []string{"x"}, 1, false)
	s.AddImport("b.py", "a.py", []string{"y"}, 2, false)
	if s.Len() != 2 {
		t.Fatalf("opposite directions are distinct pairs, got %d links", s.Len())
	}
}

func TestAddInherit(t *testing.T) {
	s := NewLinkSet()
	s.AddInherit("impl.py", "base.py", "Base", 4)
	l := s.Links()[0]
	if l.Kind != KindInherit || !closeTo(l.Strength, 0.85) {
		t.Errorf("unexpected inherit link: %+v", l)
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
