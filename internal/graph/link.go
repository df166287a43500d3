// # internal/graph/link.go
package graph

// LinkKind classifies a dependency link.
type LinkKind string

const (
	KindImport   LinkKind = "import"
	KindExport   LinkKind = "export"
	KindCall     LinkKind = "call"
	KindInherit  LinkKind = "inherit"
	KindCircular LinkKind = "circular"
)

// Link is one directed, typed, weighted relationship between two files.
// Strength stays within [0,1]; Symbols keeps insertion order without
// duplicates; Lines records every line the relationship was observed on.
type Link struct {
	Source        string
	Target        string
	Kind          LinkKind
	Strength      float64
	Symbols       []string
	Lines         []int
	Bidirectional bool
}

const (
	importBaseStrength  = 0.7
	callBaseStrength    = 0.6
	inheritBaseStrength = 0.85

	symbolStrengthStep = 0.05
	symbolStrengthMax  = 0.2
	defaultImportBonus = 0.1
	foldStrengthStep   = 0.1
	cycleStrengthBoost = 0.3
)

// LinkSet accumulates links during per-file analysis, keeping exactly one
// link per ordered (source, target) pair. Repeat observations fold into the
// existing link: symbols and lines append, strength rises by 0.1 per fold,
// capped at 1.0. Self-references never produce a link.
type LinkSet struct {
	links  []*Link
	byPair map[pairKey]*Link
}

type pairKey struct {
	source string
	target string
}

func NewLinkSet() *LinkSet {
	return &LinkSet{byPair: make(map[pairKey]*Link)}
}

// AddImport records an import relationship. New links start at 0.7 plus
// min(0.2, 0.05 per symbol), plus 0.1 for default-style imports.
func (s *LinkSet) AddImport(source, target string, symbols []string, line int, isDefault bool) {
	strength := importBaseStrength + min(symbolStrengthMax, symbolStrengthStep*float64(len(symbols)))
	if isDefault {
		strength += defaultImportBonus
	}
	s.add(source, target, KindImport, strength, symbols, line)
}

// AddCall records a resolved external call. New links start at 0.6.
func (s *LinkSet) AddCall(source, target, symbol string, line int) {
	s.add(source, target, KindCall, callBaseStrength, []string{symbol}, line)
}

// AddInherit records a resolved base-class relationship.
func (s *LinkSet) AddInherit(source, target, base string, line int) {
	s.add(source, target, KindInherit, inheritBaseStrength, []string{base}, line)
}

func (s *LinkSet) add(source, target string, kind LinkKind, strength float64, symbols []string, line int) {
	if source == target {
		return
	}

	key := pairKey{source: source, target: target}
	if existing, ok := s.byPair[key]; ok {
		existing.Symbols = appendSymbols(existing.Symbols, symbols)
		existing.Lines = append(existing.Lines, line)
		existing.Strength = capStrength(existing.Strength + foldStrengthStep)
		return
	}

	link := &Link{
		Source:   source,
		Target:   target,
		Kind:     kind,
		Strength: capStrength(strength),
		Symbols:  appendSymbols(nil, symbols),
		Lines:    []int{line},
	}
	s.byPair[key] = link
	s.links = append(s.links, link)
}

// Links returns the accumulated links in insertion order.
func (s *LinkSet) Links() []*Link {
	return s.links
}

func (s *LinkSet) Len() int {
	return len(s.links)
}

// appendSymbols appends with set semantics, preserving first-appearance order.
func appendSymbols(existing, incoming []string) []string {
	for _, sym := range incoming {
		found := false
		for _, have := range existing {
			if have == sym {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, sym)
		}
	}
	return existing
}

func capStrength(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}
