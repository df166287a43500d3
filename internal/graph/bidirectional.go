// # internal/graph/bidirectional.go
package graph

// MergeBidirectional consolidates reciprocal edges. Scanning in list order,
// each edge is paired with the first later edge that is its exact reverse:
// the earlier edge is marked bidirectional, symbols union (first-appearance
// order), line lists concatenate, strength gains half the reverse edge's
// strength (capped at 1.0), and the reverse edge is removed.
//
// This is a single forward pass, not iterated to a fixed point: chains of
// three or more mutually-referencing files merge pairwise only where a
// direct forward/reverse pair exists at the scan point.
func MergeBidirectional(links []*Link) []*Link {
	out := append([]*Link(nil), links...)

	for i := 0; i < len(out); i++ {
		edge := out[i]
		for j := i + 1; j < len(out); j++ {
			rev := out[j]
			if rev.Source != edge.Target || rev.Target != edge.Source {
				continue
			}
			edge.Bidirectional = true
			edge.Symbols = appendSymbols(edge.Symbols, rev.Symbols)
			edge.Lines = append(edge.Lines, rev.Lines...)
			edge.Strength = capStrength(edge.Strength + 0.5*rev.Strength)
			out = append(out[:j], out[j+1:]...)
			break
		}
	}

	return out
}
