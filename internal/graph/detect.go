// # internal/graph/detect.go
package graph

// MarkCycles runs depth-first traversal over the accumulated links'
// (source, target) pairs, ignoring kind, and promotes every edge that lies
// on a cycle to KindCircular with a +0.3 strength boost (capped at 1.0).
// Traversal order over nodes and neighbors is map order; any DFS order
// marks the same cycle-membership edges.
//
// The traversal uses an explicit frame stack rather than recursion so very
// long import chains cannot exhaust the goroutine stack.
func MarkCycles(links []*Link) {
	adjacency := make(map[string][]string)
	byPair := make(map[pairKey][]*Link, len(links))
	nodes := make(map[string]bool)

	for _, l := range links {
		adjacency[l.Source] = append(adjacency[l.Source], l.Target)
		byPair[pairKey{l.Source, l.Target}] = append(byPair[pairKey{l.Source, l.Target}], l)
		nodes[l.Source] = true
		nodes[l.Target] = true
	}

	visited := make(map[string]bool, len(nodes))
	for node := range nodes {
		if !visited[node] {
			markCyclesFrom(node, adjacency, byPair, visited)
		}
	}
}

type dfsFrame struct {
	node string
	next int
}

func markCyclesFrom(start string, adjacency map[string][]string, byPair map[pairKey][]*Link, visited map[string]bool) {
	onStack := make(map[string]bool)
	path := []string{}
	stack := []dfsFrame{{node: start}}
	visited[start] = true
	onStack[start] = true
	path = append(path, start)

	for len(stack) > 0 {
		frame := &stack[len(stack)-1]
		neighbors := adjacency[frame.node]

		if frame.next >= len(neighbors) {
			stack = stack[:len(stack)-1]
			onStack[frame.node] = false
			path = path[:len(path)-1]
			continue
		}

		next := neighbors[frame.next]
		frame.next++

		if onStack[next] {
			// Back-edge: the cycle is the path slice from the first
			// occurrence of next to the current node.
			for i, n := range path {
				if n == next {
					markCycle(path[i:], byPair)
					break
				}
			}
			continue
		}
		if visited[next] {
			continue
		}

		visited[next] = true
		onStack[next] = true
		path = append(path, next)
		stack = append(stack, dfsFrame{node: next})
	}
}

func markCycle(cycle []string, byPair map[pairKey][]*Link) {
	for i := range cycle {
		from := cycle[i]
		to := cycle[(i+1)%len(cycle)]
		for _, l := range byPair[pairKey{from, to}] {
			l.Kind = KindCircular
			l.Strength = capStrength(l.Strength + cycleStrengthBoost)
		}
	}
}
