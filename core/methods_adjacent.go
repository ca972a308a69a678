// File: methods_adjacent.go
// Role: Neighborhood APIs (Successors, Predecessors, OutDegree, InDegree,
//       OutEdges) and adjacency helpers.
// Determinism:
//   - Successors() and OutEdges() follow first-seen order of the successor.
//   - Predecessors() returns IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muEdgeAdj read lock.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Successors returns the destinations of id's outgoing edges in the order they
// were first observed. Unknown or sink vertices yield an empty slice.
//
// Complexity: O(d) time and space.
func (g *Graph) Successors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	src := g.succOrder[id]
	out := make([]string, len(src))
	copy(out, src)

	return out
}

// OutEdges returns copies of id's outgoing edges, ordered like Successors.
//
// Complexity: O(d).
func (g *Graph) OutEdges(id string) []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	src := g.succOrder[id]
	out := make([]Edge, 0, len(src))
	var to string
	for _, to = range src {
		out = append(out, *g.adjacency[id][to])
	}

	return out
}

// Predecessors returns the sources of id's incoming edges, sorted lex asc.
//
// Complexity: O(d log d).
func (g *Graph) Predecessors(id string) []string {
	g.muEdgeAdj.RLock()
	in := g.reverse[id]
	out := make([]string, 0, len(in))
	var from string
	for from = range in {
		out = append(out, from)
	}
	g.muEdgeAdj.RUnlock()

	sort.Strings(out)

	return out
}

// OutDegree returns the number of distinct successors of id (a self-loop counts once).
// Complexity: O(1).
func (g *Graph) OutDegree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id])
}

// InDegree returns the number of distinct predecessors of id.
// Complexity: O(1).
func (g *Graph) InDegree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.reverse[id])
}

// ensureAdjacency makes sure the per-vertex buckets exist for id.
// Caller holds muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]*Edge)
	}
	if _, ok := g.reverse[id]; !ok {
		g.reverse[id] = make(map[string]struct{})
	}
}
