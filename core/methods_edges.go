// File: methods_edges.go
// Role: Edge lifecycle & queries: AddWeight/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - AddWeight holds muVert for the whole merge so both endpoints and the
//     edge appear atomically to readers of Vertices/Edges.
//   - Read queries under muEdgeAdj read lock.

package core

import "sort"

// AddWeight merges delta observations of the pair from→to into the graph and
// returns the resulting edge weight.
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID) and delta ≥ 1 (ErrBadWeight).
//  2. Lock muVert; register both endpoints (from first, so first-seen order
//     follows the token stream).
//  3. Lock muEdgeAdj; create the edge at weight 0 if absent, recording the
//     successor and predecessor indexes.
//  4. Add delta.
//
// Self-loops are accepted. Weights never decrease.
//
// Complexity: O(1) amortized.
func (g *Graph) AddWeight(from, to string, delta int64) (int64, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}
	if delta < 1 {
		return 0, ErrBadWeight
	}

	// 2) Ensure vertices exist
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Insert or fetch the edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.adjacency[from][to]
	if !ok {
		e = &Edge{From: from, To: to}
		g.adjacency[from][to] = e
		g.succOrder[from] = append(g.succOrder[from], to)
		g.reverse[to][from] = struct{}{}
		g.edgeCount++
	}

	// 4) Merge
	e.Weight += delta

	return e.Weight, nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.adjacency[from][to]
	if !ok {
		return 0, false
	}

	return e.Weight, true
}

// Edges returns copies of all edges sorted by From asc, then To asc.
// This is the export view consumed by renderers.
//
// Complexity: O(E log E) time, O(E) space.
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, g.edgeCount)
	var (
		targets map[string]*Edge
		e       *Edge
	)
	for _, targets = range g.adjacency {
		for _, e = range targets {
			out = append(out, *e)
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}
