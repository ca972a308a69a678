// File: api.go
// Role: Read-only summary facade over the graph catalogs.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of catalog sizes and shape counters.
type GraphStats struct {
	VertexCount int   // number of words
	EdgeCount   int   // number of distinct directed edges
	TotalWeight int64 // sum of edge weights = number of merged observations
	SinkCount   int   // vertices with no outgoing edges
	SelfLoops   int   // edges with From == To
	MaxWeight   int64 // heaviest edge weight (0 when there are no edges)
}

// Stats produces a deterministic snapshot of the graph's counters.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, then muEdgeAdj.RLock (lock order), scan once.
//   - Stage 2: Release both and return the populated value.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
	}

	var (
		id      string
		targets map[string]*Edge
		e       *Edge
	)
	for _, id = range g.order {
		targets = g.adjacency[id]
		if len(targets) == 0 {
			stats.SinkCount++
			continue
		}
		for _, e = range targets {
			stats.TotalWeight += e.Weight
			if e.From == e.To {
				stats.SelfLoops++
			}
			if e.Weight > stats.MaxWeight {
				stats.MaxWeight = e.Weight
			}
		}
	}

	return &stats
}

// IsEmpty reports whether the graph has no vertices.
// Complexity: O(1).
func (g *Graph) IsEmpty() bool {
	return g.VertexCount() == 0
}
