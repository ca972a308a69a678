// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves first-seen vertex order and successor order, so seeded
//     random selections behave identically on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: vertices, edges and both indexes.
// Mutating the clone never affects the source.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithVertexCapacity(len(g.order)))

	// Copy vertices in first-seen order
	var id string
	for _, id = range g.order {
		v := g.vertices[id]
		clone.vertices[id] = &Vertex{ID: v.ID, Seq: v.Seq}
		clone.order = append(clone.order, id)
		ensureAdjacency(clone, id)
	}

	// Copy edges following successor order so the clone's succOrder matches.
	var (
		from, to string
		succ     []string
		e        *Edge
	)
	for from, succ = range g.succOrder {
		clone.succOrder[from] = append([]string(nil), succ...)
		for _, to = range succ {
			e = g.adjacency[from][to]
			clone.adjacency[from][to] = &Edge{From: e.From, To: e.To, Weight: e.Weight}
			clone.reverse[to][from] = struct{}{}
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear resets the graph to an empty state.
//
// Complexity: O(1) for map reallocation; no iteration over existing entries.
// Concurrency: acquires both write locks.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.reset()
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
