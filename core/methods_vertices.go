// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VerticesInOrder/
//       VertexCount/Vertex.
// Determinism:
//   - Vertices() returns IDs sorted lex asc.
//   - VerticesInOrder() returns IDs in first-seen order.
// Concurrency:
//   - Mutations under muVert write lock (then muEdgeAdj to bootstrap adjacency).
//   - Read queries under muVert read lock.

package core

import "sort"

// AddVertex registers a word as a vertex.
//
// Implementation:
//   - Stage 1: Reject empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert, no-op if present, else assign the next sequence.
//   - Stage 3: Under muEdgeAdj, bootstrap the empty adjacency bucket so that a
//     sink vertex is still enumerable as a source key.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id if absent. Caller holds muVert write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Seq: len(g.order)}
	g.order = append(g.order, id)

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()
}

// HasVertex reports whether the word is a vertex (empty ID ⇒ false).
// A word counts as present whether it appears as a source or only as a destination.
//
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record for id.
func (g *Graph) Vertex(id string) (Vertex, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}

	return *v, true
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	g.muVert.RUnlock()

	sort.Strings(ids)

	return ids
}

// VerticesInOrder returns all vertex IDs in first-seen order.
// Use it when a random index must map to the same word for a fixed seed.
//
// Complexity: O(V).
func (g *Graph) VerticesInOrder() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, len(g.order))
	copy(ids, g.order)

	return ids
}

// VertexCount returns the current number of vertices.
// Prefer it over len(Vertices()) to avoid the sort.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
