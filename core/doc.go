// Package core provides the thread-safe in-memory word graph shared by every
// query package in wordgraph.
//
// The Graph G = (V,E) is a directed, weighted word-adjacency graph:
//
//   - Vertices are case-normalized words. Equality is exact string match.
//   - An edge a→b carries Weight = number of times b immediately followed a.
//   - Weights only grow: AddWeight merges observations, nothing decrements.
//   - Self-loops (a word immediately followed by itself) are legal edges.
//   - A vertex may have no outgoing edges at all (a "sink"), e.g. the last
//     word of a text.
//
// Storage layout:
//
//	vertices[id]          = *Vertex          // catalog, with first-seen sequence
//	adjacency[from][to]   = *Edge            // one edge per ordered pair
//	succOrder[from]       = []string         // successors in first-seen order
//	reverse[to][from]     = struct{}{}       // predecessor index
//
// Locking mirrors the rest of the library: muVert guards the vertex catalog,
// muEdgeAdj guards edges and adjacency; whenever both are taken the order is
// muVert → muEdgeAdj.
//
// Core Methods:
//
//	// Vertex lifecycle & queries
//	AddVertex(id string) error               // O(1)
//	HasVertex(id string) bool                // O(1)
//	Vertices() []string                      // O(V·log V), lexicographic
//	VerticesInOrder() []string               // O(V), first-seen order
//	VertexCount() int                        // O(1)
//
//	// Edge lifecycle & queries
//	AddWeight(from, to string, delta int64) (int64, error) // O(1) amortized
//	HasEdge(from, to string) bool            // O(1)
//	Weight(from, to string) (int64, bool)    // O(1)
//	Edges() []Edge                           // O(E·log E), sorted by (From, To)
//	EdgeCount() int                          // O(1)
//
//	// Neighborhoods
//	Successors(id string) []string           // O(d), first-seen order
//	Predecessors(id string) []string         // O(d·log d), lexicographic
//	OutDegree(id string) int                 // O(1), distinct successors
//	InDegree(id string) int                  // O(1), distinct predecessors
//
//	// Maintenance
//	Clone() *Graph                           // O(V+E) deep copy
//	Clear()                                  // O(1)
//	Stats() *GraphStats                      // O(V+E) snapshot
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrBadWeight      – non-positive merge delta
//	ErrUnknownWord    – a queried word is absent (see UnknownWordError)
//	ErrEmptyGraph     – operation requires at least one vertex
package core
