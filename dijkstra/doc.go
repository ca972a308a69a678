// Package dijkstra finds minimum-weight paths between words of a core.Graph.
//
// Overview:
//
//   - Dijkstra computes distances from one source to every vertex in
//     O((V + E) log V) using a lazy decrease-key min-heap.
//   - Run wraps Dijkstra into an immutable Tree that answers PathTo queries
//     without recomputation; callers may cache a Tree per source word.
//   - ShortestPath and AllPaths are the word-level entry points. They report
//     unknown words as *core.UnknownWordError.
//
// Edge weights are observation counts (≥ 1), so a path's Length is the sum of
// the counts along it. Among equal-length paths the one discovered first wins;
// which one that is follows from the heap order and first-seen successor order
// and is stable for a given graph.
//
// Rendering:
//
//	Shortest path: a -> b -> c -> d
//	Length: 4
//
//	Shortest path to d: a -> b -> c -> d (Length: 4)
//	No path from "a" to "z"
package dijkstra
