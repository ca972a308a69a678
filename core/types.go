// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors, UnknownWordError and
//       the NewGraph constructor.
// Concurrency:
//   - muVert guards vertices and order.
//   - muEdgeAdj guards adjacency, succOrder, reverse and edgeCount.

package core

import (
	"errors"
	"strconv"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrBadWeight indicates a merge delta smaller than one.
	ErrBadWeight = errors.New("core: edge weight delta must be positive")

	// ErrUnknownWord indicates a queried word is not a vertex of the graph.
	ErrUnknownWord = errors.New("core: word not in graph")

	// ErrEmptyGraph indicates an operation that needs at least one vertex ran on an empty graph.
	ErrEmptyGraph = errors.New("core: graph has no vertices")
)

// UnknownWordError lists the queried words that are absent from the graph.
// It unwraps to ErrUnknownWord so callers can branch with errors.Is.
type UnknownWordError struct {
	// Words holds the missing words in query order.
	Words []string
}

// NewUnknownWordError returns an *UnknownWordError for the given words.
func NewUnknownWordError(words ...string) *UnknownWordError {
	return &UnknownWordError{Words: append([]string(nil), words...)}
}

// Error implements error.
func (e *UnknownWordError) Error() string {
	quoted := make([]string, len(e.Words))
	for i, w := range e.Words {
		quoted[i] = strconv.Quote(w)
	}

	return "core: word not in graph: " + strings.Join(quoted, ", ")
}

// Unwrap returns ErrUnknownWord.
func (e *UnknownWordError) Unwrap() error { return ErrUnknownWord }

// Message renders the user-facing notice, e.g. `No "x" in the graph!` or
// `No "x" and "y" in the graph!`.
func (e *UnknownWordError) Message() string {
	quoted := make([]string, len(e.Words))
	for i, w := range e.Words {
		quoted[i] = "\"" + w + "\""
	}

	return "No " + strings.Join(quoted, " and ") + " in the graph!"
}

// Vertex represents a word in the graph.
//
// ID is the word itself. Seq is the zero-based position at which the word was
// first registered; it defines the first-seen order used for deterministic
// random selection and bridge listings.
type Vertex struct {
	// ID is the unique identifier (the word).
	ID string

	// Seq is the first-seen insertion sequence.
	Seq int
}

// Edge is a directed, weighted adjacency From→To.
type Edge struct {
	// From is the source word.
	From string

	// To is the destination word.
	To string

	// Weight is the number of merged observations; always ≥ 1.
	Weight int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithVertexCapacity pre-sizes the vertex catalog and adjacency maps.
// Non-positive hints are ignored.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the in-memory word graph.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and order
	muEdgeAdj sync.RWMutex // guards adjacency, succOrder, reverse, edgeCount

	capacity int // allocation hint applied by NewGraph and Clear

	// Storage
	vertices map[string]*Vertex // word → Vertex
	order    []string           // words in first-seen order

	adjacency map[string]map[string]*Edge    // from → to → Edge
	succOrder map[string][]string            // from → successors in first-seen order
	reverse   map[string]map[string]struct{} // to → set of predecessors
	edgeCount int                            // number of distinct ordered pairs
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any capacity hint.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	g.reset()

	return g
}

// reset allocates fresh catalogs. Callers hold both write locks or own g exclusively.
func (g *Graph) reset() {
	g.vertices = make(map[string]*Vertex, g.capacity)
	g.order = make([]string, 0, g.capacity)
	g.adjacency = make(map[string]map[string]*Edge, g.capacity)
	g.succOrder = make(map[string][]string, g.capacity)
	g.reverse = make(map[string]map[string]struct{}, g.capacity)
	g.edgeCount = 0
}
