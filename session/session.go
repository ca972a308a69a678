// Package session owns the current word graph and serves every query against
// it.
//
// Concurrency:
//   - Load, Merge and Reset build the next graph privately and swap it in
//     under the write lock; they are serialized among themselves.
//   - Queries hold the read lock, so they always see one complete graph.
//   - The shared random source is guarded by its own mutex.
//   - Shortest-path trees are cached per source word and purged on every swap.
//
// Errors are returned as values; a Session never panics after construction.
package session

import (
	"errors"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/export"
	"github.com/katalvlaran/wordgraph/internal/metrics"
	"github.com/katalvlaran/wordgraph/internal/rng"
	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/textgen"
	"github.com/katalvlaran/wordgraph/tokenize"
	"github.com/katalvlaran/wordgraph/walk"
)

// Operation labels used for metrics and logs.
const (
	OpLoad     = "load"
	OpMerge    = "merge"
	OpBridge   = "bridge"
	OpGenerate = "generate"
	OpPath     = "path"
	OpAllPaths = "all_paths"
	OpPageRank = "pagerank"
	OpWalk     = "walk"
)

// Session is a goroutine-safe handle on one word graph.
type Session struct {
	writeMu sync.Mutex   // serializes Load/Merge/Reset
	mu      sync.RWMutex // guards graph and the path cache contents
	graph   *core.Graph

	randMu sync.Mutex
	rand   *rand.Rand

	paths   *lru.Cache // treeKey → *dijkstra.Tree
	logger  *zap.Logger
	metrics *metrics.Metrics
	damping float64
}

// New creates a Session holding an empty graph.
func New(opts ...Option) *Session {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rng.NewRandom()
	}
	if o.PathCacheSize < 1 {
		o.PathCacheSize = DefaultPathCacheSize
	}

	// lru.New only fails for non-positive sizes.
	cache, _ := lru.New(o.PathCacheSize)

	s := &Session{
		graph:   core.NewGraph(),
		rand:    o.Rand,
		paths:   cache,
		logger:  o.Logger,
		metrics: o.Metrics,
		damping: o.Damping,
	}
	s.metrics.SetGraphSize(0, 0)

	return s
}

// Load replaces the current graph with one built from text.
func (s *Session) Load(text string) error {
	started := time.Now()
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	g, err := builder.FromText(text)
	if err != nil {
		s.metrics.Observe(OpLoad, metrics.ResultError, started)
		return err
	}
	s.swap(g, false)
	s.metrics.Observe(OpLoad, metrics.ResultOK, started)

	return nil
}

// Merge adds the observations of text to the current graph.
func (s *Session) Merge(text string) error {
	started := time.Now()
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	g := s.current().Clone()
	if err := builder.Apply(g, nil, builder.Text(text)); err != nil {
		s.metrics.Observe(OpMerge, metrics.ResultError, started)
		return err
	}
	s.swap(g, true)
	s.metrics.Observe(OpMerge, metrics.ResultOK, started)

	return nil
}

// Reset drops the current graph.
func (s *Session) Reset() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.swap(core.NewGraph(), false)
}

func (s *Session) swap(g *core.Graph, merged bool) {
	s.mu.Lock()
	s.graph = g
	s.paths.Purge()
	s.mu.Unlock()

	vertices, edges := g.VertexCount(), g.EdgeCount()
	s.metrics.SetGraphSize(vertices, edges)
	s.logger.Info("graph loaded",
		zap.Int("vertices", vertices),
		zap.Int("edges", edges),
		zap.Bool("merge", merged))
}

func (s *Session) current() *core.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph
}

// Graph returns a deep copy of the current graph.
func (s *Session) Graph() *core.Graph {
	return s.current().Clone()
}

// Stats returns the counters of the current graph.
func (s *Session) Stats() *core.GraphStats {
	return s.current().Stats()
}

// Bridges looks up the bridge words from w1 to w2.
func (s *Session) Bridges(w1, w2 string) bridge.Result {
	started := time.Now()
	res := bridge.Query(s.current(), queryWord(w1), queryWord(w2))
	s.finish(OpBridge, res.Err(), started)
	return res
}

// queryWord normalizes a user-supplied word. A word without any letters
// keeps its trimmed raw form so that error messages name what was typed;
// such a word can never be a vertex.
func queryWord(raw string) string {
	if w := tokenize.Normalize(raw); w != "" {
		return w
	}
	return strings.TrimSpace(raw)
}

// Generate rewrites text by inserting bridge words.
func (s *Session) Generate(text string) string {
	started := time.Now()
	g := s.current()

	s.randMu.Lock()
	out := textgen.Generate(g, text, textgen.WithRand(s.rand))
	s.randMu.Unlock()

	s.finish(OpGenerate, nil, started)
	return out
}

// ShortestPath returns a minimum-weight path from w1 to w2. A blank w2 yields
// dijkstra.ErrEmptyTarget; Paths serves the optional-target form.
func (s *Session) ShortestPath(w1, w2 string) (*dijkstra.Path, error) {
	if strings.TrimSpace(w2) == "" {
		s.finish(OpPath, dijkstra.ErrEmptyTarget, time.Now())
		return nil, dijkstra.ErrEmptyTarget
	}

	paths, err := s.query(queryWord(w1), queryWord(w2), 0)
	if err != nil {
		return nil, err
	}
	return paths[0], nil
}

// AllPaths returns the path from w1 to every other word, in lexicographic order.
func (s *Session) AllPaths(w1 string) ([]*dijkstra.Path, error) {
	return s.query(queryWord(w1), "", 0)
}

// Paths answers a path query with an optional target. When w2 normalizes to
// the empty word the result lists every other word; otherwise it holds the
// single path from w1 to w2. A positive maxLength reports words farther than
// maxLength as unreachable.
func (s *Session) Paths(w1, w2 string, maxLength int64) ([]*dijkstra.Path, error) {
	return s.query(queryWord(w1), tokenize.Normalize(w2), maxLength)
}

// query runs a path lookup on normalized words; an empty to selects every
// other word as a target.
func (s *Session) query(from, to string, maxLength int64) ([]*dijkstra.Path, error) {
	started := time.Now()
	op := OpPath
	if to == "" {
		op = OpAllPaths
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var missing []string
	if !s.graph.HasVertex(from) {
		missing = append(missing, from)
	}
	if to != "" && to != from && !s.graph.HasVertex(to) {
		missing = append(missing, to)
	}
	if len(missing) > 0 {
		err := core.NewUnknownWordError(missing...)
		s.finish(op, err, started)
		return nil, err
	}

	tree, err := s.treeLocked(from, maxLength)
	if err != nil {
		s.finish(op, err, started)
		return nil, err
	}
	s.finish(op, nil, started)

	if to == "" {
		return tree.AllPaths(s.graph.Vertices()), nil
	}
	return []*dijkstra.Path{tree.PathTo(to)}, nil
}

// treeKey identifies a cached shortest-path tree.
type treeKey struct {
	source    string
	maxLength int64
}

// treeLocked returns the cached shortest-path tree for source, computing it on
// a miss. Caller holds s.mu (read or write).
func (s *Session) treeLocked(source string, maxLength int64) (*dijkstra.Tree, error) {
	if maxLength < 0 {
		maxLength = 0
	}
	key := treeKey{source: source, maxLength: maxLength}
	if v, ok := s.paths.Get(key); ok {
		s.metrics.CacheHit(true)
		return v.(*dijkstra.Tree), nil
	}
	s.metrics.CacheHit(false)

	var opts []dijkstra.Option
	if maxLength > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(maxLength))
	}
	tree, err := dijkstra.Run(s.graph, source, opts...)
	if err != nil {
		return nil, err
	}
	s.paths.Add(key, tree)

	return tree, nil
}

// PageRank scores the current graph with the session damping factor.
func (s *Session) PageRank() (*pagerank.Result, error) {
	return s.PageRankWith(s.damping)
}

// PageRankWith scores the current graph with damping factor d.
func (s *Session) PageRankWith(d float64) (*pagerank.Result, error) {
	started := time.Now()
	res, err := pagerank.Rank(s.current(), pagerank.WithDamping(d))
	s.finish(OpPageRank, err, started)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("pagerank",
		zap.Float64("damping", d),
		zap.Int("iterations", res.Iterations),
		zap.Bool("converged", res.Converged))

	return res, nil
}

// RandomWalk walks the current graph from a random start word.
func (s *Session) RandomWalk() []string {
	started := time.Now()
	g := s.current()

	s.randMu.Lock()
	out := walk.Walk(g, walk.WithRand(s.rand))
	s.randMu.Unlock()

	s.finish(OpWalk, nil, started)
	return out
}

// Triples returns the edges of the current graph sorted by (From, To).
func (s *Session) Triples() []core.Edge {
	return export.Triples(s.current())
}

// WriteDOT writes the current graph as Graphviz DOT.
func (s *Session) WriteDOT(w io.Writer) error {
	return export.WriteDOT(w, s.current())
}

// finish records metrics and logs query failures.
func (s *Session) finish(op string, err error, started time.Time) {
	result := metrics.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, core.ErrUnknownWord):
		result = metrics.ResultUnknown
	default:
		result = metrics.ResultError
	}
	s.metrics.Observe(op, result, started)

	if err != nil {
		s.logger.Debug("query failed", zap.String("op", op), zap.Error(err))
	}
}
