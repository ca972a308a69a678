// Package pagerank scores the words of a core.Graph by damped power iteration.
//
// Model:
//
//	next[v] = (1-d)/N + d·Σ_{u→v} score[u]/outDeg[u] + d·sink/N
//
// where outDeg counts distinct successors (a self-loop counts once) and sink
// is the total score held by vertices with no outgoing edges. Redistributing
// sink mass keeps Σ score = 1 after every iteration for any d in [0,1].
//
// Iteration stops when the sum of absolute per-vertex deltas falls below
// Tolerance or after MaxIterations rounds, whichever comes first.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the graph pointer is nil.
//	– ErrEmptyGraph        if the graph has no vertices (matches core.ErrEmptyGraph).
//	– ErrInvalidParameter  if Damping ∉ [0,1], MaxIterations < 1 or Tolerance ≤ 0.
package pagerank

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// Sentinel errors returned by Rank.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Rank.
	ErrNilGraph = errors.New("pagerank: graph is nil")

	// ErrEmptyGraph indicates a graph with zero vertices.
	ErrEmptyGraph = fmt.Errorf("pagerank: %w", core.ErrEmptyGraph)

	// ErrInvalidParameter indicates an out-of-range option value.
	ErrInvalidParameter = errors.New("pagerank: invalid parameter")
)

// Default parameters.
const (
	DefaultDamping       = 0.85
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-6
)

// IterationHook observes the score vector after each iteration. scores is a
// copy owned by the hook.
type IterationHook func(iteration int, scores map[string]float64, delta float64)

// Options configures Rank.
type Options struct {
	Damping       float64       // probability of following a link, in [0,1]
	MaxIterations int           // hard cap on rounds, ≥ 1
	Tolerance     float64       // convergence threshold on Σ|Δ|, > 0
	OnIteration   IterationHook // optional observer
}

// Option represents a functional option for configuring Rank.
type Option func(*Options)

// DefaultOptions returns damping 0.85, 100 iterations, tolerance 1e-6.
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// WithDamping sets the damping factor. Range is validated by Rank so that a
// user-supplied value surfaces as ErrInvalidParameter instead of a panic.
func WithDamping(d float64) Option {
	return func(o *Options) {
		o.Damping = d
	}
}

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithTolerance sets the convergence threshold.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		o.Tolerance = eps
	}
}

// WithIterationHook registers fn to be called after every iteration.
// Panics if fn is nil.
func WithIterationHook(fn IterationHook) Option {
	if fn == nil {
		panic("pagerank: WithIterationHook(nil)")
	}
	return func(o *Options) {
		o.OnIteration = fn
	}
}

// Score pairs a word with its rank.
type Score struct {
	Word  string
	Score float64
}

// Result is the outcome of a Rank call.
type Result struct {
	Scores     map[string]float64
	Iterations int     // rounds actually executed
	Converged  bool    // Σ|Δ| fell below Tolerance before the cap
	Delta      float64 // Σ|Δ| of the last round
}
