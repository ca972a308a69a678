// Package walk performs randomized traversals of a core.Graph that never
// reuse a directed edge.
//
// A walk starts at a uniformly random vertex (first-seen order is the draw
// domain, so a fixed seed reproduces the walk on the same text) or at a word
// chosen with WithStart. Each step picks a uniformly random successor. The walk
// stops at a sink, or when the chosen edge was already traversed; in that case
// the edge is not taken and its destination is not appended.
//
// Termination: every appended word consumes a fresh directed edge, so a walk
// has at most EdgeCount()+1 words.
package walk

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/internal/rng"
)

// StepHook observes each traversed edge.
type StepHook func(from, to string)

// Options configures a walk.
type Options struct {
	Rand   *rand.Rand // nil ⇒ time-seeded source per call
	Start  string     // "" ⇒ uniformly random start vertex
	OnStep StepHook   // optional observer
}

// Option is a functional option for Walk and WalkFrom.
type Option func(*Options)

// WithRand injects a random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("walk: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithSeed uses a deterministic source (seed 0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rng.FromSeed(seed) }
}

// WithStart fixes the first word of the walk.
func WithStart(word string) Option {
	return func(o *Options) { o.Start = word }
}

// WithStepHook registers fn to be called for every traversed edge.
// Panics on nil.
func WithStepHook(fn StepHook) Option {
	if fn == nil {
		panic("walk: WithStepHook(nil)")
	}
	return func(o *Options) { o.OnStep = fn }
}

type edgeKey struct{ from, to string }

// Walk returns the words visited, start included. An empty graph, or a start
// word set with WithStart that is not in the graph, yields an empty slice.
func Walk(g *core.Graph, opts ...Option) []string {
	words, err := walk(g, opts)
	if err != nil {
		return []string{}
	}
	return words
}

// WalkFrom walks from start and reports an unknown start word as a
// *core.UnknownWordError.
func WalkFrom(g *core.Graph, start string, opts ...Option) ([]string, error) {
	return walk(g, append(append([]Option(nil), opts...), WithStart(start)))
}

func walk(g *core.Graph, opts []Option) ([]string, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil || g.IsEmpty() {
		if o.Start != "" {
			return nil, core.NewUnknownWordError(o.Start)
		}
		return []string{}, nil
	}
	if o.Rand == nil {
		o.Rand = rng.NewRandom()
	}

	// 1) Choose the start vertex
	cur := o.Start
	if cur == "" {
		cur, _ = rng.Pick(o.Rand, g.VerticesInOrder())
	} else if !g.HasVertex(cur) {
		return nil, core.NewUnknownWordError(cur)
	}

	// 2) Step until a sink or a repeated edge
	out := []string{cur}
	used := make(map[edgeKey]struct{})
	for {
		next, ok := rng.Pick(o.Rand, g.Successors(cur))
		if !ok {
			break
		}
		key := edgeKey{from: cur, to: next}
		if _, seen := used[key]; seen {
			break
		}
		used[key] = struct{}{}
		if o.OnStep != nil {
			o.OnStep(cur, next)
		}
		out = append(out, next)
		cur = next
	}

	return out, nil
}

// String joins a walk with single spaces.
func String(words []string) string {
	return strings.Join(words, " ")
}
