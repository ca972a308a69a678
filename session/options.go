package session

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/wordgraph/internal/metrics"
	"github.com/katalvlaran/wordgraph/internal/rng"
	"github.com/katalvlaran/wordgraph/pagerank"
)

// DefaultPathCacheSize bounds the number of cached shortest-path trees.
const DefaultPathCacheSize = 128

// Options configures a Session.
type Options struct {
	Logger        *zap.Logger
	Metrics       *metrics.Metrics // nil ⇒ no instrumentation
	Rand          *rand.Rand       // nil ⇒ time-seeded
	PathCacheSize int
	Damping       float64
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns a no-op logger, no metrics, a time-seeded source,
// a 128-entry path cache and damping 0.85.
func DefaultOptions() Options {
	return Options{
		Logger:        zap.NewNop(),
		PathCacheSize: DefaultPathCacheSize,
		Damping:       pagerank.DefaultDamping,
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics enables instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithRand injects the random source shared by generation and walks. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("session: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithSeed uses a deterministic random source (seed 0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rng.FromSeed(seed) }
}

// WithPathCacheSize sets the path cache capacity. Panics if n < 1.
func WithPathCacheSize(n int) Option {
	if n < 1 {
		panic("session: WithPathCacheSize requires n >= 1")
	}
	return func(o *Options) { o.PathCacheSize = n }
}

// WithDamping sets the damping factor used by PageRank. The value is
// validated when PageRank runs.
func WithDamping(d float64) Option {
	return func(o *Options) { o.Damping = d }
}
