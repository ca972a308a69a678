// Package textgen rewrites a sentence by inserting bridge words between
// consecutive word pairs.
//
// For tokens w[0..n-1] the output starts with w[0]; then for each pair
// (w[i], w[i+1]) one bridge word chosen uniformly at random from
// bridge.Find(g, w[i], w[i+1]) is appended when any exist, followed by w[i+1].
// The output therefore has between n and 2n-1 tokens. Each pair draws from
// the random source at most once, and only when it has at least one bridge.
package textgen

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/internal/rng"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// Options configures generation.
type Options struct {
	// Rand is the source used to pick among candidate bridges.
	// nil means a time-seeded source is created per call.
	Rand *rand.Rand
}

// Option is a functional option for Generate.
type Option func(*Options)

// WithRand injects a random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("textgen: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithSeed uses a deterministic source (seed 0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rng.FromSeed(seed) }
}

// Generate tokenizes text and returns the rewritten sentence joined by single
// spaces. Empty or all-punctuation input yields "".
func Generate(g *core.Graph, text string, opts ...Option) string {
	return strings.Join(GenerateWords(g, text, opts...), " ")
}

// GenerateWords is Generate without the final join.
func GenerateWords(g *core.Graph, text string, opts ...Option) []string {
	words := tokenize.Tokenize(text)
	if len(words) == 0 {
		return []string{}
	}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rng.NewRandom()
	}

	out := make([]string, 0, 2*len(words)-1)
	out = append(out, words[0])

	var (
		i       int
		bridges []string
	)
	for i = 0; i+1 < len(words); i++ {
		bridges = bridge.Find(g, words[i], words[i+1])
		if pick, ok := rng.Pick(o.Rand, bridges); ok {
			out = append(out, pick)
		}
		out = append(out, words[i+1])
	}

	return out
}
