// File: config.go
// Role: internal configuration and deterministic defaults.
//
// Defaults:
//   - tokenizer = tokenize.Tokenize
//   - weight    = 1

package builder

import "github.com/katalvlaran/wordgraph/tokenize"

// defaultObservationWeight is the increment applied per consecutive pair.
const defaultObservationWeight = int64(1)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	tokenizer func(string) []string // raw text → words
	weight    int64                 // per-observation increment, ≥ 1
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		tokenizer: tokenize.Tokenize,
		weight:    defaultObservationWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
