// File: options.go
// Role: functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.

package builder

// BuilderOption customizes construction by mutating a builderConfig before
// any constructor runs.
type BuilderOption func(*builderConfig)

// WithTokenizer replaces the tokenizer used by Text. Panics on nil.
func WithTokenizer(fn func(string) []string) BuilderOption {
	if fn == nil {
		panic("builder: WithTokenizer(nil)")
	}
	return func(c *builderConfig) {
		c.tokenizer = fn
	}
}

// WithWeight sets the increment merged per consecutive pair. Panics on delta < 1,
// since weights must stay positive occurrence counts.
func WithWeight(delta int64) BuilderOption {
	if delta < 1 {
		panic("builder: WithWeight(delta < 1)")
	}
	return func(c *builderConfig) {
		c.weight = delta
	}
}
