// File: impl_text.go
// Role: Tokens(words) and Text(raw) constructors.
//
// Contract:
//   - For each i in [0, n-2] merge one observation of words[i]→words[i+1].
//   - After all pairs, words[n-1] is registered as a vertex.
//   - n == 0 is a no-op; n == 1 yields a single vertex.
//
// Complexity:
//   - Time: O(n) amortized. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// Method tags for error context.
const (
	methodTokens = "Tokens"
	methodText   = "Text"
)

// Tokens returns a Constructor that merges the adjacency pairs of words.
// Words are used verbatim; callers passing raw text should use Text.
func Tokens(words []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := len(words)
		if n == 0 {
			return nil
		}

		var (
			i        int
			from, to string
		)
		for i = 0; i+1 < n; i++ {
			from, to = words[i], words[i+1]
			if _, err := g.AddWeight(from, to, cfg.weight); err != nil {
				return fmt.Errorf("%s: AddWeight(%q→%q) at %d: %w: %w", methodTokens, from, to, i, ErrConstructFailed, err)
			}
		}

		// The final word never appears as a source; register it explicitly.
		if err := g.AddVertex(words[n-1]); err != nil {
			return fmt.Errorf("%s: AddVertex(%q): %w: %w", methodTokens, words[n-1], ErrConstructFailed, err)
		}

		return nil
	}
}

// Text returns a Constructor that tokenizes raw with the configured tokenizer
// and delegates to Tokens.
func Text(raw string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := Tokens(cfg.tokenizer(raw))(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodText, err)
		}

		return nil
	}
}
