// Package bridge finds bridge words: given word1 and word2, a word m is a
// bridge iff the edges word1→m and m→word2 both exist.
//
// Find returns the raw bridge list; Query classifies the lookup (missing
// words, no bridges, bridges found) and renders the user-facing sentence.
//
// Ordering: bridges are listed in the first-seen order of word1's successors,
// which makes multi-bridge messages reproducible for a given text.
//
// Complexity: O(outDeg(word1)) per lookup.
package bridge

import (
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

// Status classifies the outcome of a bridge-word query.
type Status int

const (
	// StatusFound means at least one bridge word exists.
	StatusFound Status = iota
	// StatusNone means both words are present but no bridge connects them.
	StatusNone
	// StatusFirstMissing means word1 is not in the graph.
	StatusFirstMissing
	// StatusSecondMissing means word2 is not in the graph.
	StatusSecondMissing
	// StatusBothMissing means neither word is in the graph.
	StatusBothMissing
)

// String returns a short label, used for logs and metrics.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNone:
		return "none"
	case StatusFirstMissing:
		return "first_missing"
	case StatusSecondMissing:
		return "second_missing"
	case StatusBothMissing:
		return "both_missing"
	default:
		return "unknown"
	}
}

// Result is the outcome of Query.
type Result struct {
	Word1, Word2 string
	Status       Status
	Bridges      []string // non-empty iff Status == StatusFound
}

// Find returns every m with edges w1→m and m→w2, in w1's successor order.
// The result is empty (non-nil) when w1 has no outgoing edges or no bridge exists.
// A self-loop w1→w1 makes w1 a bridge when w1→w2 exists; likewise for w2.
func Find(g *core.Graph, w1, w2 string) []string {
	out := []string{}
	if g == nil {
		return out
	}

	var mid string
	for _, mid = range g.Successors(w1) {
		if g.HasEdge(mid, w2) {
			out = append(out, mid)
		}
	}

	return out
}

// Query classifies a bridge lookup. Presence means the word is a vertex,
// whether as a source or only as a destination; a word that only ever appears
// as a destination simply has no bridges (StatusNone).
func Query(g *core.Graph, w1, w2 string) Result {
	res := Result{Word1: w1, Word2: w2}

	has1, has2 := g != nil && g.HasVertex(w1), g != nil && g.HasVertex(w2)
	switch {
	case !has1 && !has2:
		res.Status = StatusBothMissing
		return res
	case !has1:
		res.Status = StatusFirstMissing
		return res
	case !has2:
		res.Status = StatusSecondMissing
		return res
	}

	res.Bridges = Find(g, w1, w2)
	if len(res.Bridges) == 0 {
		res.Status = StatusNone
		res.Bridges = nil
		return res
	}
	res.Status = StatusFound

	return res
}

// Err returns an *core.UnknownWordError for the missing statuses and nil otherwise.
func (r Result) Err() error {
	switch r.Status {
	case StatusBothMissing:
		return core.NewUnknownWordError(r.Word1, r.Word2)
	case StatusFirstMissing:
		return core.NewUnknownWordError(r.Word1)
	case StatusSecondMissing:
		return core.NewUnknownWordError(r.Word2)
	default:
		return nil
	}
}

// String renders the user-facing sentence for the result.
func (r Result) String() string {
	if err := r.Err(); err != nil {
		return err.(*core.UnknownWordError).Message()
	}
	if r.Status == StatusNone {
		return `No bridge words from "` + r.Word1 + `" to "` + r.Word2 + `"!`
	}

	return `The bridge words from "` + r.Word1 + `" to "` + r.Word2 + `" are: ` + Join(r.Bridges) + "."
}

// Join renders a word list in prose: "a", "a and b", "a, b, and c".
func Join(words []string) string {
	switch n := len(words); n {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	default:
		return strings.Join(words[:n-1], ", ") + ", and " + words[n-1]
	}
}
