// File: path.go
// Role: Word-level path queries on top of Dijkstra: single-pair, single-source
//       to all targets, predecessor-chain reconstruction and rendering.
// Determinism:
//   - AllPaths enumerates targets in lexicographic order.

package dijkstra

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

// Path is the outcome of a single-pair query.
type Path struct {
	Source    string
	Target    string
	Words     []string // Source..Target inclusive; nil when unreachable
	Length    int64    // sum of edge weights along Words
	Reachable bool
}

// String renders the single-pair report:
//
//	Shortest path: a -> b -> c
//	Length: 3
func (p *Path) String() string {
	if !p.Reachable {
		return p.noPath()
	}
	return fmt.Sprintf("Shortest path: %s\nLength: %d", strings.Join(p.Words, Separator), p.Length)
}

// Line renders one row of the all-targets report.
func (p *Path) Line() string {
	if !p.Reachable {
		return p.noPath()
	}
	return fmt.Sprintf("Shortest path to %s: %s (Length: %d)", p.Target, strings.Join(p.Words, Separator), p.Length)
}

func (p *Path) noPath() string {
	return fmt.Sprintf("No path from %q to %q", p.Source, p.Target)
}

// FormatAll joins the Line of every path with newlines.
func FormatAll(paths []*Path) string {
	lines := make([]string, len(paths))
	for i, p := range paths {
		lines[i] = p.Line()
	}
	return strings.Join(lines, "\n")
}

// Tree is a completed single-source run: final distances plus predecessors.
// It is immutable once returned and safe to share between goroutines.
type Tree struct {
	Source string
	Dist   map[string]int64
	Prev   map[string]string
}

// Run executes Dijkstra from source and keeps the predecessor map.
func Run(g *core.Graph, source string, opts ...Option) (*Tree, error) {
	all := append([]Option{Source(source)}, opts...)
	all = append(all, WithReturnPath())

	dist, prev, err := Dijkstra(g, all...)
	if err != nil {
		return nil, err
	}

	return &Tree{Source: source, Dist: dist, Prev: prev}, nil
}

// PathTo extracts the path to target. Targets unknown to the run are reported
// as unreachable.
func (t *Tree) PathTo(target string) *Path {
	p := &Path{Source: t.Source, Target: target}

	d, ok := t.Dist[target]
	if !ok || d == math.MaxInt64 {
		return p
	}

	p.Words = Reconstruct(t.Prev, t.Source, target)
	if p.Words == nil {
		return p
	}
	p.Length = d
	p.Reachable = true

	return p
}

// ShortestPath finds a minimum-weight path from one word to another.
//
// Unknown words yield a *core.UnknownWordError naming every missing word.
// from == to yields the single-word path of length 0. An empty to yields
// ErrEmptyTarget; Paths serves the optional-target form.
func ShortestPath(g *core.Graph, from, to string, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if to == "" {
		return nil, ErrEmptyTarget
	}
	if missing := missingWords(g, from, to); len(missing) > 0 {
		return nil, core.NewUnknownWordError(missing...)
	}

	tree, err := Run(g, from, opts...)
	if err != nil {
		return nil, err
	}

	return tree.PathTo(to), nil
}

// AllPaths returns one Path per vertex other than from, in lexicographic
// order of the target, reachable or not.
func AllPaths(g *core.Graph, from string, opts ...Option) ([]*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(from) {
		return nil, core.NewUnknownWordError(from)
	}

	tree, err := Run(g, from, opts...)
	if err != nil {
		return nil, err
	}

	return tree.AllPaths(g.Vertices()), nil
}

// Paths answers a query whose target is optional: an empty to lists every
// other word as AllPaths does, otherwise the result holds the single
// ShortestPath.
func Paths(g *core.Graph, from, to string, opts ...Option) ([]*Path, error) {
	if to == "" {
		return AllPaths(g, from, opts...)
	}

	p, err := ShortestPath(g, from, to, opts...)
	if err != nil {
		return nil, err
	}

	return []*Path{p}, nil
}

// AllPaths builds a Path for each target except the source, preserving the
// order of targets.
func (t *Tree) AllPaths(targets []string) []*Path {
	out := make([]*Path, 0, len(targets))
	for _, v := range targets {
		if v == t.Source {
			continue
		}
		out = append(out, t.PathTo(v))
	}
	return out
}

// Reconstruct walks the predecessor chain from to back to from and returns the
// words in forward order. It returns nil when the chain does not reach from.
//
// Complexity: O(L) for a path of L words; the walk is bounded by len(prev)+1
// steps so a malformed map cannot loop forever.
func Reconstruct(prev map[string]string, from, to string) []string {
	if from == to {
		return []string{from}
	}

	rev := []string{to}
	cur := to
	for steps := 0; steps <= len(prev); steps++ {
		p, ok := prev[cur]
		if !ok || p == "" {
			return nil
		}
		rev = append(rev, p)
		if p == from {
			// Reverse in place.
			for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
				rev[i], rev[j] = rev[j], rev[i]
			}
			return rev
		}
		cur = p
	}

	return nil
}

func missingWords(g *core.Graph, words ...string) []string {
	var missing []string
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if !g.HasVertex(w) {
			missing = append(missing, w)
		}
	}
	return missing
}
