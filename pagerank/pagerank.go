package pagerank

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

// Rank computes PageRank scores for every vertex of g.
//
// Steps:
//  1. Resolve and validate options.
//  2. Snapshot vertices (sorted) and successor lists into index form.
//  3. Iterate: base + link shares + sink share; measure Σ|Δ|.
//  4. Stop on convergence or at the cap.
//
// Complexity: O(I·(V+E)) time, O(V+E) space.
func Rank(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Index the graph
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	succ := make([][]int, n)
	for i, id := range ids {
		out := g.Successors(id)
		succ[i] = make([]int, len(out))
		for j, to := range out {
			succ[i][j] = index[to]
		}
	}

	// 3) Power iteration
	nf := float64(n)
	d := cfg.Damping
	base := (1 - d) / nf

	score := make([]float64, n)
	next := make([]float64, n)
	for i := range score {
		score[i] = 1 / nf
	}

	res := &Result{}
	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		var sink float64
		for i := range next {
			next[i] = 0
		}
		for u, targets := range succ {
			if len(targets) == 0 {
				sink += score[u]
				continue
			}
			share := score[u] / float64(len(targets))
			for _, v := range targets {
				next[v] += share
			}
		}

		sinkShare := sink / nf
		var delta float64
		for v := range next {
			next[v] = base + d*(next[v]+sinkShare)
			delta += math.Abs(next[v] - score[v])
		}
		score, next = next, score

		res.Iterations = iter
		res.Delta = delta
		if cfg.OnIteration != nil {
			cfg.OnIteration(iter, toMap(ids, score), delta)
		}

		// 4) Convergence
		if delta < cfg.Tolerance {
			res.Converged = true
			break
		}
	}
	res.Scores = toMap(ids, score)

	return res, nil
}

func validate(cfg Options) error {
	if math.IsNaN(cfg.Damping) || cfg.Damping < 0 || cfg.Damping > 1 {
		return fmt.Errorf("%w: damping %v not in [0,1]", ErrInvalidParameter, cfg.Damping)
	}
	if cfg.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations %d < 1", ErrInvalidParameter, cfg.MaxIterations)
	}
	if math.IsNaN(cfg.Tolerance) || cfg.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance %v must be positive", ErrInvalidParameter, cfg.Tolerance)
	}
	return nil
}

func toMap(ids []string, score []float64) map[string]float64 {
	m := make(map[string]float64, len(ids))
	for i, id := range ids {
		m[id] = score[i]
	}
	return m
}

// Ranked returns the scores sorted by score desc, then word asc.
func (r *Result) Ranked() []Score {
	out := make([]Score, 0, len(r.Scores))
	for w, s := range r.Scores {
		out = append(out, Score{Word: w, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// FormatRanked renders one "word : score" line per entry.
func FormatRanked(scores []Score) string {
	var b strings.Builder
	for i, s := range scores {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-15s : %.6f", s.Word, s.Score)
	}
	return b.String()
}
