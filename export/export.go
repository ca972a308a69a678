// Package export renders a core.Graph and walk results for external tools.
//
// WriteDOT emits Graphviz DOT with one labeled edge per line, in (From, To)
// order so output is byte-stable for a given graph:
//
//	digraph G {
//	    "a" -> "b" [label="1"];
//	}
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to an exporter.
var ErrNilGraph = errors.New("export: graph is nil")

// Triples returns every edge as a (From, To, Weight) triple sorted by From, then To.
func Triples(g *core.Graph) []core.Edge {
	if g == nil {
		return []core.Edge{}
	}
	return g.Edges()
}

// WriteDOT writes g in Graphviz DOT form to w.
func WriteDOT(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("digraph G {\n"); err != nil {
		return fmt.Errorf("export: write dot: %w", err)
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "    %q -> %q [label=\"%d\"];\n", e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("export: write dot: %w", err)
		}
	}
	if _, err := bw.WriteString("}\n"); err != nil {
		return fmt.Errorf("export: write dot: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write dot: %w", err)
	}

	return nil
}

// WriteWalk writes the space-joined words followed by a newline.
func WriteWalk(w io.Writer, words []string) error {
	if _, err := io.WriteString(w, strings.Join(words, " ")+"\n"); err != nil {
		return fmt.Errorf("export: write walk: %w", err)
	}
	return nil
}
