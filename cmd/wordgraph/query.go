package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/export"
	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/tokenize"
	"github.com/katalvlaran/wordgraph/walk"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the graph in Graphviz DOT form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return current.sess.WriteDOT(cmd.OutOrStdout())
		}
		return writeFile(out, func(w io.Writer) error { return current.sess.WriteDOT(w) }, cmd, "DOT file written")
	},
}

var bridgeCmd = &cobra.Command{
	Use:   "bridge <word1> <word2>",
	Short: "List the bridge words from word1 to word2",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), current.sess.Bridges(args[0], args[1]))
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate <text...>",
	Short: "Insert bridge words into a new sentence",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), current.sess.Generate(strings.Join(args, " ")))
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path <word1> [word2]",
	Short: "Shortest path from word1 to word2, or to every word",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		target := ""
		if len(args) == 2 {
			target = args[1]
		}
		maxLength, _ := cmd.Flags().GetInt64("max-length")
		if maxLength < 0 {
			return fmt.Errorf("wordgraph: --max-length must be non-negative, got %d", maxLength)
		}

		paths, err := current.sess.Paths(args[0], target, maxLength)
		if err != nil {
			return report(out, err)
		}
		if tokenize.Normalize(target) != "" {
			fmt.Fprintln(out, paths[0])
			return nil
		}
		fmt.Fprintln(out, dijkstra.FormatAll(paths))
		return nil
	},
}

var pagerankCmd = &cobra.Command{
	Use:   "pagerank",
	Short: "Rank every word by PageRank",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			res *pagerank.Result
			err error
		)
		if cmd.Flags().Changed("damping") {
			d, _ := cmd.Flags().GetFloat64("damping")
			res, err = current.sess.PageRankWith(d)
		} else {
			res, err = current.sess.PageRank()
		}
		if err != nil {
			return report(cmd.OutOrStdout(), err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), pagerank.FormatRanked(res.Ranked()))
		return nil
	},
}

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Random walk that stops at a dead end or a repeated edge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		words := current.sess.RandomWalk()
		fmt.Fprintln(cmd.OutOrStdout(), walk.String(words))

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return nil
		}
		return writeFile(out, func(w io.Writer) error { return export.WriteWalk(w, words) }, cmd, "walk written")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print graph counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := current.sess.Stats()
		fmt.Fprintf(cmd.OutOrStdout(),
			"vertices: %d\nedges: %d\ntotal weight: %d\nsinks: %d\nself-loops: %d\nmax weight: %d\n",
			st.VertexCount, st.EdgeCount, st.TotalWeight, st.SinkCount, st.SelfLoops, st.MaxWeight)
		return nil
	},
}

func init() {
	showCmd.Flags().String("out", "", "write DOT to this file instead of stdout")
	pathCmd.Flags().Int64("max-length", 0, "treat words farther than this as unreachable (0 means no cap)")
	pagerankCmd.Flags().Float64("damping", 0.85, "damping factor in [0,1] (default from config)")
	walkCmd.Flags().String("out", "", "also write the walk to this file")

	rootCmd.AddCommand(showCmd, bridgeCmd, generateCmd, pathCmd, pagerankCmd, walkCmd, statsCmd)
}

// report prints the user-facing message of a recoverable query error
// (unknown word, empty graph, damping out of range) and swallows it; any
// other error is returned.
func report(w io.Writer, err error) error {
	var uw *core.UnknownWordError
	switch {
	case errors.As(err, &uw):
		fmt.Fprintln(w, uw.Message())
	case errors.Is(err, core.ErrEmptyGraph):
		fmt.Fprintln(w, "The graph is empty!")
	case errors.Is(err, pagerank.ErrInvalidParameter):
		fmt.Fprintln(w, "Damping factor must be between 0 and 1!")
	default:
		return err
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error, cmd *cobra.Command, msg string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wordgraph: create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("wordgraph: close %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", msg, path)
	return nil
}
