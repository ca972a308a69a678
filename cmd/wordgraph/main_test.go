package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const story = "To explore strange new worlds,\nto seek out new life and new civilizations."

// resetFlags restores every flag of c and its children to its default, since
// cobra keeps parsed values on the package-level commands between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	viper.Reset()
	resetFlags(rootCmd)
	current = app{}

	var out, errb bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errb)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()

	return out.String(), errb.String(), err
}

func writeStory(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "story.txt")
	require.NoError(t, os.WriteFile(path, []byte(story), 0o600))
	return path
}

func TestCLI_Bridge(t *testing.T) {
	file := writeStory(t)

	out, _, err := run(t, "--file", file, "bridge", "seek", "new")
	require.NoError(t, err)
	assert.Equal(t, "The bridge words from \"seek\" to \"new\" are: out.\n", out)

	out, _, err = run(t, "--file", file, "bridge", "seek", "nowhere")
	require.NoError(t, err)
	assert.Equal(t, "No \"nowhere\" in the graph!\n", out)
}

func TestCLI_Path(t *testing.T) {
	file := writeStory(t)

	out, _, err := run(t, "-f", file, "path", "seek", "life")
	require.NoError(t, err)
	assert.Equal(t, "Shortest path: seek -> out -> new -> life\nLength: 3\n", out)

	out, _, err = run(t, "-f", file, "path", "civilizations")
	require.NoError(t, err)
	assert.Equal(t, 9, strings.Count(out, "No path from \"civilizations\""))

	out, _, err = run(t, "-f", file, "path", "ghost", "life")
	require.NoError(t, err)
	assert.Equal(t, "No \"ghost\" in the graph!\n", out)

	out, _, err = run(t, "-f", file, "path", "123", "life")
	require.NoError(t, err)
	assert.Equal(t, "No \"123\" in the graph!\n", out)
}

func TestCLI_PathOptionalTarget(t *testing.T) {
	file := writeStory(t)

	all, _, err := run(t, "-f", file, "path", "seek")
	require.NoError(t, err)
	assert.Equal(t, 9, strings.Count(all, "\n"))
	assert.Contains(t, all, "Shortest path to life: seek -> out -> new -> life (Length: 3)\n")

	for _, target := range []string{"", "!!"} {
		out, _, err := run(t, "-f", file, "path", "seek", target)
		require.NoError(t, err)
		assert.Equal(t, all, out, "target %q", target)
		assert.NotContains(t, out, `No ""`)
	}

	out, _, err := run(t, "-f", file, "path", "seek", "life", "--max-length", "2")
	require.NoError(t, err)
	assert.Equal(t, "No path from \"seek\" to \"life\"\n", out)

	out, _, err = run(t, "-f", file, "path", "seek", "--max-length", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Shortest path to new: seek -> out -> new (Length: 2)\n")
	assert.Contains(t, out, "No path from \"seek\" to \"life\"\n")

	_, _, err = run(t, "-f", file, "path", "seek", "--max-length=-1")
	assert.ErrorContains(t, err, "--max-length")
}

func TestCLI_Generate(t *testing.T) {
	file := writeStory(t)

	out, _, err := run(t, "-f", file, "--seed", "3", "generate", "Seek", "new", "life")
	require.NoError(t, err)
	assert.Equal(t, "seek out new life\n", out)
}

func TestCLI_ShowAndStats(t *testing.T) {
	file := writeStory(t)

	out, _, err := run(t, "-f", file, "show")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.Contains(t, out, `    "seek" -> "out" [label="1"];`)

	dot := filepath.Join(t.TempDir(), "graph.dot")
	_, stderr, err := run(t, "-f", file, "show", "--out", dot)
	require.NoError(t, err)
	assert.Contains(t, stderr, dot)
	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))

	out, _, err = run(t, "-f", file, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "vertices: 10\n")
	assert.Contains(t, out, "edges: 12\n")
}

func TestCLI_WalkIsSeeded(t *testing.T) {
	file := writeStory(t)
	dump := filepath.Join(t.TempDir(), "random_walk.txt")

	first, _, err := run(t, "-f", file, "--seed", "5", "walk", "--out", dump)
	require.NoError(t, err)
	second, _, err := run(t, "-f", file, "--seed", "5", "walk")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	assert.Equal(t, first, string(data))
}

func TestCLI_PageRank(t *testing.T) {
	file := writeStory(t)

	out, _, err := run(t, "-f", file, "pagerank")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "new "), "new has the most in-links: %q", lines[0])

	out, _, err = run(t, "-f", file, "pagerank", "--damping", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "Damping factor must be between 0 and 1!\n", out)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("1 2 3 ..."), 0o600))
	out, _, err = run(t, "-f", empty, "pagerank")
	require.NoError(t, err)
	assert.Equal(t, "The graph is empty!\n", out)
}

func TestCLI_MergeAndMetrics(t *testing.T) {
	file := writeStory(t)
	extra := filepath.Join(t.TempDir(), "extra.txt")
	require.NoError(t, os.WriteFile(extra, []byte("seek out more"), 0o600))

	out, stderr, err := run(t, "-f", file, "--merge", extra, "--metrics", "bridge", "seek", "more")
	require.NoError(t, err)
	assert.Equal(t, "The bridge words from \"seek\" to \"more\" are: out.\n", out)
	assert.Contains(t, stderr, "wordgraph_vertices 11")
	assert.Contains(t, stderr, `wordgraph_queries_total{op="merge",result="ok"} 1`)
}

func TestCLI_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	_, _, err := run(t, "stats")
	assert.ErrorContains(t, err, "--file is required")

	_, _, err = run(t, "-f", "missing.txt", "stats")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "-f", "x", "bridge", "only-one")
	assert.Error(t, err)
}
