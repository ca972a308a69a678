package export_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/export"
)

func TestTriples(t *testing.T) {
	g, err := builder.FromText("b a b a c")
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{
		{From: "a", To: "b", Weight: 1},
		{From: "a", To: "c", Weight: 1},
		{From: "b", To: "a", Weight: 2},
	}, export.Triples(g))

	assert.Empty(t, export.Triples(core.NewGraph()))
	assert.NotNil(t, export.Triples(nil))
}

func TestWriteDOT(t *testing.T) {
	g, err := builder.FromText("to be or not to be")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteDOT(&buf, g))
	assert.Equal(t, strings.Join([]string{
		"digraph G {",
		`    "be" -> "or" [label="1"];`,
		`    "not" -> "to" [label="1"];`,
		`    "or" -> "not" [label="1"];`,
		`    "to" -> "be" [label="2"];`,
		"}",
		"",
	}, "\n"), buf.String())

	buf.Reset()
	require.NoError(t, export.WriteDOT(&buf, core.NewGraph()))
	assert.Equal(t, "digraph G {\n}\n", buf.String())

	assert.ErrorIs(t, export.WriteDOT(&buf, nil), export.ErrNilGraph)
}

type failingWriter struct{}

var errBroken = errors.New("broken pipe")

func (failingWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestWriters_PropagateErrors(t *testing.T) {
	g, err := builder.FromText("a b")
	require.NoError(t, err)

	assert.ErrorIs(t, export.WriteDOT(failingWriter{}, g), errBroken)
	assert.ErrorIs(t, export.WriteWalk(failingWriter{}, []string{"a"}), errBroken)
}

func TestWriteWalk_File(t *testing.T) {
	path := t.TempDir() + "/random_walk.txt"
	f, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, export.WriteWalk(f, []string{"seek", "out", "new"}))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "seek out new\n", string(data))
}
