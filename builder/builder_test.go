package builder_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenize"
)

func TestFromText_Weights(t *testing.T) {
	g, err := builder.FromText("a b b c c d")
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{
		{From: "a", To: "b", Weight: 1},
		{From: "b", To: "b", Weight: 1},
		{From: "b", To: "c", Weight: 1},
		{From: "c", To: "c", Weight: 1},
		{From: "c", To: "d", Weight: 1},
	}, g.Edges())
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.VerticesInOrder())
}

func TestFromText_RepeatedPairsAccumulate(t *testing.T) {
	g, err := builder.FromText("to be or not to be")
	require.NoError(t, err)

	w, ok := g.Weight("to", "be")
	require.True(t, ok)
	assert.Equal(t, int64(2), w)
	assert.Equal(t, 4, g.VertexCount())
}

func TestFromText_EdgeCases(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		vertices []string
		edges    int
	}{
		{"empty", "", []string{}, 0},
		{"punctuation only", "?!", []string{}, 0},
		{"single word", "Hello!", []string{"hello"}, 0},
		{"self loop", "b b", []string{"b"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.FromText(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.Vertices())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

// TestTokens_EveryDestinationIsVertex checks the vertex-closure invariant.
func TestTokens_EveryDestinationIsVertex(t *testing.T) {
	texts := []string{
		"a b c a d c",
		"the quick brown fox jumps over the lazy dog",
		"x",
		"one two two three three three",
	}
	for _, text := range texts {
		g, err := builder.FromText(text)
		require.NoError(t, err)
		for _, tok := range tokenize.Tokenize(text) {
			assert.True(t, g.HasVertex(tok), "%q missing in graph of %q", tok, text)
		}
		for _, e := range g.Edges() {
			assert.True(t, g.HasVertex(e.To))
			assert.GreaterOrEqual(t, e.Weight, int64(1))
		}
	}
}

func TestApply_Merges(t *testing.T) {
	g, err := builder.FromText("a b")
	require.NoError(t, err)
	require.NoError(t, builder.Apply(g, nil, builder.Text("a b c")))

	w, _ := g.Weight("a", "b")
	assert.Equal(t, int64(2), w)
	assert.True(t, g.HasEdge("b", "c"))
}

func TestApply_Errors(t *testing.T) {
	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Text("a")), builder.ErrNilGraph)

	_, err := builder.BuildGraph(nil, builder.Text("a"), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	// Tokens is verbatim, so an empty token reaches core and is rejected.
	_, err = builder.BuildGraph(nil, builder.Tokens([]string{"a", ""}))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestOptions(t *testing.T) {
	g, err := builder.FromText("a b a b", builder.WithWeight(3))
	require.NoError(t, err)
	w, _ := g.Weight("a", "b")
	assert.Equal(t, int64(6), w)

	g, err = builder.FromText("a,b;c", builder.WithTokenizer(func(s string) []string {
		return strings.FieldsFunc(s, func(r rune) bool { return r == ';' })
	}))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("a,b", "c"))

	assert.Panics(t, func() { builder.WithWeight(0) })
	assert.Panics(t, func() { builder.WithTokenizer(nil) })
}

func ExampleFromText() {
	g, err := builder.FromText("To be, or not to be!")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s (%d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// be -> or (1)
	// not -> to (1)
	// or -> not (1)
	// to -> be (2)
}
