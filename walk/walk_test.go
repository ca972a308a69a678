package walk_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/walk"
)

func TestWalk_EmptyGraph(t *testing.T) {
	assert.Equal(t, []string{}, walk.Walk(core.NewGraph(), walk.WithSeed(1)))
	assert.Equal(t, []string{}, walk.Walk(nil))

	_, err := walk.WalkFrom(core.NewGraph(), "a")
	assert.ErrorIs(t, err, core.ErrUnknownWord)
}

func TestWalk_FixedStart(t *testing.T) {
	cases := []struct {
		text  string
		start string
		want  []string
	}{
		{"a b c", "a", []string{"a", "b", "c"}},
		{"a b c", "c", []string{"c"}},
		{"a b a", "a", []string{"a", "b", "a"}},
		{"a a", "a", []string{"a", "a"}},
	}
	for _, tc := range cases {
		t.Run(tc.text+"/"+tc.start, func(t *testing.T) {
			g, err := builder.FromText(tc.text)
			require.NoError(t, err)

			got, err := walk.WalkFrom(g, tc.start, walk.WithSeed(3))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, walk.Walk(g, walk.WithStart(tc.start), walk.WithSeed(3)))
		})
	}
}

func TestWalk_UnknownStart(t *testing.T) {
	g, err := builder.FromText("a b")
	require.NoError(t, err)

	_, err = walk.WalkFrom(g, "zzz")
	var uw *core.UnknownWordError
	require.ErrorAs(t, err, &uw)
	assert.Equal(t, `No "zzz" in the graph!`, uw.Message())

	assert.Equal(t, []string{}, walk.Walk(g, walk.WithStart("zzz")))
}

func TestWalk_TerminatesWithoutRepeatingEdges(t *testing.T) {
	vocab := []string{"a", "b", "c", "d", "e"}
	r := rand.New(rand.NewSource(5))

	for round := 0; round < 50; round++ {
		words := make([]string, 1+r.Intn(30))
		for i := range words {
			words[i] = vocab[r.Intn(len(vocab))]
		}
		g, err := builder.BuildGraph(nil, builder.Tokens(words))
		require.NoError(t, err)

		steps := 0
		got := walk.Walk(g, walk.WithRand(rand.New(rand.NewSource(int64(round)))),
			walk.WithStepHook(func(from, to string) { steps++ }))

		require.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), g.EdgeCount()+1, "%v", words)
		assert.Equal(t, len(got)-1, steps)

		seen := make(map[[2]string]bool)
		for i := 1; i < len(got); i++ {
			e := [2]string{got[i-1], got[i]}
			assert.True(t, g.HasEdge(e[0], e[1]), "%v: %v is not an edge", words, e)
			assert.False(t, seen[e], "%v: edge %v repeated", words, e)
			seen[e] = true
		}
	}
}

func TestWalk_Deterministic(t *testing.T) {
	g, err := builder.FromText("the cat sat on the mat and the cat ran to the mat")
	require.NoError(t, err)

	first := walk.Walk(g, walk.WithSeed(42))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, walk.Walk(g, walk.WithSeed(42)))
	}
	assert.Equal(t, walk.Walk(g, walk.WithSeed(0)), walk.Walk(g, walk.WithSeed(1)), "seed 0 maps to the default seed")
}

func TestWalk_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { walk.WithRand(nil) })
	assert.Panics(t, func() { walk.WithStepHook(nil) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "a b c", walk.String([]string{"a", "b", "c"}))
	assert.Equal(t, "", walk.String(nil))
}

func ExampleWalkFrom() {
	g, _ := builder.FromText("one two three")

	words, _ := walk.WalkFrom(g, "one", walk.WithSeed(7))
	fmt.Println(walk.String(words))
	// Output: one two three
}
