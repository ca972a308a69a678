package bridge_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
)

func mustGraph(t *testing.T, text string) *core.Graph {
	t.Helper()
	g, err := builder.FromText(text)
	require.NoError(t, err)
	return g
}

func TestFind_Scenarios(t *testing.T) {
	assert.Equal(t, []string{"b"}, bridge.Find(mustGraph(t, "a b b c"), "a", "c"))
	assert.Equal(t, []string{"b", "d"}, bridge.Find(mustGraph(t, "a b c a d c"), "a", "c"))
	assert.Empty(t, bridge.Find(mustGraph(t, "a b c"), "c", "a"))
	assert.Empty(t, bridge.Find(nil, "a", "b"))
}

// TestFind_Invariant checks m ∈ Find(a,b) ⇔ a→m ∧ m→b for every pair of words.
func TestFind_Invariant(t *testing.T) {
	texts := []string{
		"a b c a d c",
		"the cat sat on the mat and the cat ran to the dog",
		"x x y x y y z",
	}
	for _, text := range texts {
		g := mustGraph(t, text)
		words := g.Vertices()
		for _, a := range words {
			for _, b := range words {
				got := map[string]bool{}
				for _, m := range bridge.Find(g, a, b) {
					got[m] = true
				}
				for _, m := range words {
					want := g.HasEdge(a, m) && g.HasEdge(m, b)
					assert.Equal(t, want, got[m], "text=%q a=%q m=%q b=%q", text, a, m, b)
				}
			}
		}
	}
}

func TestQuery_Messages(t *testing.T) {
	g := mustGraph(t, "a b c a d c a e c")

	cases := []struct {
		name   string
		w1, w2 string
		status bridge.Status
		msg    string
	}{
		{"both missing", "x", "y", bridge.StatusBothMissing, `No "x" and "y" in the graph!`},
		{"first missing", "x", "c", bridge.StatusFirstMissing, `No "x" in the graph!`},
		{"second missing", "a", "x", bridge.StatusSecondMissing, `No "x" in the graph!`},
		{"none", "b", "d", bridge.StatusNone, `No bridge words from "b" to "d"!`},
		{"three bridges", "a", "c", bridge.StatusFound, `The bridge words from "a" to "c" are: b, d, and e.`},
		{"one bridge", "c", "b", bridge.StatusFound, `The bridge words from "c" to "b" are: a.`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := bridge.Query(g, tc.w1, tc.w2)
			assert.Equal(t, tc.status, res.Status)
			assert.Equal(t, tc.msg, res.String())
		})
	}
}

func TestQuery_OneAndTwoBridges(t *testing.T) {
	one := bridge.Query(mustGraph(t, "a b c"), "a", "c")
	assert.Equal(t, `The bridge words from "a" to "c" are: b.`, one.String())

	two := bridge.Query(mustGraph(t, "a b c a d c"), "a", "c")
	assert.Equal(t, `The bridge words from "a" to "c" are: b and d.`, two.String())
	assert.NoError(t, two.Err())
}

// TestQuery_DestinationOnlyWord covers a word present only as a destination.
func TestQuery_DestinationOnlyWord(t *testing.T) {
	g := mustGraph(t, "a b c")
	res := bridge.Query(g, "c", "a")
	assert.Equal(t, bridge.StatusNone, res.Status)
	assert.Nil(t, res.Bridges)
}

func TestResult_Err(t *testing.T) {
	res := bridge.Query(mustGraph(t, "a b"), "a", "zzz")
	err := res.Err()
	require.ErrorIs(t, err, core.ErrUnknownWord)
	assert.Equal(t, []string{"zzz"}, err.(*core.UnknownWordError).Words)
	assert.Equal(t, "second_missing", res.Status.String())
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", bridge.Join(nil))
	assert.Equal(t, "b", bridge.Join([]string{"b"}))
	assert.Equal(t, "b and d", bridge.Join([]string{"b", "d"}))
	assert.Equal(t, "b, d, and e", bridge.Join([]string{"b", "d", "e"}))
	assert.Equal(t, "b, d, e, and f", bridge.Join([]string{"b", "d", "e", "f"}))
}

func ExampleQuery() {
	g, _ := builder.FromText("Seek new life and new civilizations, seek strange life")
	fmt.Println(bridge.Query(g, "seek", "life"))
	// Output: The bridge words from "seek" to "life" are: new and strange.
}
