package negcycle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/negcycle"
	"github.com/katalvlaran/mcflow/residual"
)

// diamond returns A→B→D (cost 1 each) and A→C→D (cost 5 each), capacity 2.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		from, to string
		cost     int64
	}{{"A", "B", 1}, {"B", "D", 1}, {"A", "C", 5}, {"C", "D", 5}} {
		_, err := g.AddEdge(e.from, e.to, 2, e.cost)
		require.NoError(t, err)
	}

	return g
}

// requireClosed asserts the cycle is a closed walk with negative cost.
func requireClosed(t *testing.T, c negcycle.Cycle) {
	t.Helper()
	require.NotZero(t, c.Len())
	for i, a := range c.Arcs {
		next := c.Arcs[(i+1)%len(c.Arcs)]
		require.Equal(t, a.To, next.From, "arc %d does not connect to arc %d", i, i+1)
	}
	require.Negative(t, c.Cost())
}

func TestFind_NoCycleOnZeroFlow(t *testing.T) {
	_, ok := negcycle.Find(residual.Build(diamond(t)))
	require.False(t, ok)
}

func TestFind_EmptyGraph(t *testing.T) {
	_, ok := negcycle.Find(residual.Build(core.NewGraph()))
	require.False(t, ok)
}

// TestFind_ExpensiveRoute: flow on A→C→D leaves the cheaper detour as a
// negative cycle A→B→D→C→A of cost 1+1−5−5.
func TestFind_ExpensiveRoute(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.SetFlow(2, 2))
	require.NoError(t, g.SetFlow(3, 2))

	c, ok := negcycle.Find(residual.Build(g))
	require.True(t, ok)
	requireClosed(t, c)
	require.Equal(t, int64(-8), c.Cost())
	require.Equal(t, 4, c.Len())
	require.Equal(t, int64(2), c.Bottleneck())
	require.ElementsMatch(t, []int{0, 1, 2, 3}, c.Vertices())

	backward := 0
	for _, a := range c.Arcs {
		if a.Backward {
			backward++
		}
	}
	require.Equal(t, 2, backward, "C→A and D→C undo flow")
}

// TestFind_UnreachableComponent: the cycle lives in a component that vertex
// slot 0 cannot reach.
func TestFind_UnreachableComponent(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("X", "Y", 3, 1)
	require.NoError(t, err)
	for _, e := range [][2]string{{"P", "Q"}, {"Q", "R"}, {"R", "P"}} {
		_, err = g.AddEdge(e[0], e[1], 1, -1)
		require.NoError(t, err)
	}

	c, ok := negcycle.Find(residual.Build(g))
	require.True(t, ok)
	requireClosed(t, c)
	require.Equal(t, int64(-3), c.Cost())
	require.Equal(t, int64(1), c.Bottleneck())
}

func TestFind_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "B", 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "B", 4, -2)
	require.NoError(t, err)

	c, ok := negcycle.Find(residual.Build(g))
	require.True(t, ok)
	require.Equal(t, 1, c.Len())
	require.Equal(t, int64(4), c.Bottleneck())
}

func TestFind_Deterministic(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.SetFlow(2, 2))
	require.NoError(t, g.SetFlow(3, 2))

	first, _ := negcycle.Find(residual.Build(g))
	second, _ := negcycle.Find(residual.Build(g))
	require.Equal(t, first, second)
}

// TestFind_PositiveCycleIgnored: a cycle of positive cost is not reported.
func TestFind_PositiveCycleIgnored(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		_, err := g.AddEdge(e[0], e[1], 1, 2)
		require.NoError(t, err)
	}
	_, ok := negcycle.Find(residual.Build(g))
	require.False(t, ok)
}
