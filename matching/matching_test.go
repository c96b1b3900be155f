package matching_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mcflow/builder"
	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/matching"
	"github.com/katalvlaran/mcflow/mincost"
)

// bipartite builds a graph with left vertices L0..L(n-1), right vertices
// R0..R(m-1), and an edge Li→Rj for every entry of costs that is >= 0.
func bipartite(t require.TestingT, costs [][]int64, right int) *core.Graph {
	g := core.NewGraph()
	for i := range costs {
		_, err := g.AddVertex(fmt.Sprintf("L%d", i), core.WithMetadata(matching.PartKey, matching.PartA))
		require.NoError(t, err)
	}
	for j := 0; j < right; j++ {
		_, err := g.AddVertex(fmt.Sprintf("R%d", j), core.WithMetadata(matching.PartKey, matching.PartB))
		require.NoError(t, err)
	}
	for i, row := range costs {
		for j, c := range row {
			if c >= 0 {
				_, err := g.AddEdge(fmt.Sprintf("L%d", i), fmt.Sprintf("R%d", j), 1, c)
				require.NoError(t, err)
			}
		}
	}

	return g
}

type MatchingSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *MatchingSuite) SetupTest() { s.ctx = context.Background() }

func (s *MatchingSuite) requireMatching(res *matching.Result) {
	usedA, usedB := map[string]bool{}, map[string]bool{}
	for _, p := range res.Pairs {
		require.False(s.T(), usedA[p.A], "%s matched twice", p.A)
		require.False(s.T(), usedB[p.B], "%s matched twice", p.B)
		usedA[p.A], usedB[p.B] = true, true
	}
	require.Equal(s.T(), len(res.Pairs), res.Size)
}

// TestMaximumNeedsReroute: the greedy choice L0–R0 must be undone to match all.
func (s *MatchingSuite) TestMaximumNeedsReroute() {
	g := bipartite(s.T(), [][]int64{
		{0, 0, -1},
		{0, -1, -1},
		{-1, 0, 0},
	}, 3)

	res, err := matching.Maximum(s.ctx, g, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, res.Size)
	s.requireMatching(res)
}

// TestMaximumDeficient: two left vertices share one neighbour.
func (s *MatchingSuite) TestMaximumDeficient() {
	g := bipartite(s.T(), [][]int64{
		{0, -1},
		{0, -1},
		{0, 0},
	}, 2)

	res, err := matching.Maximum(s.ctx, g, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.Size)
	s.requireMatching(res)
}

// TestCapacitiesIgnored: a large capacity does not match a vertex twice.
func (s *MatchingSuite) TestCapacitiesIgnored() {
	g := bipartite(s.T(), [][]int64{{0, 0}}, 2)
	require.NoError(s.T(), g.SetCapacity(0, 10))

	res, err := matching.Maximum(s.ctx, g, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Size)

	e, _ := g.EdgeAt(0)
	require.Equal(s.T(), int64(10), e.Capacity, "input untouched")
}

func (s *MatchingSuite) TestUnknownPart() {
	g := bipartite(s.T(), [][]int64{{0}}, 1)
	_, _ = g.AddVertex("X")
	_, _ = g.AddVertex("Y", core.WithMetadata(matching.PartKey, "C"))

	_, err := matching.Maximum(s.ctx, g, nil)
	require.ErrorIs(s.T(), err, matching.ErrUnknownPart)
	var pe *matching.PartError
	require.ErrorAs(s.T(), err, &pe)
	require.Equal(s.T(), "X", pe.Vertex)
	require.Nil(s.T(), pe.Label)

	require.NoError(s.T(), g.RemoveVertex("X"))
	_, err = matching.Assignment(s.ctx, g)
	require.ErrorAs(s.T(), err, &pe)
	require.Equal(s.T(), "Y", pe.Vertex)
	require.Equal(s.T(), "C", pe.Label)
}

func (s *MatchingSuite) TestEdgeDirection() {
	g := bipartite(s.T(), [][]int64{{0}}, 1)
	_, _ = g.AddEdge("R0", "L0", 1, 0)

	_, err := matching.Maximum(s.ctx, g, nil)
	require.ErrorIs(s.T(), err, matching.ErrEdgeDirection)

	_, err = matching.Maximum(s.ctx, nil, nil)
	require.ErrorIs(s.T(), err, matching.ErrNilGraph)
}

// TestAssignmentOptimal compares against every permutation of a 4×4 matrix.
func (s *MatchingSuite) TestAssignmentOptimal() {
	costs := [][]int64{
		{9, 2, 7, 8},
		{6, 4, 3, 7},
		{5, 8, 1, 8},
		{7, 6, 9, 4},
	}
	g := bipartite(s.T(), costs, 4)

	res, err := matching.Assignment(s.ctx, g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, res.Size)
	s.requireMatching(res)
	require.Equal(s.T(), bruteForce(costs), res.Cost)
	require.Equal(s.T(), int64(13), res.Cost)
}

func (s *MatchingSuite) TestAssignmentErrors() {
	g := bipartite(s.T(), [][]int64{{1, 1}}, 2)
	_, err := matching.Assignment(s.ctx, g)
	require.ErrorIs(s.T(), err, mincost.ErrUnbalancedInstance)

	g = bipartite(s.T(), [][]int64{{1, -1}, {1, -1}}, 2)
	_, err = matching.Assignment(s.ctx, g)
	require.ErrorIs(s.T(), err, mincost.ErrInfeasibleFlow)
}

// TestGeneratedBipartite: random costs on K_{4,4}; the assignment matches the
// brute-force optimum and the maximum matching is perfect.
func (s *MatchingSuite) TestGeneratedBipartite() {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildNetwork(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithCostFn(builder.UniformFn(0, 20))},
			builder.CompleteBipartite(4, 4),
		)
		require.NoError(s.T(), err)

		costs := make([][]int64, 4)
		for i := range costs {
			costs[i] = make([]int64, 4)
		}
		for _, e := range g.Edges() {
			// Arcs are emitted Li→Rj for i asc, then j asc.
			costs[e.Index/4][e.Index%4] = e.Cost
		}

		maximum, err := matching.Maximum(s.ctx, g, nil)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 4, maximum.Size)

		res, err := matching.Assignment(s.ctx, g)
		require.NoError(s.T(), err)
		s.requireMatching(res)
		require.Equal(s.T(), bruteForce(costs), res.Cost, "seed %d", seed)
	}
}

func TestMatchingSuite(t *testing.T) {
	suite.Run(t, new(MatchingSuite))
}

// bruteForce returns the cheapest permutation cost of a square matrix.
func bruteForce(costs [][]int64) int64 {
	n := len(costs)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := int64(-1)
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			var sum int64
			for i, j := range perm {
				sum += costs[i][j]
			}
			if best < 0 || sum < best {
				best = sum
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)

	return best
}
