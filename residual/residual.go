// Package residual builds the residual network of a flow graph.
//
// For every edge e = (u→v, capacity c, flow f, cost w) of a core.Graph:
//
//	c − f > 0  ⇒  forward arc  u→v, capacity c − f, cost  w
//	f > 0      ⇒  backward arc v→u, capacity f,     cost −w
//
// A residual Graph is a derived, read-only view. It is never patched in place:
// callers rebuild it from the current flow graph whenever flows change.
package residual

import (
	"github.com/katalvlaran/mcflow/core"
)

// Arc is one residual arc. Edge names the originating core edge slot;
// Backward reports whether the arc undoes flow on that edge.
type Arc struct {
	From, To int
	Capacity int64
	Cost     int64
	Edge     int
	Backward bool
}

// Graph is a residual network over the vertex slots of its source graph.
// Every live source vertex is present, including vertices with no residual arcs.
type Graph struct {
	// Vertices lists the live vertex slots in ascending order.
	Vertices []int

	// Arcs holds every residual arc: edge-slot order, forward before backward.
	Arcs []Arc

	// out[v] lists indices into Arcs leaving vertex slot v.
	out [][]int
}

// Build derives the residual network of g. g is only read.
//
// Steps:
//  1. Record every live vertex slot.
//  2. For each live edge in slot order emit its forward arc (if any) and then
//     its backward arc (if any), indexing arcs by tail vertex.
//
// Complexity: O(V + E).
func Build(g *core.Graph) *Graph {
	vertices := g.Vertices()
	edges := g.Edges()

	r := &Graph{
		Vertices: make([]int, 0, len(vertices)),
		Arcs:     make([]Arc, 0, 2*len(edges)),
		out:      make([][]int, g.VertexSlots()),
	}
	for _, v := range vertices {
		r.Vertices = append(r.Vertices, v.Index)
	}
	for _, e := range edges {
		if rem := e.Remaining(); rem > 0 {
			r.add(Arc{From: e.From, To: e.To, Capacity: rem, Cost: e.Cost, Edge: e.Index})
		}
		if e.Flow > 0 {
			r.add(Arc{From: e.To, To: e.From, Capacity: e.Flow, Cost: -e.Cost, Edge: e.Index, Backward: true})
		}
	}

	return r
}

func (r *Graph) add(a Arc) {
	r.out[a.From] = append(r.out[a.From], len(r.Arcs))
	r.Arcs = append(r.Arcs, a)
}

// Slots returns the size of per-vertex arrays needed to index this graph.
func (r *Graph) Slots() int { return len(r.out) }

// OutArcs returns the indices (into Arcs) of arcs leaving vertex slot v.
// The returned slice must not be modified.
func (r *Graph) OutArcs(v int) []int {
	if v < 0 || v >= len(r.out) {
		return nil
	}

	return r.out[v]
}

// Apply pushes delta units along arc a on the flow graph g: a forward arc
// adds delta to its edge's flow, a backward arc subtracts it.
// It fails with core.ErrFlowOutOfRange if the edge would leave [0, capacity].
func Apply(g *core.Graph, a Arc, delta int64) error {
	if a.Backward {
		return g.AddFlow(a.Edge, -delta)
	}

	return g.AddFlow(a.Edge, delta)
}

// Bottleneck returns the minimum capacity over arcs, or 0 for an empty slice.
func Bottleneck(arcs []Arc) int64 {
	if len(arcs) == 0 {
		return 0
	}
	m := arcs[0].Capacity
	for _, a := range arcs[1:] {
		if a.Capacity < m {
			m = a.Capacity
		}
	}

	return m
}

// Augment pushes the bottleneck of path along every arc of it and returns the
// amount pushed. Arcs must come from a residual graph built from g's current flows.
func Augment(g *core.Graph, path []Arc) (int64, error) {
	amount := Bottleneck(path)
	if amount <= 0 {
		return 0, nil
	}
	for _, a := range path {
		if err := Apply(g, a, amount); err != nil {
			return 0, err
		}
	}

	return amount, nil
}
