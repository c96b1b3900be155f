// Package matching solves bipartite matching problems by reduction to flows.
//
// A bipartite instance is a core.Graph whose vertices carry a part label in
// Metadata[PartKey], either PartA (left) or PartB (right), and whose edges all
// run from part A to part B:
//
//	g := core.NewGraph()
//	g.AddVertex("alice", core.WithMetadata(matching.PartKey, matching.PartA))
//	g.AddVertex("task1", core.WithMetadata(matching.PartKey, matching.PartB))
//	g.AddEdge("alice", "task1", 1, 7) // capacity is ignored; cost 7
//
// Maximum finds a maximum-cardinality matching with a max-flow. Assignment
// finds a minimum-cost perfect matching with a min-cost flow. Labels are
// never defaulted: an unlabeled vertex is an error.
package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/mincost"
)

// Part labels.
const (
	PartKey = "part"
	PartA   = "A"
	PartB   = "B"
)

const (
	sourceID = "__matching_source"
	sinkID   = "__matching_sink"
)

var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrUnknownPart matches *PartError.
	ErrUnknownPart = errors.New("matching: vertex has no valid part label")

	// ErrEdgeDirection is returned for an edge that does not run from part A to part B.
	ErrEdgeDirection = errors.New("matching: edge must run from part A to part B")
)

// PartError reports a vertex whose part label is missing or unknown.
type PartError struct {
	Vertex string
	Label  interface{} // nil when missing
}

func (e *PartError) Error() string {
	return fmt.Sprintf("%v: vertex %q has label %v", ErrUnknownPart, e.Vertex, e.Label)
}

func (e *PartError) Is(target error) bool { return target == ErrUnknownPart }

// Pair is one matched edge.
type Pair struct {
	A, B string
	Edge int // edge index in the input graph
	Cost int64
}

// Result is a matching in edge-index order.
type Result struct {
	Pairs []Pair
	Size  int
	Cost  int64 // Σ Pair.Cost
}

// Maximum returns a maximum-cardinality matching of g. Edge costs are ignored.
func Maximum(ctx context.Context, g *core.Graph, opts *flow.FlowOptions) (*Result, error) {
	work, parts, err := unitClone(g)
	if err != nil {
		return nil, err
	}

	s, t := freeID(work, sourceID), freeID(work, sinkID)
	for _, id := range []string{s, t} {
		if _, err = work.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, v := range parts {
		if v.part == PartA {
			_, err = work.AddEdge(s, v.id, 1, 0)
		} else {
			_, err = work.AddEdge(v.id, t, 1, 0)
		}
		if err != nil {
			return nil, err
		}
	}

	_, result, err := flow.EdmondsKarp(ctx, work, s, t, opts)
	if err != nil {
		return nil, err
	}

	return collect(g, result), nil
}

// Assignment returns a minimum-cost perfect matching of g.
//
// Errors from mincost pass through: mincost.ErrUnbalancedInstance when the
// parts differ in size, mincost.ErrInfeasibleFlow when no perfect matching exists.
func Assignment(ctx context.Context, g *core.Graph, opts ...mincost.Option) (*Result, error) {
	work, parts, err := unitClone(g)
	if err != nil {
		return nil, err
	}
	for _, v := range parts {
		balance := int64(1)
		if v.part == PartB {
			balance = -1
		}
		if err = work.SetBalance(v.id, balance); err != nil {
			return nil, err
		}
	}

	res, err := mincost.CycleCanceling(ctx, work, opts...)
	if err != nil {
		return nil, err
	}

	return collect(g, res.Graph), nil
}

type labeled struct {
	id   string
	part string
}

// unitClone validates g and returns a zero-flow, zero-balance clone whose
// edges all have capacity 1, with every vertex's part.
func unitClone(g *core.Graph) (*core.Graph, []labeled, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	vertices := g.Vertices()
	parts := make([]labeled, 0, len(vertices))
	partOf := make(map[int]string, len(vertices))
	for _, v := range vertices {
		label, ok := v.Metadata[PartKey]
		if s, isStr := label.(string); ok && isStr && (s == PartA || s == PartB) {
			parts = append(parts, labeled{id: v.ID, part: s})
			partOf[v.Index] = s

			continue
		}

		return nil, nil, &PartError{Vertex: v.ID, Label: label}
	}

	work := g.Clone()
	work.ResetFlows()
	for _, e := range work.Edges() {
		if partOf[e.From] != PartA || partOf[e.To] != PartB {
			from, _ := work.VertexAt(e.From)
			to, _ := work.VertexAt(e.To)

			return nil, nil, fmt.Errorf("%w: %s→%s", ErrEdgeDirection, from.ID, to.ID)
		}
		if err := work.SetCapacity(e.Index, 1); err != nil {
			return nil, nil, err
		}
	}
	for _, v := range parts {
		if err := work.SetBalance(v.id, 0); err != nil {
			return nil, nil, err
		}
	}

	return work, parts, nil
}

// collect reads the matched pairs of g off the saturated edges of solved.
func collect(g *core.Graph, solved *core.Graph) *Result {
	res := &Result{}
	for _, e := range g.Edges() {
		se, err := solved.EdgeAt(e.Index)
		if err != nil || se.Flow == 0 {
			continue
		}
		a, _ := g.VertexAt(e.From)
		b, _ := g.VertexAt(e.To)
		res.Pairs = append(res.Pairs, Pair{A: a.ID, B: b.ID, Edge: e.Index, Cost: e.Cost})
		res.Cost += e.Cost
	}
	res.Size = len(res.Pairs)

	return res
}

func freeID(g *core.Graph, base string) string {
	id := base
	for i := 1; g.HasVertex(id); i++ {
		id = fmt.Sprintf("%s_%d", base, i)
	}

	return id
}
