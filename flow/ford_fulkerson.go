package flow

import (
	"context"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/residual"
)

// FordFulkerson computes the maximum flow from source to sink using the
// Ford–Fulkerson method (DFS-based augmenting paths).
//
// Steps:
//  1. Validate terminals; clone g with zero flow.
//  2. Repeat until no augmenting path:
//     a. Check ctx for cancellation.
//     b. Rebuild the residual network; iterative DFS for any s→t path.
//     c. If none found, break; otherwise push the bottleneck along it.
//
// Complexity:
//
//	Time:   O(E · F) where F = maxFlow (integral capacities).
//	Memory: O(V + E) for the residual network and DFS stack.
//
// Suitable for small to moderate integral networks; for stronger guarantees,
// consider Edmonds–Karp (BFS) or Dinic (level graph + blocking flow).
func FordFulkerson(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (maxFlow int64, result *core.Graph, err error) {
	o := normalize(opts)
	work, s, t, err := prepare(g, source, sink)
	if err != nil {
		return 0, nil, err
	}

	for {
		if err = ctx.Err(); err != nil {
			return 0, nil, err
		}
		r := residual.Build(work)
		path := dfsAugmentingPath(r, s, t)
		if len(path) == 0 {
			break
		}
		amount, err := push(work, path, FordFulkersonAlgorithm, o)
		if err != nil {
			return 0, nil, err
		}
		maxFlow += amount
	}

	return maxFlow, work, nil
}

// dfsAugmentingPath performs an iterative DFS from s and returns the first
// s→t path it reaches, or nil.
func dfsAugmentingPath(r *residual.Graph, s, t int) []residual.Arc {
	predArc := newPred(r.Slots())
	visited := make([]bool, r.Slots())
	visited[s] = true

	stack := []int{s}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		arcs := r.OutArcs(u)
		// Push in reverse so the lowest arc is explored first.
		for i := len(arcs) - 1; i >= 0; i-- {
			ai := arcs[i]
			v := r.Arcs[ai].To
			if visited[v] {
				continue
			}
			visited[v] = true
			predArc[v] = ai
			if v == t {
				return tracePath(r, predArc, s, t)
			}
			stack = append(stack, v)
		}
	}

	return nil
}
