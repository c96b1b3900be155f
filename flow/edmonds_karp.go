package flow

import (
	"context"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/residual"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value
//   - result:  a clone of g carrying the maximum flow on its edges
//   - err:     non-nil on a nil graph, bad terminals, or context cancellation.
//
// Steps:
//  1. Validate terminals; clone g with zero flow.
//  2. Loop:
//     a. Check ctx for cancellation.
//     b. Rebuild the residual network from the working graph.
//     c. BFS from source; stop when sink is unreachable.
//     d. Push the path's bottleneck along it.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
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
		path := bfsAugmentingPath(r, s, t)
		if len(path) == 0 {
			break
		}
		amount, err := push(work, path, EdmondsKarpAlgorithm, o)
		if err != nil {
			return 0, nil, err
		}
		maxFlow += amount
	}

	return maxFlow, work, nil
}

// bfsAugmentingPath finds the shortest (fewest-arcs) path in r from s to t.
// Residual arcs always carry positive capacity. Returns nil if t is unreachable.
func bfsAugmentingPath(r *residual.Graph, s, t int) []residual.Arc {
	predArc := newPred(r.Slots())
	visited := make([]bool, r.Slots())
	visited[s] = true

	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, ai := range r.OutArcs(u) {
			v := r.Arcs[ai].To
			if visited[v] {
				continue
			}
			visited[v] = true
			predArc[v] = ai
			if v == t {
				return tracePath(r, predArc, s, t)
			}
			queue = append(queue, v)
		}
	}

	return nil
}
