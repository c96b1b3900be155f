package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/residual"
)

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows).
//
// Steps:
//  1. Validate terminals; clone g with zero flow.
//  2. Repeat per phase:
//     a. Check ctx for cancellation.
//     b. Rebuild the residual network; BFS levels from source.
//     c. If sink unreachable, break.
//     d. DFS blocking flow over level-increasing arcs, tracking per-arc
//     residual usage locally (current-arc pointers skip dead arcs).
//     e. Apply the per-arc totals to the working graph.
//
// An edge contributes at most one arc to a level graph (its forward and
// backward arcs point in opposite level directions), so the totals applied in
// step 2e always stay within [0, capacity].
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E) for levels, current-arc pointers, and per-arc usage.
func Dinic(
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
		level := levels(r, s)
		if level[t] < 0 {
			break
		}

		b := blocking{
			r:      r,
			t:      t,
			level:  level,
			iter:   make([]int, r.Slots()),
			left:   make([]int64, len(r.Arcs)),
			pushed: make([]int64, len(r.Arcs)),
		}
		for ai, a := range r.Arcs {
			b.left[ai] = a.Capacity
		}
		for {
			b.trail = b.trail[:0]
			amount := b.dfs(s, math.MaxInt64)
			if amount == 0 {
				break
			}
			maxFlow += amount
			path := make([]residual.Arc, len(b.trail))
			for i, ai := range b.trail {
				path[len(b.trail)-1-i] = r.Arcs[ai]
			}
			report(path, amount, DinicAlgorithm, o)
		}

		for ai, amount := range b.pushed {
			if amount == 0 {
				continue
			}
			if err = residual.Apply(work, r.Arcs[ai], amount); err != nil {
				return 0, nil, err
			}
		}
	}

	return maxFlow, work, nil
}

// levels returns BFS distances (in arcs) from s; unreachable slots hold −1.
func levels(r *residual.Graph, s int) []int {
	level := make([]int, r.Slots())
	for i := range level {
		level[i] = -1
	}
	level[s] = 0
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, ai := range r.OutArcs(u) {
			v := r.Arcs[ai].To
			if level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level
}

// blocking holds the per-phase state of Dinic's blocking-flow search.
type blocking struct {
	r      *residual.Graph
	t      int
	level  []int
	iter   []int   // current-arc pointer per vertex slot
	left   []int64 // residual capacity left on each arc in this phase
	pushed []int64 // flow pushed over each arc in this phase
	trail  []int   // arcs of the last successful path, sink first
}

// dfs pushes up to limit units from u to the sink along level-increasing arcs.
func (b *blocking) dfs(u int, limit int64) int64 {
	if u == b.t {
		return limit
	}
	arcs := b.r.OutArcs(u)
	for ; b.iter[u] < len(arcs); b.iter[u]++ {
		ai := arcs[b.iter[u]]
		a := b.r.Arcs[ai]
		if b.left[ai] <= 0 || b.level[a.To] != b.level[u]+1 {
			continue
		}
		if d := b.dfs(a.To, min(limit, b.left[ai])); d > 0 {
			b.left[ai] -= d
			b.pushed[ai] += d
			b.trail = append(b.trail, ai)

			return d
		}
	}

	return 0
}
