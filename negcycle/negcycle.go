package negcycle

import (
	"github.com/katalvlaran/mcflow/residual"
)

// Cycle is a closed walk of residual arcs whose costs sum to a negative value.
// Arcs[i].To == Arcs[i+1].From, and the last arc returns to Arcs[0].From.
type Cycle struct {
	Arcs []residual.Arc
}

// Len returns the number of arcs in the cycle.
func (c Cycle) Len() int { return len(c.Arcs) }

// Cost returns the total cost of the cycle.
func (c Cycle) Cost() int64 {
	var sum int64
	for _, a := range c.Arcs {
		sum += a.Cost
	}

	return sum
}

// Bottleneck returns the smallest residual capacity on the cycle: the amount
// of flow that can be pushed around it.
func (c Cycle) Bottleneck() int64 { return residual.Bottleneck(c.Arcs) }

// Vertices returns the vertex slots visited by the cycle, starting at Arcs[0].From.
func (c Cycle) Vertices() []int {
	out := make([]int, len(c.Arcs))
	for i, a := range c.Arcs {
		out[i] = a.From
	}

	return out
}

// Find searches r for one negative-cost cycle.
//
// Steps:
//  1. dist[v] = 0 for every slot (virtual zero-cost source), pred[v] = −1.
//  2. Up to |V|−1 rounds over r.Arcs; stop early when a round changes nothing.
//  3. One detection round; remember the last vertex it relaxes.
//  4. Step back along pred |V| times to enter the cycle, then collect it.
func Find(r *residual.Graph) (Cycle, bool) {
	n := len(r.Vertices)
	if n == 0 || len(r.Arcs) == 0 {
		return Cycle{}, false
	}
	dist := make([]int64, r.Slots())
	pred := make([]int, r.Slots())
	for i := range pred {
		pred[i] = -1
	}

	for round := 1; round < n; round++ {
		if !relax(r.Arcs, dist, pred) {
			return Cycle{}, false
		}
	}

	last := -1
	for ai, a := range r.Arcs {
		if dist[a.From]+a.Cost < dist[a.To] {
			dist[a.To] = dist[a.From] + a.Cost
			pred[a.To] = ai
			last = a.To
		}
	}
	if last < 0 {
		return Cycle{}, false
	}

	// After n steps back the walk is inside the cycle.
	v := last
	for i := 0; i < n; i++ {
		if pred[v] < 0 {
			return Cycle{}, false
		}
		v = r.Arcs[pred[v]].From
	}

	var arcs []residual.Arc
	for cur := v; ; {
		a := r.Arcs[pred[cur]]
		arcs = append(arcs, a)
		cur = a.From
		if cur == v {
			break
		}
	}
	for i, j := 0, len(arcs)-1; i < j; i, j = i+1, j-1 {
		arcs[i], arcs[j] = arcs[j], arcs[i]
	}

	return Cycle{Arcs: arcs}, true
}

// relax runs one Bellman–Ford round and reports whether any distance changed.
func relax(arcs []residual.Arc, dist []int64, pred []int) bool {
	changed := false
	for ai, a := range arcs {
		if d := dist[a.From] + a.Cost; d < dist[a.To] {
			dist[a.To] = d
			pred[a.To] = ai
			changed = true
		}
	}

	return changed
}
