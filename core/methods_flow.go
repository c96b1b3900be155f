// File: methods_flow.go
// Role: Whole-graph flow properties: cost and invariant checks.
// Determinism:
//   - Checks scan slots in ascending order and report the first violation.

package core

// TotalCost returns Σ flow·cost over all live edges.
// Complexity: O(E).
func (g *Graph) TotalCost() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var sum int64
	for _, e := range g.edges {
		if e != nil {
			sum += e.Flow * e.Cost
		}
	}

	return sum
}

// CheckCapacity verifies 0 <= flow <= capacity on every edge and
// returns a *FlowError for the first edge that violates it.
func (g *Graph) CheckCapacity() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.edges {
		if e != nil && (e.Flow < 0 || e.Flow > e.Capacity) {
			return g.flowErrorLocked(e, e.Flow, e.Capacity)
		}
	}

	return nil
}

// CheckConservation verifies inflow == outflow at every live vertex except
// the exempt IDs (typically a max-flow source and sink). Balances are ignored.
func (g *Graph) CheckConservation(exempt ...string) error {
	skip := make(map[string]struct{}, len(exempt))
	for _, id := range exempt {
		skip[id] = struct{}{}
	}

	return g.checkNet(func(v *Vertex) (int64, bool) {
		_, ok := skip[v.ID]

		return 0, !ok
	})
}

// CheckBalances verifies that outflow − inflow equals Balance at every live
// vertex: sources ship exactly their supply, sinks receive exactly their demand,
// and transshipment vertices conserve flow.
func (g *Graph) CheckBalances() error {
	return g.checkNet(func(v *Vertex) (int64, bool) { return v.Balance, true })
}

// checkNet compares each vertex's net outflow with want(v) when want reports true.
func (g *Graph) checkNet(want func(v *Vertex) (int64, bool)) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for idx, v := range g.vertices {
		if v == nil {
			continue
		}
		target, check := want(v)
		if !check {
			continue
		}
		in, out := g.flowAroundLocked(idx)
		if out-in != target {
			return &ConservationError{Vertex: v.ID, In: in, Out: out, Want: target}
		}
	}

	return nil
}
