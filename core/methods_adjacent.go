// File: methods_adjacent.go
// Role: Incidence APIs (OutEdges, InEdges) and per-vertex flow accounting.
// Determinism:
//   - OutEdges/InEdges return edges in ascending slot order.

package core

// OutEdges returns snapshots of the edges leaving vertex id, in slot order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d_out).
func (g *Graph) OutEdges(id string) ([]Edge, error) {
	return g.incident(id, true)
}

// InEdges returns snapshots of the edges entering vertex id, in slot order.
// Complexity: O(d_in).
func (g *Graph) InEdges(id string) ([]Edge, error) {
	return g.incident(id, false)
}

func (g *Graph) incident(id string, outgoing bool) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.byID[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	slots := g.in[idx]
	if outgoing {
		slots = g.out[idx]
	}
	res := make([]Edge, 0, len(slots))
	for _, eid := range slots {
		res = append(res, *g.edges[eid])
	}

	return res, nil
}

// InFlow returns the total flow entering vertex id.
func (g *Graph) InFlow(id string) (int64, error) {
	in, _, err := g.flowAround(id)

	return in, err
}

// OutFlow returns the total flow leaving vertex id.
func (g *Graph) OutFlow(id string) (int64, error) {
	_, out, err := g.flowAround(id)

	return out, err
}

// NetFlow returns outflow minus inflow at vertex id. For a feasible
// supply/demand flow it equals the vertex's Balance.
func (g *Graph) NetFlow(id string) (int64, error) {
	in, out, err := g.flowAround(id)

	return out - in, err
}

func (g *Graph) flowAround(id string) (in, out int64, err error) {
	if id == "" {
		return 0, 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.byID[id]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}
	in, out = g.flowAroundLocked(idx)

	return in, out, nil
}

func (g *Graph) flowAroundLocked(idx int) (in, out int64) {
	for _, eid := range g.in[idx] {
		in += g.edges[eid].Flow
	}
	for _, eid := range g.out[idx] {
		out += g.edges[eid].Flow
	}

	return in, out
}
