// File: methods_edges.go
// Role: Edge lifecycle, capacity/flow mutation & queries.
// Determinism:
//   - Edges() returns live edges in ascending slot order (insertion order).
//   - Edge slots are never reused; a removed slot stays a tombstone.
// Concurrency:
//   - Mutations under g.mu write lock; queries under read lock.

package core

import "sort"

// AddEdge creates a directed edge from→to and returns its arena slot.
// Missing endpoints are created with zero balance. Flow starts at zero.
//
// Steps:
//  1. Validate IDs, capacity, loops.
//  2. Ensure endpoints exist.
//  3. Append the edge and link it into out[from] and in[to].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, capacity, cost int64) (int, error) {
	if from == "" || to == "" {
		return -1, ErrEmptyVertexID
	}
	if capacity < 0 {
		return -1, ErrNegativeCapacity
	}
	if from == to && !g.allowLoops {
		return -1, ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	u := g.ensureVertexLocked(from)
	v := g.ensureVertexLocked(to)

	eid := len(g.edges)
	g.edges = append(g.edges, &Edge{Index: eid, From: u, To: v, Capacity: capacity, Cost: cost})
	// Slots grow monotonically, so appending keeps the lists sorted.
	g.out[u] = append(g.out[u], eid)
	g.in[v] = append(g.in[v], eid)
	g.liveEdges++

	return eid, nil
}

// RemoveEdge deletes one edge by slot.
// Complexity: O(d) for unlinking from the endpoint lists.
func (g *Graph) RemoveEdge(eid int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.edgeLiveLocked(eid) {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(eid)

	return nil
}

// removeEdgeLocked tombstones eid and unlinks it. Caller holds g.mu and has validated eid.
func (g *Graph) removeEdgeLocked(eid int) {
	e := g.edges[eid]
	g.out[e.From] = removeSorted(g.out[e.From], eid)
	g.in[e.To] = removeSorted(g.in[e.To], eid)
	g.edges[eid] = nil
	g.liveEdges--
}

// removeSorted deletes x from the ascending slice s, preserving order.
func removeSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	if i < len(s) && s[i] == x {
		return append(s[:i], s[i+1:]...)
	}

	return s
}

func (g *Graph) edgeLiveLocked(eid int) bool {
	return eid >= 0 && eid < len(g.edges) && g.edges[eid] != nil
}

// EdgeAt returns a snapshot of the edge stored in slot eid.
func (g *Graph) EdgeAt(eid int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.edgeLiveLocked(eid) {
		return Edge{}, ErrEdgeNotFound
	}

	return *g.edges[eid], nil
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	u, ok := g.byID[from]
	if !ok {
		return false
	}
	v, ok := g.byID[to]
	if !ok {
		return false
	}
	for _, eid := range g.out[u] {
		if g.edges[eid].To == v {
			return true
		}
	}

	return false
}

// Edges returns snapshots of all live edges in ascending slot order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.liveEdges)
	for _, e := range g.edges {
		if e != nil {
			out = append(out, *e)
		}
	}

	return out
}

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveEdges
}

// SetCapacity changes the capacity of edge eid. The current flow must still fit.
func (g *Graph) SetCapacity(eid int, capacity int64) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.edgeLiveLocked(eid) {
		return ErrEdgeNotFound
	}
	e := g.edges[eid]
	if e.Flow > capacity {
		return g.flowErrorLocked(e, e.Flow, capacity)
	}
	e.Capacity = capacity

	return nil
}

// SetFlow assigns the flow of edge eid.
//
// Errors:
//   - ErrEdgeNotFound: if eid is not a live edge.
//   - *FlowError (ErrFlowOutOfRange): if flow is outside [0, capacity]; the edge is unchanged.
func (g *Graph) SetFlow(eid int, flow int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.edgeLiveLocked(eid) {
		return ErrEdgeNotFound
	}
	e := g.edges[eid]
	if flow < 0 || flow > e.Capacity {
		return g.flowErrorLocked(e, flow, e.Capacity)
	}
	e.Flow = flow

	return nil
}

// AddFlow adds delta (which may be negative) to the flow of edge eid,
// with the same validation as SetFlow.
func (g *Graph) AddFlow(eid int, delta int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.edgeLiveLocked(eid) {
		return ErrEdgeNotFound
	}
	e := g.edges[eid]
	flow := e.Flow + delta
	if flow < 0 || flow > e.Capacity {
		return g.flowErrorLocked(e, flow, e.Capacity)
	}
	e.Flow = flow

	return nil
}

// ResetFlows sets the flow of every edge to zero.
func (g *Graph) ResetFlows() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range g.edges {
		if e != nil {
			e.Flow = 0
		}
	}
}

func (g *Graph) flowErrorLocked(e *Edge, flow, capacity int64) *FlowError {
	return &FlowError{
		Edge:     e.Index,
		From:     g.vertices[e.From].ID,
		To:       g.vertices[e.To].ID,
		Flow:     flow,
		Capacity: capacity,
	}
}

// MinRemaining returns the edge with the smallest remaining capacity
// (ties broken by lowest slot) and false if edges is empty.
func MinRemaining(edges []Edge) (Edge, bool) {
	if len(edges) == 0 {
		return Edge{}, false
	}
	best := edges[0]
	for _, e := range edges[1:] {
		if r := e.Remaining(); r < best.Remaining() || (r == best.Remaining() && e.Index < best.Index) {
			best = e
		}
	}

	return best, true
}
