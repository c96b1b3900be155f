// File: methods_vertices.go
// Role: Vertex lifecycle, balances & queries.
//
// Determinism:
//   - Vertices() returns live vertices in ascending slot order (insertion order).
//
// Concurrency:
//   - Mutations take g.mu for writing; queries take it for reading.
package core

// AddVertex inserts a new vertex and returns its arena slot.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, reject duplicates (ErrDuplicateVertex).
//   - Stage 3: Append the vertex and its empty incidence lists; apply options.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.byID[id]; exists {
		return -1, ErrDuplicateVertex
	}

	return g.addVertexLocked(id, opts...), nil
}

// addVertexLocked appends a vertex slot. Caller holds g.mu for writing.
func (g *Graph) addVertexLocked(id string, opts ...VertexOption) int {
	idx := len(g.vertices)
	v := &Vertex{Index: idx, ID: id, Metadata: make(map[string]interface{})}
	for _, opt := range opts {
		opt(v)
	}
	g.vertices = append(g.vertices, v)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	g.byID[id] = idx

	return idx
}

// ensureVertexLocked returns the slot of id, adding a zero-balance vertex if missing.
func (g *Graph) ensureVertexLocked(id string) int {
	if idx, ok := g.byID[id]; ok {
		return idx
	}

	return g.addVertexLocked(id)
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.byID[id]

	return ok
}

// Index returns the arena slot of vertex id.
func (g *Graph) Index(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.byID[id]

	return idx, ok
}

// VertexByID returns a snapshot of the vertex with the given ID.
func (g *Graph) VertexByID(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.byID[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *g.vertices[idx], nil
}

// VertexAt returns a snapshot of the vertex stored in slot idx.
func (g *Graph) VertexAt(idx int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.vertices) || g.vertices[idx] == nil {
		return Vertex{}, ErrVertexNotFound
	}

	return *g.vertices[idx], nil
}

// RemoveVertex deletes the vertex and every edge incident to it.
//
// Implementation:
//   - Stage 1: Resolve the slot (ErrEmptyVertexID / ErrVertexNotFound).
//   - Stage 2: Tombstone every incident edge and unlink it from the opposite endpoint.
//   - Stage 3: Tombstone the vertex slot and forget its ID.
//
// Behavior highlights:
//   - No other vertex or edge index changes.
//
// Complexity:
//   - Time O(deg(v) · d_max) for unlinking, Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	idx, ok := g.byID[id]
	if !ok {
		return ErrVertexNotFound
	}
	// Copy the lists first: removeEdgeLocked edits them.
	incident := make([]int, 0, len(g.out[idx])+len(g.in[idx]))
	incident = append(incident, g.out[idx]...)
	incident = append(incident, g.in[idx]...)
	for _, eid := range incident {
		if g.edges[eid] != nil {
			g.removeEdgeLocked(eid)
		}
	}
	g.vertices[idx] = nil
	g.out[idx], g.in[idx] = nil, nil
	delete(g.byID, id)

	return nil
}

// Vertices returns snapshots of all live vertices in ascending slot order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Vertex, 0, len(g.byID))
	for _, v := range g.vertices {
		if v != nil {
			out = append(out, *v)
		}
	}

	return out
}

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.byID)
}

// VertexSlots returns the arena length: one more than the largest vertex index
// ever issued. Algorithms size per-vertex arrays with it.
func (g *Graph) VertexSlots() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// SetBalance assigns the supply/demand of vertex id.
func (g *Graph) SetBalance(id string, balance int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	idx, ok := g.byID[id]
	if !ok {
		return ErrVertexNotFound
	}
	g.vertices[idx].Balance = balance

	return nil
}

// Balance returns the supply/demand of vertex id.
func (g *Graph) Balance(id string) (int64, error) {
	v, err := g.VertexByID(id)

	return v.Balance, err
}

// TotalBalance returns the sum of all vertex balances. A feasible
// supply/demand instance requires it to be exactly zero.
func (g *Graph) TotalBalance() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var sum int64
	for _, v := range g.vertices {
		if v != nil {
			sum += v.Balance
		}
	}

	return sum
}

// PositiveBalance returns the total supply: the sum of all positive balances.
func (g *Graph) PositiveBalance() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var sum int64
	for _, v := range g.vertices {
		if v != nil && v.Balance > 0 {
			sum += v.Balance
		}
	}

	return sum
}
