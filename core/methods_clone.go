// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves every vertex and edge slot, tombstones included, so indices
//     taken from the source remain valid on the clone.
// Concurrency:
//   - Read lock on the source; the clone is a fresh, unshared instance.

package core

// Clone returns a deep copy of the Graph: options, vertices, balances, edges,
// capacities, flows, and costs. Vertex Metadata maps are shared, not copied.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make([]*Vertex, len(g.vertices)),
		byID:       make(map[string]int, len(g.byID)),
		edges:      make([]*Edge, len(g.edges)),
		out:        make([][]int, len(g.out)),
		in:         make([][]int, len(g.in)),
		liveEdges:  g.liveEdges,
	}
	for idx, v := range g.vertices {
		if v == nil {
			continue
		}
		cv := *v
		clone.vertices[idx] = &cv
		clone.byID[v.ID] = idx
		clone.out[idx] = append([]int(nil), g.out[idx]...)
		clone.in[idx] = append([]int(nil), g.in[idx]...)
	}
	for eid, e := range g.edges {
		if e == nil {
			continue
		}
		ce := *e
		clone.edges[eid] = &ce
	}

	return clone
}
