// File: api.go
// Role: Read-only getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a point-in-time summary of a flow Graph.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	AllowsLoops   bool
	TotalBalance  int64 // Σ balance; zero for a balanced instance
	TotalSupply   int64 // Σ positive balance
	TotalCapacity int64
	TotalFlow     int64
	TotalCost     int64 // Σ flow·cost
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Stats produces a deterministic, read-only snapshot of counts and totals.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan vertex slots for balances, then edge slots for capacity/flow/cost.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.byID),
		EdgeCount:   g.liveEdges,
		AllowsLoops: g.allowLoops,
	}
	for _, v := range g.vertices {
		if v == nil {
			continue
		}
		stats.TotalBalance += v.Balance
		if v.Balance > 0 {
			stats.TotalSupply += v.Balance
		}
	}
	for _, e := range g.edges {
		if e == nil {
			continue
		}
		stats.TotalCapacity += e.Capacity
		stats.TotalFlow += e.Flow
		stats.TotalCost += e.Flow * e.Cost
	}

	return &stats
}
