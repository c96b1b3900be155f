// Package core is the flow-network model shared by the residual, negcycle,
// flow, mincost, and matching packages.
//
// # Model
//
// A Graph holds directed edges with a capacity, a flow, and a per-unit cost,
// and vertices with a balance (supply if positive, demand if negative,
// transshipment if zero). Vertices and edges are stored in arenas and addressed
// by stable integer indices:
//
//	g := core.NewGraph()
//	g.AddVertex("A", core.WithBalance(2))
//	g.AddVertex("D", core.WithBalance(-2))
//	eid, _ := g.AddEdge("A", "D", 2, 1) // capacity 2, cost 1
//	_ = g.SetFlow(eid, 2)
//
// Removing a vertex (RemoveVertex) tombstones its slot and every incident edge;
// no surviving index changes. Clone copies the arenas slot-for-slot, which is
// how solvers map an edge of their private working copy back to the caller's
// graph: the edge index is the identity.
//
// # Invariants
//
//   - 0 <= Flow <= Capacity on every edge (enforced by SetFlow/AddFlow/SetCapacity).
//   - Vertex IDs are unique and non-empty.
//   - A supply/demand instance is balanced iff TotalBalance() == 0.
//
// CheckCapacity, CheckConservation, and CheckBalances verify a finished flow.
//
// # Concurrency
//
// Every method takes the graph's RWMutex, so a Graph may be shared between
// goroutines. Solvers never mutate their input; they work on a Clone.
// Query methods return value snapshots, never pointers into the arena.
package core
