// Package negcycle finds a negative-cost cycle in a residual network using
// Bellman–Ford relaxation.
//
// # Method
//
// All distances start at zero, which is exactly the state after relaxing a
// virtual zero-cost source wired to every vertex. Cycles in components that no
// single root could reach are therefore found as well. After |V|−1 rounds
// (stopping early once a round relaxes nothing) one more round is run; a vertex
// relaxed in that round is reachable from a negative cycle. Walking its
// predecessor arcs |V| times lands on the cycle, which is then collected and
// returned in forward order.
//
// # Result
//
// Find returns (cycle, true) when a negative cycle exists and (Cycle{}, false)
// otherwise. "No negative cycle" is the normal outcome that ends cycle
// canceling, not an error.
//
// Arcs are relaxed in residual.Graph.Arcs order, so results are reproducible.
//
// Complexity:
//
//   - Time:   O(V · E)
//   - Memory: O(V)
package negcycle
