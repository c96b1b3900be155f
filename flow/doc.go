// Package flow implements augmenting-path maximum-flow algorithms on the
// capacitated networks of package core.
//
// The algorithms offered are:
//
//	Edmonds–Karp    BFS for shortest (fewest-arc) augmenting paths; O(V · E²).
//	                The default, and the one package mincost uses unless told otherwise.
//	Ford–Fulkerson  DFS for any augmenting path; O(E · F), F the max-flow value.
//	Dinic           level graph + blocking flow; O(V² · E), O(E · √V) on
//	                unit-capacity networks.
//
// # Residual networks
//
// Every round rebuilds the residual network from the working graph with
// residual.Build and pushes flow back onto the working graph with
// residual.Apply. The residual view is never patched, so it cannot drift from
// the flows it was derived from.
//
// # API
//
// All entry points share one signature:
//
//	func EdmondsKarp(
//	    ctx context.Context,
//	    g *core.Graph,
//	    source, sink string,
//	    opts *FlowOptions,
//	) (maxFlow int64, result *core.Graph, err error)
//
// The input graph is never mutated. result is a clone of g whose edge flows
// form a maximum source→sink flow: 0 <= flow <= capacity on every edge, and
// inflow equals outflow at every vertex other than source and sink. Flows
// already present on g are discarded; the search starts from zero flow.
// Run dispatches on an Algorithm value.
//
// # Errors
//
//	ErrNilGraph        - g is nil.
//	ErrSourceNotFound  - the source vertex is missing.
//	ErrSinkNotFound    - the sink vertex is missing.
//	ErrSameSourceSink  - source and sink are the same vertex.
//	ErrUnknownAlgorithm - Run/ParseAlgorithm given an unsupported algorithm.
//	context.Canceled / context.DeadlineExceeded - checked once per round.
package flow
