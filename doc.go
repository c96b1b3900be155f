// Package mcflow computes minimum-cost flows, maximum flows, and bipartite
// matchings on directed capacitated networks.
//
// The heart of the module is a cycle-canceling min-cost flow solver: it
// routes every supply to the demands with a maximum flow, then removes
// negative-cost cycles from the residual network until none is left.
//
// Packages, leaf first:
//
//	core/              flow network model: vertices with balances, edges with
//	                   capacity, flow and cost; stable indices, clone, checks
//	residual/          residual network of a flow graph, rebuilt on demand
//	negcycle/          Bellman–Ford negative-cycle detection
//	flow/              max-flow: Edmonds–Karp, Ford–Fulkerson, Dinic
//	mincost/           cycle-canceling min-cost flow, optimality check
//	matching/          maximum bipartite matching, min-cost assignment
//	netfile/           YAML network and solution files
//	builder/           deterministic generators of synthetic networks
//	metrics/           Prometheus collectors updated by the solvers
//	mainboilerplate/   logging, configuration, and flag parsing for programs
//	cmd/mcflow/        command-line tool and HTTP server
//	examples/          end-to-end scenarios and instance files
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddVertex("A", core.WithBalance(2))
//	g.AddVertex("D", core.WithBalance(-2))
//	g.AddEdge("A", "B", 2, 1) // capacity 2, cost 1
//	g.AddEdge("B", "D", 2, 1)
//	g.AddEdge("A", "D", 2, 5)
//
//	res, err := mincost.CycleCanceling(ctx, g)
//	// res.Cost == 4: both units travel A→B→D.
//
// Installing the command:
//
//	go install github.com/katalvlaran/mcflow/cmd/mcflow@latest
package mcflow
