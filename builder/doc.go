// SPDX-License-Identifier: MIT
// Package builder generates flow networks for tests, benchmarks, and the
// mcflow generate command.
//
// A network is assembled by BuildNetwork from Constructors applied in order:
//
//	g, err := builder.BuildNetwork(nil,
//		[]builder.BuilderOption{
//			builder.WithSeed(7),
//			builder.WithCapacityFn(builder.UniformFn(1, 10)),
//			builder.WithCostFn(builder.UniformFn(0, 9)),
//		},
//		builder.Grid(4, 4),
//		builder.SupplyDemand("0,0", "3,3", 5),
//	)
//
// Topologies: Path, Cycle, Grid, CompleteBipartite, RandomSparse.
// Balances: SupplyDemand, Transportation.
//
// Determinism: the same constructors, options, and seed always produce the
// same vertices, edges, capacities, and costs in the same index order.
// Stochastic constructors require WithSeed or WithRand.
package builder
