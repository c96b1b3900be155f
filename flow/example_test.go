package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/flow"
)

// ExampleEdmondsKarp shows max-flow on a two-path network.
// Graph:
//
//	s→a(3)→t(2)
//	s→b(2)→t(3)
//
// Expected flow: 2 + 2 = 4
func ExampleEdmondsKarp() {
	g := core.NewGraph()
	_, _ = g.AddEdge("s", "a", 3, 0)
	_, _ = g.AddEdge("a", "t", 2, 0)
	_, _ = g.AddEdge("s", "b", 2, 0)
	_, _ = g.AddEdge("b", "t", 3, 0)

	maxFlow, result, _ := flow.EdmondsKarp(context.Background(), g, "s", "t", nil)
	fmt.Println(maxFlow)
	for _, e := range result.Edges() {
		fmt.Printf("edge %d: %d/%d\n", e.Index, e.Flow, e.Capacity)
	}
	// Output:
	// 4
	// edge 0: 2/3
	// edge 1: 2/2
	// edge 2: 2/2
	// edge 3: 2/3
}

// ExampleDinic demonstrates Dinic on a network with two augmenting paths.
func ExampleDinic() {
	g := core.NewGraph()
	_, _ = g.AddEdge("s", "a", 5, 0)
	_, _ = g.AddEdge("a", "t", 4, 0)
	_, _ = g.AddEdge("s", "b", 3, 0)
	_, _ = g.AddEdge("b", "t", 6, 0)

	maxFlow, _, _ := flow.Dinic(context.Background(), g, "s", "t", nil)
	fmt.Println(maxFlow)
	// Output:
	// 7
}
