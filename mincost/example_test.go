package mincost_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/mincost"
)

// ExampleCycleCanceling ships two units from A to D over the cheaper of two routes.
func ExampleCycleCanceling() {
	g := core.NewGraph()
	_, _ = g.AddVertex("A", core.WithBalance(2))
	_, _ = g.AddVertex("D", core.WithBalance(-2))
	_, _ = g.AddEdge("A", "C", 2, 5)
	_, _ = g.AddEdge("C", "D", 2, 5)
	_, _ = g.AddEdge("A", "B", 2, 1)
	_, _ = g.AddEdge("B", "D", 2, 1)

	res, err := mincost.CycleCanceling(context.Background(), g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("cost:", res.Cost, "canceled:", res.Canceled)
	for _, e := range res.Graph.Edges() {
		from, _ := res.Graph.VertexAt(e.From)
		to, _ := res.Graph.VertexAt(e.To)
		fmt.Printf("%s→%s %d/%d\n", from.ID, to.ID, e.Flow, e.Capacity)
	}
	// Output:
	// cost: 4 canceled: 1
	// A→C 0/2
	// C→D 0/2
	// A→B 2/2
	// B→D 2/2
}

// ExampleCycleCanceling_unbalanced shows the error for supplies that do not
// match the demands.
func ExampleCycleCanceling_unbalanced() {
	g := core.NewGraph()
	_, _ = g.AddVertex("S", core.WithBalance(3))
	_, _ = g.AddVertex("T", core.WithBalance(-2))

	_, err := mincost.CycleCanceling(context.Background(), g)
	fmt.Println(errors.Is(err, mincost.ErrUnbalancedInstance))
	fmt.Println(err)
	// Output:
	// true
	// mincost: balances do not sum to zero (sum 1)
}
