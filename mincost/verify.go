package mincost

import (
	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/negcycle"
	"github.com/katalvlaran/mcflow/residual"
)

// Cost returns the total cost Σ flow·cost of g.
func Cost(g *core.Graph) int64 { return g.TotalCost() }

// Verify checks that the flows of g form a minimum-cost flow for its balances:
// every edge within capacity, every vertex's net outflow equal to its balance,
// and no negative-cost cycle in the residual network. It returns the first
// violation found, or nil.
func Verify(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := g.CheckCapacity(); err != nil {
		return err
	}
	if err := g.CheckBalances(); err != nil {
		return err
	}
	if cycle, ok := negcycle.Find(residual.Build(g)); ok {
		return &NotOptimalError{Cycle: cycle}
	}

	return nil
}
