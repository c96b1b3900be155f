package mincost

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mcflow/negcycle"
)

var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("mincost: graph is nil")

	// ErrUnbalancedInstance matches *UnbalancedInstanceError.
	ErrUnbalancedInstance = errors.New("mincost: balances do not sum to zero")

	// ErrInfeasibleFlow matches *InfeasibleFlowError.
	ErrInfeasibleFlow = errors.New("mincost: supplies cannot be routed to demands")

	// ErrNotOptimal matches *NotOptimalError.
	ErrNotOptimal = errors.New("mincost: flow is not cost-optimal")
)

// UnbalancedInstanceError reports an instance whose balances sum to Sum != 0.
type UnbalancedInstanceError struct {
	Sum int64
}

func (e *UnbalancedInstanceError) Error() string {
	return fmt.Sprintf("%v (sum %d)", ErrUnbalancedInstance, e.Sum)
}

func (e *UnbalancedInstanceError) Is(target error) bool { return target == ErrUnbalancedInstance }

// InfeasibleFlowError reports that the network carries only Achieved of the
// Required units of supply.
type InfeasibleFlowError struct {
	Required int64
	Achieved int64
}

func (e *InfeasibleFlowError) Error() string {
	return fmt.Sprintf("%v (required %d, max flow %d)", ErrInfeasibleFlow, e.Required, e.Achieved)
}

func (e *InfeasibleFlowError) Is(target error) bool { return target == ErrInfeasibleFlow }

// NotOptimalError carries a negative-cost residual cycle proving that a flow
// can be made cheaper.
type NotOptimalError struct {
	Cycle negcycle.Cycle
}

func (e *NotOptimalError) Error() string {
	return fmt.Sprintf("%v (residual cycle of %d arcs, cost %d)", ErrNotOptimal, e.Cycle.Len(), e.Cycle.Cost())
}

func (e *NotOptimalError) Is(target error) bool { return target == ErrNotOptimal }
