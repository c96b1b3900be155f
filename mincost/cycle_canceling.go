package mincost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/metrics"
	"github.com/katalvlaran/mcflow/negcycle"
	"github.com/katalvlaran/mcflow/residual"
)

// Base IDs of the transient terminals. A numeric suffix is appended when the
// input already uses one.
const (
	SupersourceID = "__mcflow_supersource"
	SupersinkID   = "__mcflow_supersink"
)

// Result is a solved min-cost flow.
type Result struct {
	// Graph is a clone of the input carrying the optimal flow.
	Graph *core.Graph
	// Cost is Σ flow·cost over Graph's edges.
	Cost int64
	// Flow is the total supply shipped.
	Flow int64
	// Canceled counts the negative cycles canceled.
	Canceled int
}

// CycleCanceling computes a minimum-cost flow satisfying every balance of g.
//
// Errors:
//   - ErrNilGraph.
//   - *UnbalancedInstanceError if the balances do not sum to zero.
//   - *InfeasibleFlowError if the capacities cannot carry the supplies.
//   - ctx.Err() if ctx ends first; it is checked once per canceled cycle.
//
// No partial result is returned with an error.
func CycleCanceling(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	start := time.Now()

	res, err := solve(ctx, g, o)

	metrics.SolvesTotal.WithLabelValues(o.algorithm.String(), outcome(err)).Inc()
	metrics.SolveDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		o.logger.WithFields(logrus.Fields{
			"algorithm": o.algorithm.String(),
			"err":       err,
		}).Debug("min-cost flow failed")

		return nil, err
	}
	o.logger.WithFields(logrus.Fields{
		"algorithm": o.algorithm.String(),
		"flow":      res.Flow,
		"cost":      res.Cost,
		"canceled":  res.Canceled,
		"elapsed":   time.Since(start),
	}).Info("min-cost flow solved")

	return res, nil
}

func solve(ctx context.Context, g *core.Graph, o options) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if sum := g.TotalBalance(); sum != 0 {
		return nil, &UnbalancedInstanceError{Sum: sum}
	}

	work, ss, st, err := withTerminals(g)
	if err != nil {
		return nil, err
	}
	required := g.PositiveBalance()
	achieved, work, err := flow.Run(ctx, o.algorithm, work, ss, st, &flow.FlowOptions{Logger: o.logger})
	if err != nil {
		return nil, err
	}
	if achieved < required {
		return nil, &InfeasibleFlowError{Required: required, Achieved: achieved}
	}

	canceled, err := cancelCycles(ctx, work, o)
	if err != nil {
		return nil, err
	}

	// The terminals stay in place until no negative cycle is left.
	if err = work.RemoveVertex(st); err != nil {
		return nil, err
	}
	if err = work.RemoveVertex(ss); err != nil {
		return nil, err
	}

	return &Result{
		Graph:    work,
		Cost:     work.TotalCost(),
		Flow:     required,
		Canceled: canceled,
	}, nil
}

// withTerminals clones g and connects a supersource to every supply vertex
// and every demand vertex to a supersink, with capacity |balance| and cost 0.
func withTerminals(g *core.Graph) (work *core.Graph, ss, st string, err error) {
	work = g.Clone()
	vertices := work.Vertices()

	ss, st = uniqueID(work, SupersourceID), uniqueID(work, SupersinkID)
	if _, err = work.AddVertex(ss); err != nil {
		return nil, "", "", err
	}
	if _, err = work.AddVertex(st); err != nil {
		return nil, "", "", err
	}
	for _, v := range vertices {
		switch {
		case v.Balance > 0:
			_, err = work.AddEdge(ss, v.ID, v.Balance, 0)
		case v.Balance < 0:
			_, err = work.AddEdge(v.ID, st, -v.Balance, 0)
		}
		if err != nil {
			return nil, "", "", err
		}
	}

	return work, ss, st, nil
}

func uniqueID(g *core.Graph, base string) string {
	id := base
	for i := 1; g.HasVertex(id); i++ {
		id = fmt.Sprintf("%s_%d", base, i)
	}

	return id
}

// cancelCycles pushes flow around negative residual cycles of work until none
// is left, and returns how many it canceled.
func cancelCycles(ctx context.Context, work *core.Graph, o options) (int, error) {
	canceled := 0
	for {
		if err := ctx.Err(); err != nil {
			return canceled, err
		}
		cycle, ok := negcycle.Find(residual.Build(work))
		if !ok {
			return canceled, nil
		}
		if o.onCancel != nil {
			o.onCancel(cycle)
		}
		amount := cycle.Bottleneck()
		for _, a := range cycle.Arcs {
			if err := residual.Apply(work, a, amount); err != nil {
				return canceled, err
			}
		}
		canceled++
		metrics.CyclesCanceledTotal.Inc()
		o.logger.WithFields(logrus.Fields{
			"arcs":   cycle.Len(),
			"cost":   cycle.Cost(),
			"amount": amount,
		}).Debug("canceled negative cycle")
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.Ok
	case errors.Is(err, ErrUnbalancedInstance):
		return metrics.Unbalanced
	case errors.Is(err, ErrInfeasibleFlow):
		return metrics.Infeasible
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.Canceled
	default:
		return metrics.Fail
	}
}
