package flow

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/metrics"
	"github.com/katalvlaran/mcflow/residual"
)

// Run computes a maximum flow with the selected algorithm.
func Run(
	ctx context.Context,
	alg Algorithm,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (int64, *core.Graph, error) {
	switch alg {
	case EdmondsKarpAlgorithm:
		return EdmondsKarp(ctx, g, source, sink, opts)
	case FordFulkersonAlgorithm:
		return FordFulkerson(ctx, g, source, sink, opts)
	case DinicAlgorithm:
		return Dinic(ctx, g, source, sink, opts)
	default:
		return 0, nil, ErrUnknownAlgorithm
	}
}

// prepare validates the terminals and returns a zero-flow working clone of g
// together with the source and sink slots.
//
// Steps:
//  1. Reject a nil graph, missing terminals, or source == sink.
//  2. Clone g (the caller's graph is never touched) and reset every flow.
func prepare(g *core.Graph, source, sink string) (work *core.Graph, s, t int, err error) {
	if g == nil {
		return nil, -1, -1, ErrNilGraph
	}
	var ok bool
	if s, ok = g.Index(source); !ok {
		return nil, -1, -1, ErrSourceNotFound
	}
	if t, ok = g.Index(sink); !ok {
		return nil, -1, -1, ErrSinkNotFound
	}
	if s == t {
		return nil, -1, -1, ErrSameSourceSink
	}
	work = g.Clone()
	work.ResetFlows()

	return work, s, t, nil
}

// push augments work along path and reports the augmentation to the
// logger, the metrics, and the OnAugment hook.
func push(work *core.Graph, path []residual.Arc, alg Algorithm, o FlowOptions) (int64, error) {
	amount, err := residual.Augment(work, path)
	if err != nil {
		return 0, err
	}
	report(path, amount, alg, o)

	return amount, nil
}

func report(path []residual.Arc, amount int64, alg Algorithm, o FlowOptions) {
	metrics.AugmentationsTotal.WithLabelValues(alg.String()).Inc()
	o.Logger.WithFields(logrus.Fields{
		"algorithm": alg.String(),
		"arcs":      len(path),
		"amount":    amount,
	}).Debug("augmented flow")
	if o.OnAugment != nil {
		o.OnAugment(path, amount)
	}
}

// tracePath walks predecessor arcs back from t to s and returns the path in
// forward order. predArc[v] is the index into r.Arcs of the arc that reached v.
func tracePath(r *residual.Graph, predArc []int, s, t int) []residual.Arc {
	var path []residual.Arc
	for v := t; v != s; {
		a := r.Arcs[predArc[v]]
		path = append(path, a)
		v = a.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func newPred(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = -1
	}

	return p
}
