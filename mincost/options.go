package mincost

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/negcycle"
)

// Option configures CycleCanceling.
type Option func(*options)

type options struct {
	logger    logrus.FieldLogger
	algorithm flow.Algorithm
	onCancel  func(negcycle.Cycle)
}

// WithLogger sets the logger for solve summaries (Info) and canceled cycles
// (Debug). The default is logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxFlowAlgorithm selects the algorithm of the feasible-flow phase.
// The default is flow.EdmondsKarpAlgorithm.
func WithMaxFlowAlgorithm(alg flow.Algorithm) Option {
	return func(o *options) { o.algorithm = alg }
}

// WithOnCancel registers fn to observe each cycle before it is canceled.
func WithOnCancel(fn func(negcycle.Cycle)) Option {
	return func(o *options) { o.onCancel = fn }
}

func newOptions(opts []Option) options {
	o := options{
		logger:    logrus.StandardLogger(),
		algorithm: flow.EdmondsKarpAlgorithm,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
