// Package metrics declares the Prometheus collectors updated by the solvers.
// Collectors are not registered by this package; programs register them with
// prometheus.MustRegister(metrics.SolverCollectors()...).
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome label values of SolvesTotal.
const (
	Ok         = "ok"
	Fail       = "fail"
	Unbalanced = "unbalanced"
	Infeasible = "infeasible"
	Canceled   = "canceled"
)

// Collectors for flow and min-cost flow solves.
var (
	SolvesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mcflow_solves_total",
		Help: "Cumulative number of min-cost flow solves, by max-flow algorithm and outcome.",
	}, []string{"algorithm", "outcome"})
	SolveDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mcflow_solve_duration_seconds",
		Help:    "Duration of min-cost flow solves.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})
	CyclesCanceledTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mcflow_cycles_canceled_total",
		Help: "Cumulative number of negative cycles canceled.",
	})
	AugmentationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mcflow_augmentations_total",
		Help: "Cumulative number of augmenting paths pushed, by max-flow algorithm.",
	}, []string{"algorithm"})
)

// SolverCollectors returns the collectors of this package.
func SolverCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		SolvesTotal,
		SolveDurationSeconds,
		CyclesCanceledTotal,
		AugmentationsTotal,
	}
}
