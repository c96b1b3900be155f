package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestSolverCollectorsRegister(t *testing.T) {
	var reg = prometheus.NewRegistry()
	require.NoError(t, reg.Register(SolvesTotal))
	for _, c := range SolverCollectors()[1:] {
		require.NoError(t, reg.Register(c))
	}

	SolvesTotal.WithLabelValues("edmonds-karp", Ok).Inc()
	require.Equal(t, 1.0, testutil.ToFloat64(SolvesTotal.WithLabelValues("edmonds-karp", Ok)))
	require.Equal(t, 4, len(SolverCollectors()))
}
