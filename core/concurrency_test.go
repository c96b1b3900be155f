// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every edge lands in the source's out-list.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make([]error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, errs[id] = g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id), 1)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	out, err := g.OutEdges("X")
	require.NoError(t, err)
	require.Len(t, out, num)
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentCloneAndFlow mixes flow updates on a shared graph with
// concurrent clones; every clone must observe a capacity-feasible state.
func TestConcurrentCloneAndFlow(t *testing.T) {
	g := core.NewGraph()
	const edges = 50
	for i := 0; i < edges; i++ {
		_, err := g.AddEdge("S", fmt.Sprintf("V%d", i), 10, int64(i))
		require.NoError(t, err)
	}

	const cloners = 20
	var wg sync.WaitGroup
	wg.Add(edges + cloners)
	for i := 0; i < edges; i++ {
		go func(eid int) {
			defer wg.Done()
			_ = g.AddFlow(eid, 5)
		}(i)
	}
	clones := make([]*core.Graph, cloners)
	for i := 0; i < cloners; i++ {
		go func(i int) {
			defer wg.Done()
			clones[i] = g.Clone()
		}(i)
	}
	wg.Wait()

	for _, c := range clones {
		require.NoError(t, c.CheckCapacity())
		require.Equal(t, edges, c.EdgeCount())
	}
	require.Equal(t, int64(5*edges), g.Stats().TotalFlow)
}
