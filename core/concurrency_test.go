// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcost/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every edge lands in the outgoing list with a unique ID.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)

	seen := make(map[string]bool, num)
	for _, e := range nbs {
		require.False(t, seen[e.ID], "duplicate edge ID %s", e.ID)
		seen[e.ID] = true
	}
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentReaders runs read-only queries in parallel on a built graph.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		_, err := g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for r := 0; r < 16; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range g.Vertices() {
				_, err := g.Neighbors(id)
				require.NoError(t, err)
			}
			require.Len(t, g.Adjacency(), 51)
		}()
	}
	wg.Wait()
}
