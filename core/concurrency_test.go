// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdgeWithVertices calls
// are safe and every edge lands.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, g.AddEdgeWithVertices(core.NewEdge("X", fmt.Sprintf("V%d", id))))
		}(i)
	}
	wg.Wait()

	out, err := g.Edges("X")
	require.NoError(t, err)
	require.Len(t, out, num)
	assert.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentAddRemoveAndClone mixes writers, removers and cloners.
func TestConcurrentAddRemoveAndClone(t *testing.T) {
	g := core.NewGraph()
	g.GetOrAddVertex("Base")

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdgeWithVertices(core.NewEdge("Base", fmt.Sprintf("V%d", id), core.WithCost(int64(id))))
		}(i)
		go func() {
			defer wg.Done()
			for _, e := range g.AllEdges() {
				_, _ = g.RemoveEdge(e.From, e.To)
			}
		}()
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	wg.Wait()
	assert.Equal(t, len(g.AllEdges()), g.EdgeCount())
}
