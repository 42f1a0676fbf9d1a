// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeWithVertices/RemoveEdge/
//       HasEdge/Edge/Edges/AllEdges/EdgeCount.
// Determinism:
//   - Edges(from) is sorted by To; AllEdges() by (From, To).
// Concurrency:
//   - Mutations under muEdgeAdj write lock, queries under its read lock.
//   - Returned *Edge values are shared with the graph; treat them as read-only.

package core

import (
	"fmt"
	"sort"
)

// AddEdge stores e. Both endpoints must already exist.
//
// Steps:
//  1. Reject nil edge (ErrNilEdge).
//  2. Check both endpoints under muVert read lock (ErrVertexNotFound).
//  3. Under muEdgeAdj, reject an existing (From, To) pair (ErrDuplicateEdge).
//  4. Store and bump edgeCount.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for _, id := range [2]string{e.From, e.To} {
		if _, ok := g.vertices[id]; !ok {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	return g.insertEdge(e)
}

// AddEdgeWithVertices stores e, creating missing endpoints first.
func (g *Graph) AddEdgeWithVertices(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if e.From == "" || e.To == "" {
		return ErrEmptyVertexID
	}
	g.GetOrAddVertex(e.From)
	g.GetOrAddVertex(e.To)

	return g.insertEdge(e)
}

func (g *Graph) insertEdge(e *Edge) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	out := g.adjacency[e.From]
	if _, exists := out[e.To]; exists {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, e.From, e.To)
	}
	out[e.To] = e
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge from→to and returns it.
func (g *Graph) RemoveEdge(from, to string) (*Edge, error) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.adjacency[from][to]
	if !ok {
		return nil, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	delete(g.adjacency[from], to)
	g.edgeCount--

	return e, nil
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns the edge from→to.
func (g *Graph) Edge(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.adjacency[from][to]
	if !ok {
		return nil, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return e, nil
}

// Edges returns the outgoing edges of from, sorted by To.
func (g *Graph) Edges(from string) ([]*Edge, error) {
	g.muEdgeAdj.RLock()
	out, ok := g.adjacency[from]
	if !ok {
		g.muEdgeAdj.RUnlock()
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	edges := make([]*Edge, 0, len(out))
	for _, e := range out {
		edges = append(edges, e)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// AllEdges returns every edge sorted by (From, To).
func (g *Graph) AllEdges() []*Edge {
	g.muEdgeAdj.RLock()
	edges := make([]*Edge, 0, g.edgeCount)
	for _, out := range g.adjacency {
		for _, e := range out {
			edges = append(edges, e)
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}
