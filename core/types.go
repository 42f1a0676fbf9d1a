// SPDX-License-Identifier: MIT
package core

import (
	"sync"

	"github.com/katalvlaran/gridkit/errkind"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errkind.New(errkind.ErrConfiguration, "core: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called for an existing ID.
	ErrDuplicateVertex = errkind.New(errkind.ErrConfiguration, "core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errkind.New(errkind.ErrNotFound, "core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errkind.New(errkind.ErrNotFound, "core: edge not found")

	// ErrDuplicateEdge indicates a second edge for an ordered pair that already has one.
	ErrDuplicateEdge = errkind.New(errkind.ErrConfiguration, "core: edge already exists")

	// ErrNilEdge indicates a nil *Edge was passed.
	ErrNilEdge = errkind.New(errkind.ErrPrecondition, "core: edge is nil")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is a directed connection From→To with a traversal Cost.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Cost is the price of traversing the edge.
	Cost int64
}

// EdgeOption configures an Edge built by NewEdge.
type EdgeOption func(*Edge)

// WithCost sets the edge cost. Any value is accepted here; algorithms
// validate the costs they rely on.
func WithCost(c int64) EdgeOption {
	return func(e *Edge) { e.Cost = c }
}

// DefaultCost is the cost of an edge built without WithCost.
const DefaultCost int64 = 1

// NewEdge returns the edge from→to with DefaultCost unless overridden.
func NewEdge(from, to string, opts ...EdgeOption) *Edge {
	e := &Edge{From: from, To: to, Cost: DefaultCost}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Graph is the in-memory directed graph.
//
// muVert protects vertices; muEdgeAdj protects adjacency and edgeCount.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	vertices map[string]*Vertex

	// adjacency[from][to] = edge; at most one edge per ordered pair.
	adjacency map[string]map[string]*Edge
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]*Edge),
	}
}
