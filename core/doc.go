// Package core provides the directed, cost-weighted graph that the grid
// builder produces and the shortest-path engine consumes.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are identified by non-empty string IDs and carry a Metadata map.
//   - Edges are directed From→To with an integer Cost (default 1).
//   - At most one edge exists per ordered pair (from, to); a second AddEdge
//     for the same pair is rejected with ErrDuplicateEdge.
//   - Self-loops are stored like any other edge; algorithms decide what to
//     do with them.
//
// Concurrency:
//
//	Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//	(muEdgeAdj). Lock order is always muVert -> muEdgeAdj.
//
// Determinism:
//
//	Vertices() is sorted by ID; Edges(from) is sorted by To; AllEdges() is
//	sorted by (From, To). Algorithms iterating these get reproducible output.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error              // O(1)
//	GetOrAddVertex(id string) *Vertex       // O(1)
//	HasVertex(id string) bool               // O(1)
//	Vertex(id string) (*Vertex, error)      // O(1)
//	Vertices() []string                     // O(V log V)
//
//	// Edge lifecycle
//	AddEdge(e *Edge) error                  // O(1)
//	AddEdgeWithVertices(e *Edge) error      // O(1)
//	RemoveEdge(from, to string) (*Edge, error) // O(1)
//	Edge(from, to string) (*Edge, error)    // O(1)
//	Edges(from string) ([]*Edge, error)     // O(d log d)
//	AllEdges() []*Edge                      // O(E log E)
//
//	// Utilities
//	Clone() *Graph                          // O(V + E)
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string (errkind.ErrConfiguration).
//	ErrDuplicateVertex - AddVertex on an existing ID (errkind.ErrConfiguration).
//	ErrVertexNotFound  - unknown vertex (errkind.ErrNotFound).
//	ErrEdgeNotFound    - unknown edge (errkind.ErrNotFound).
//	ErrDuplicateEdge   - second edge for the same ordered pair (errkind.ErrConfiguration).
//	ErrNilEdge         - nil edge pointer (errkind.ErrPrecondition).
package core
