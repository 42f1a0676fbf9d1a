// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a copy of the Graph: vertices, edges and adjacency.
// Edge structs are duplicated; Vertex.Metadata maps are shared.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}
	for from, out := range g.adjacency {
		bucket := make(map[string]*Edge, len(out))
		for to, e := range out {
			ne := *e
			bucket[to] = &ne
		}
		clone.adjacency[from] = bucket
	}
	clone.edgeCount = g.edgeCount

	return clone
}
