// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// Edge costs are ignored: every edge counts as one hop. Edges are followed
// in their direction only.
//
// Determinism
//
//	core.Graph.Edges returns out-edges sorted by target ID and BFS enqueues
//	neighbours in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) where d is the largest out-degree (edge sort)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn): skip edges for which fn(curr, nbr) is false.
//   - WithOnEnqueue(fn):      hook when a vertex is enqueued.
//   - WithOnVisit(fn):        hook during visit; returning an error aborts.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ErrNoPath               from Result.PathTo for unreached vertices.
package bfs
