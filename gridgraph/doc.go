// Package gridgraph turns a grid.Grid into a core.Graph and answers
// cell-level connection questions on it.
//
// What:
//
//   - Builder scans every cell and asks an EdgeFunc, once per on-grid
//     neighbour, whether to connect them and at what cost.
//   - Bridge finds the cheapest set of closed cells to open so that two
//     areas touch (0–1 BFS).
//
// Connectivity:
//
//   - Conn4: N, E, S, W.
//   - Conn8: N, NE, E, SE, S, SW, W, NW (WithDiagonals).
//
// Vertex IDs are the canonical point strings "x,y" (VertexID / PointOf),
// so results from dijkstra map straight back to grid coordinates.
//
// Complexity:
//
//   - Build:  O(W×H×d + E), Memory: O(W×H + E)   (d = 4 or 8).
//   - Bridge: O(W×H×d),     Memory: O(W×H).
//
// Errors:
//
//   - ErrBadVertexID: PointOf on an ID that is not a point (errkind.ErrConfiguration).
//   - ErrEmptyArea:   Bridge with an empty area (errkind.ErrPrecondition).
//   - ErrNoPath:      Bridge could not connect the areas (errkind.ErrNotFound).
//   - core.ErrDuplicateEdge and friends propagate from Build.
package gridgraph
