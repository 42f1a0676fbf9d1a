// Package gridkit is a toolkit for puzzles and simulations that live on
// rectangular grids: flood-filled regions, their perimeters and sides, and
// cheapest walks through grid-shaped graphs.
//
// 🚀 What is inside?
//
//	• geom/         Point, Direction, DirectedPoint: 2D/3D coordinates and facings
//	• grid/         generic Grid[T], row/column views, areas, perimeters, sides, plots
//	• core/         thread-safe directed Graph with int64 edge costs
//	• wqueue/       min-priority queue with updatable priorities
//	• dijkstra/     multi-source shortest paths with tie tracking and path counts
//	• gridgraph/    Grid → Graph adapter and 0–1 BFS island bridging
//	• errkind/      shared error categories for errors.Is
//	• config/, observability/   Viper configuration and zap logging for the CLI
//	• bfs/          hop-count breadth-first search over a Graph
//	• cmd/gridkit   command-line front end: regions, path, outline
//
// ✨ Quick example:
//
//	g, _ := grid.Read("AAAA\nBBCD\nBBCC\nEEEC")
//	for _, a := range g.Areas(grid.SameValue[rune](), nil).Collect() {
//		fmt.Println(string(a.FirstValue()), a.Size(), a.Perimeter().Len(), len(a.Perimeter().Sides()))
//	}
//
// Every enumeration is deterministic: grids iterate row-major, graph
// vertices and edges come back sorted, and ties in the priority queue
// resolve first in, first out.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
