package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// Bridge finds a minimum-conversion path of closed cells (open(value) is
// false) that connects any point of from to any point of to. Entering an
// open cell costs 0, entering a closed cell costs 1. It returns the path,
// starting in from and ending in to, and the number of closed cells on it.
//
// Behavior:
//  1. Multi-source 0–1 BFS from all points of from.
//  2. Stop when any point of to is popped.
//  3. Reconstruct the path via predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H).
func Bridge[T any](
	g *grid.Grid[T],
	from, to *grid.Area[T],
	open func(T) bool,
	conn Connectivity,
) (path []geom.Point, cost int, err error) {
	if from.Size() == 0 || to.Size() == 0 {
		return nil, 0, ErrEmptyArea
	}

	const inf = int(^uint(0) >> 1)
	cols := g.NumColumns()
	index := func(p geom.Point) int { return p.Y*cols + p.X }
	dist := make([]int, g.Len())
	prev := make([]int, g.Len())
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, p := range from.Points() {
		if !g.HasPoint(p) {
			continue
		}
		dist[index(p)] = 0
		dq.PushBack(p)
	}

	dirs := conn.Directions()
	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(geom.Point)
		if to.Has(u) {
			target = index(u)
			break
		}
		ui := index(u)
		for _, d := range dirs {
			v := u.Step(d)
			if !g.HasPoint(v) {
				continue
			}
			step := 0
			if !open(g.MustGet(v)) {
				step = 1
			}
			vi := index(v)
			if nd := dist[ui] + step; nd < dist[vi] {
				dist[vi] = nd
				prev[vi] = ui
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, geom.Pt(at%cols, at/cols))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
