package grid

import "github.com/katalvlaran/gridkit/geom"

// Perimeter is an insertion-ordered set of directed border edges.
// An edge (p, d) is the boundary on side d of cell p.
type Perimeter struct {
	edges []geom.DirectedPoint
	index map[geom.DirectedPoint]struct{}
	sides []Side
}

// NewPerimeter returns a perimeter holding edges, duplicates dropped.
func NewPerimeter(edges ...geom.DirectedPoint) *Perimeter {
	per := &Perimeter{index: make(map[geom.DirectedPoint]struct{}, len(edges))}
	for _, e := range edges {
		per.add(e)
	}

	return per
}

func (per *Perimeter) add(e geom.DirectedPoint) {
	if _, ok := per.index[e]; ok {
		return
	}
	per.index[e] = struct{}{}
	per.edges = append(per.edges, e)
	per.sides = nil
}

// Len returns the number of edges.
func (per *Perimeter) Len() int { return len(per.edges) }

// Edges returns a copy of the edges in insertion order.
func (per *Perimeter) Edges() []geom.DirectedPoint {
	return append([]geom.DirectedPoint(nil), per.edges...)
}

// Has reports whether e is one of the edges.
func (per *Perimeter) Has(e geom.DirectedPoint) bool {
	_, ok := per.index[e]
	return ok
}

// Sides groups the edges into maximal straight runs. Every edge belongs
// to exactly one side. Sides appear in the order of their first edge.
func (per *Perimeter) Sides() []Side {
	if per.sides != nil || len(per.edges) == 0 {
		return per.sides
	}

	seen := make(map[geom.DirectedPoint]struct{}, len(per.edges))
	sides := make([]Side, 0)
	for _, seed := range per.edges {
		if _, ok := seen[seed]; ok {
			continue
		}
		seen[seed] = struct{}{}

		var left []geom.DirectedPoint
		for e := seed.Shift(seed.Direction.TurnLeft()); per.Has(e); e = e.Shift(seed.Direction.TurnLeft()) {
			left = append(left, e)
			seen[e] = struct{}{}
		}
		run := make([]geom.DirectedPoint, 0, len(left)+1)
		for i := len(left) - 1; i >= 0; i-- {
			run = append(run, left[i])
		}
		run = append(run, seed)
		for e := seed.Shift(seed.Direction.TurnRight()); per.Has(e); e = e.Shift(seed.Direction.TurnRight()) {
			run = append(run, e)
			seen[e] = struct{}{}
		}
		sides = append(sides, Side{edges: run})
	}
	per.sides = sides

	return sides
}

// Side is a run of edges facing the same way on consecutive cells,
// ordered from the turn-left end to the turn-right end.
type Side struct {
	edges []geom.DirectedPoint
}

// Direction is the outward direction shared by all edges.
func (s Side) Direction() geom.Direction { return s.edges[0].Direction }

// Len returns the number of edges.
func (s Side) Len() int { return len(s.edges) }

// Edges returns a copy of the edges, left end first.
func (s Side) Edges() []geom.DirectedPoint { return append([]geom.DirectedPoint(nil), s.edges...) }
