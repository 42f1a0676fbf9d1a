package grid

import "github.com/katalvlaran/gridkit/geom"

// BelongsFunc decides whether the cell at p may join area. It sees the
// area as built so far.
type BelongsFunc[T any] func(value T, p geom.Point, area *Area[T]) bool

// StartFunc decides whether an unvisited cell may seed a new area.
type StartFunc[T any] func(value T, p geom.Point, g *Grid[T]) bool

// SameValue returns a BelongsFunc that admits cells equal to the area's
// first value.
func SameValue[T comparable]() BelongsFunc[T] {
	return func(value T, _ geom.Point, area *Area[T]) bool {
		return value == area.FirstValue()
	}
}

// Area is an insertion-ordered set of points on a grid.
type Area[T any] struct {
	grid      *Grid[T]
	points    []geom.Point
	index     map[geom.Point]struct{}
	perimeter *Perimeter
}

// NewArea returns an area on g holding the given points, duplicates dropped.
func NewArea[T any](g *Grid[T], points ...geom.Point) *Area[T] {
	a := &Area[T]{grid: g, index: make(map[geom.Point]struct{}, len(points))}
	for _, p := range points {
		a.AddPoint(p)
	}

	return a
}

// AddPoint adds p unless present and reports whether it was new.
func (a *Area[T]) AddPoint(p geom.Point) bool {
	if _, ok := a.index[p]; ok {
		return false
	}
	a.index[p] = struct{}{}
	a.points = append(a.points, p)
	a.perimeter = nil

	return true
}

// Has reports whether p belongs to the area.
func (a *Area[T]) Has(p geom.Point) bool {
	_, ok := a.index[p]
	return ok
}

// Size returns the number of points.
func (a *Area[T]) Size() int { return len(a.points) }

// Points returns a copy of the points in insertion order.
func (a *Area[T]) Points() []geom.Point { return append([]geom.Point(nil), a.points...) }

// Grid returns the grid the area lives on.
func (a *Area[T]) Grid() *Grid[T] { return a.grid }

// FirstPoint returns the first point added, false for an empty area.
func (a *Area[T]) FirstPoint() (geom.Point, bool) {
	if len(a.points) == 0 {
		return geom.Point{}, false
	}

	return a.points[0], true
}

// FirstValue returns the grid value at FirstPoint, or the zero value.
func (a *Area[T]) FirstValue() T {
	p, ok := a.FirstPoint()
	if !ok || !a.grid.HasPoint(p) {
		var zero T
		return zero
	}

	return a.grid.at(p)
}

// IsBorderArea reports whether any point lies on the grid's border.
func (a *Area[T]) IsBorderArea() bool {
	for _, p := range a.points {
		if a.grid.IsBorderPoint(p) {
			return true
		}
	}

	return false
}

// Perimeter returns the directed border edges of the area: one edge for
// every (point, straight direction) whose neighbour is outside the area.
// The result is cached until the next AddPoint.
func (a *Area[T]) Perimeter() *Perimeter {
	if a.perimeter != nil {
		return a.perimeter
	}

	per := NewPerimeter()
	for _, p := range a.points {
		for _, d := range geom.Straight() {
			if !a.Has(p.Step(d)) {
				per.add(p.To(d))
			}
		}
	}
	a.perimeter = per

	return per
}

// Areas starts a lazy flood fill over g. canStart may be nil.
func (g *Grid[T]) Areas(belongs BelongsFunc[T], canStart StartFunc[T]) *AreaIterator[T] {
	return &AreaIterator[T]{
		g:        g,
		belongs:  belongs,
		canStart: canStart,
		visited:  Fill(len(g.cells), g.columns, func(int, int) bool { return false }),
	}
}

// AreaIterator yields areas in row-major order of their seed points.
// It is single pass.
type AreaIterator[T any] struct {
	g        *Grid[T]
	belongs  BelongsFunc[T]
	canStart StartFunc[T]
	visited  *Grid[bool]
	next     int // row-major index of the next seed candidate
	stack    []geom.Point
}

// Next returns the next area, or false when the grid is exhausted.
func (it *AreaIterator[T]) Next() (*Area[T], bool) {
	cols := it.g.columns
	for ; it.next < it.g.Len(); it.next++ {
		p := geom.Pt(it.next%cols, it.next/cols)
		if it.visited.at(p) {
			continue
		}
		if it.canStart != nil && !it.canStart(it.g.at(p), p, it.g) {
			continue
		}
		it.next++

		return it.fill(p), true
	}

	return nil, false
}

// Collect drains the iterator.
func (it *AreaIterator[T]) Collect() []*Area[T] {
	var out []*Area[T]
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		out = append(out, a)
	}

	return out
}

func (it *AreaIterator[T]) fill(seed geom.Point) *Area[T] {
	area := NewArea(it.g, seed)
	it.visited.cells[seed.Y][seed.X] = true
	it.stack = append(it.stack[:0], seed)

	for len(it.stack) > 0 {
		q := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		for _, d := range geom.Straight() {
			n := q.Step(d)
			if !it.g.HasPoint(n) || it.visited.at(n) {
				continue
			}
			if !it.belongs(it.g.at(n), n, area) {
				continue
			}
			area.AddPoint(n)
			it.visited.cells[n.Y][n.X] = true
			it.stack = append(it.stack, n)
		}
	}

	return area
}
