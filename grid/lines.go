package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
)

// Cursor walks a fixed sequence of cells. Call Next before the first
// Point/Value; a fresh Cursor from the same view starts over.
type Cursor[T any] struct {
	g     *Grid[T]
	point func(i int) geom.Point
	n     int
	i     int
}

func newCursor[T any](g *Grid[T], n int, point func(i int) geom.Point) *Cursor[T] {
	return &Cursor[T]{g: g, point: point, n: n, i: -1}
}

// Next advances the cursor and reports whether a cell is available.
func (c *Cursor[T]) Next() bool {
	if c.i+1 >= c.n {
		c.i = c.n
		return false
	}
	c.i++

	return true
}

// Index is the position of the current cell in the sequence.
func (c *Cursor[T]) Index() int { return c.i }

// Point returns the current cell's coordinate.
func (c *Cursor[T]) Point() geom.Point { return c.point(c.i) }

// Value returns the current cell's value.
func (c *Cursor[T]) Value() T { return c.g.at(c.point(c.i)) }

// Points returns a row-major cursor over every cell of the grid.
func (g *Grid[T]) Points() *Cursor[T] {
	cols := g.columns
	return newCursor(g, g.Len(), func(i int) geom.Point { return geom.Pt(i%cols, i/cols) })
}

// Line is a read-only view of one row or one column.
type Line[T any] struct {
	g       *Grid[T]
	index   int
	column  bool
	reverse bool
}

// Len returns the number of cells in the line.
func (l Line[T]) Len() int {
	if l.column {
		return len(l.g.cells)
	}

	return l.g.columns
}

// Index is the row or column number the line views.
func (l Line[T]) Index() int { return l.index }

// Point returns the coordinate of the i-th cell in view order.
func (l Line[T]) Point(i int) geom.Point {
	if l.reverse {
		i = l.Len() - 1 - i
	}
	if l.column {
		return geom.Pt(l.index, i)
	}

	return geom.Pt(i, l.index)
}

// At returns the i-th value in view order.
func (l Line[T]) At(i int) (T, error) {
	if i < 0 || i >= l.Len() {
		var zero T
		return zero, fmt.Errorf("%w: line index %d of %d", ErrOutOfRange, i, l.Len())
	}

	return l.g.at(l.Point(i)), nil
}

// Values copies the line's values in view order.
func (l Line[T]) Values() []T {
	out := make([]T, l.Len())
	for i := range out {
		out[i] = l.g.at(l.Point(i))
	}

	return out
}

// Points lists the line's coordinates in view order.
func (l Line[T]) Points() []geom.Point {
	out := make([]geom.Point, l.Len())
	for i := range out {
		out[i] = l.Point(i)
	}

	return out
}

// Reverse returns the same line viewed from the other end.
func (l Line[T]) Reverse() Line[T] {
	l.reverse = !l.reverse
	return l
}

// Cursor returns a fresh cursor over the line in view order.
func (l Line[T]) Cursor() *Cursor[T] { return newCursor(l.g, l.Len(), l.Point) }

// String concatenates the plotted cells in view order.
func (l Line[T]) String(plot Plotter[T]) string {
	plot = orDefault(plot)
	var sb strings.Builder
	for i := 0; i < l.Len(); i++ {
		p := l.Point(i)
		sb.WriteString(plot(l.g.at(p), p))
	}

	return sb.String()
}

// Lines is a view of all rows or all columns of a grid.
type Lines[T any] struct {
	g       *Grid[T]
	column  bool
	reverse bool
}

// Len returns the number of lines.
func (ls Lines[T]) Len() int {
	if ls.column {
		return ls.g.columns
	}

	return len(ls.g.cells)
}

// At returns the i-th line in view order.
func (ls Lines[T]) At(i int) (Line[T], error) {
	if i < 0 || i >= ls.Len() {
		return Line[T]{}, fmt.Errorf("%w: line %d of %d", ErrOutOfRange, i, ls.Len())
	}
	if ls.reverse {
		i = ls.Len() - 1 - i
	}

	return Line[T]{g: ls.g, index: i, column: ls.column}, nil
}

// Reverse returns the lines in the opposite order. Each line keeps its own
// direction.
func (ls Lines[T]) Reverse() Lines[T] {
	ls.reverse = !ls.reverse
	return ls
}

// Cursor returns a fresh cursor over the lines.
func (ls Lines[T]) Cursor() *LinesCursor[T] { return &LinesCursor[T]{ls: ls, i: -1} }

// LinesCursor walks a Lines view.
type LinesCursor[T any] struct {
	ls Lines[T]
	i  int
}

// Next advances the cursor and reports whether a line is available.
func (c *LinesCursor[T]) Next() bool {
	if c.i+1 >= c.ls.Len() {
		c.i = c.ls.Len()
		return false
	}
	c.i++

	return true
}

// Line returns the current line.
func (c *LinesCursor[T]) Line() Line[T] {
	l, _ := c.ls.At(c.i)
	return l
}

// Rows returns a view of all rows, top to bottom.
func (g *Grid[T]) Rows() Lines[T] { return Lines[T]{g: g} }

// Columns returns a view of all columns, left to right.
func (g *Grid[T]) Columns() Lines[T] { return Lines[T]{g: g, column: true} }

// Row returns the view of row i.
func (g *Grid[T]) Row(i int) (Line[T], error) { return g.Rows().At(i) }

// Column returns the view of column i.
func (g *Grid[T]) Column(i int) (Line[T], error) { return g.Columns().At(i) }

// DefaultPlotter prints runes as characters, Stringers through String,
// and everything else through fmt.Sprint. Note that int32 is rune.
func DefaultPlotter[T any](value T, _ geom.Point) string {
	switch v := any(value).(type) {
	case rune:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func orDefault[T any](plot Plotter[T]) Plotter[T] {
	if plot == nil {
		return DefaultPlotter[T]
	}

	return plot
}

// Plot renders the grid row by row, joined with "\n".
// For rune grids Plot(nil) reproduces the text given to Read.
func (g *Grid[T]) Plot(plot Plotter[T]) string {
	rows := make([]string, len(g.cells))
	for y := range g.cells {
		rows[y] = Line[T]{g: g, index: y}.String(plot)
	}

	return strings.Join(rows, "\n")
}
