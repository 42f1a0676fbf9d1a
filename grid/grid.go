package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
)

// Grid is a dense rectangular table of T addressed by geom.Point,
// where X is the column and Y the row. The zero value is not usable;
// build grids with New, Read, ReadFunc, Fill or FromPoints.
type Grid[T any] struct {
	cells   [][]T
	columns int        // fixed by the first row
	offset  geom.Point // origin of this grid inside the grid it was extracted from
}

// Plotter renders one cell for Plot and friends. A nil Plotter falls back to
// DefaultPlotter.
type Plotter[T any] func(value T, p geom.Point) string

// New builds a grid from the given rows. Every row is copied.
// The first row fixes the column count; a later row of another width
// yields ErrRowWidth.
func New[T any](rows ...[]T) (*Grid[T], error) {
	g := &Grid[T]{}
	for _, r := range rows {
		if err := g.AddRow(r...); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Read parses text into a rune grid: one row per "\n"-separated line,
// one cell per rune.
func Read(text string) (*Grid[rune], error) {
	return ReadFunc(text, func(r rune, _ geom.Point) rune { return r })
}

// ReadFunc parses text like Read and converts every rune with conv.
func ReadFunc[T any](text string, conv func(r rune, p geom.Point) T) (*Grid[T], error) {
	g := &Grid[T]{}
	for y, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		row := make([]T, len(runes))
		for x, r := range runes {
			row[x] = conv(r, geom.Pt(x, y))
		}
		if err := g.AddRow(row...); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Fill builds a rows×cols grid whose cells are produced by value.
func Fill[T any](rows, cols int, value func(row, col int) T) *Grid[T] {
	g := &Grid[T]{columns: cols, cells: make([][]T, rows)}
	for y := range g.cells {
		g.cells[y] = make([]T, cols)
		for x := range g.cells[y] {
			g.cells[y][x] = value(y, x)
		}
	}

	return g
}

// FromPoints builds the smallest grid covering points.
// Cells start as initial(row, col); each point is then written with
// value(point, index). With allowOffset the grid origin moves to the
// minimal coordinates; without it the origin is (0,0) and negative
// coordinates yield ErrNegativePoint.
func FromPoints[T any](
	allowOffset bool,
	initial func(row, col int) T,
	value func(p geom.Point, i int) T,
	points ...geom.Point,
) (*Grid[T], error) {
	if len(points) == 0 {
		return nil, ErrEmptyPoints
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	if !allowOffset {
		if minX < 0 || minY < 0 {
			return nil, fmt.Errorf("%w: min (%d,%d)", ErrNegativePoint, minX, minY)
		}
		minX, minY = 0, 0
	}

	g := Fill(maxY-minY+1, maxX-minX+1, initial)
	for i, p := range points {
		g.cells[p.Y-minY][p.X-minX] = value(p, i)
	}

	return g, nil
}

// AddRow appends a copy of values as a new bottom row.
func (g *Grid[T]) AddRow(values ...T) error {
	if len(g.cells) == 0 {
		g.columns = len(values)
	} else if len(values) != g.columns {
		return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRowWidth, len(g.cells), len(values), g.columns)
	}
	g.cells = append(g.cells, append([]T(nil), values...))

	return nil
}

// NumRows returns the number of rows.
func (g *Grid[T]) NumRows() int { return len(g.cells) }

// NumColumns returns the number of columns.
func (g *Grid[T]) NumColumns() int { return g.columns }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) * g.columns }

// Has reports whether (row, col) lies on the grid.
func (g *Grid[T]) Has(row, col int) bool {
	return row >= 0 && row < len(g.cells) && col >= 0 && col < g.columns
}

// HasPoint reports whether p lies on the grid.
func (g *Grid[T]) HasPoint(p geom.Point) bool { return g.Has(p.Y, p.X) }

// GetCoordinate returns the value at (row, col).
func (g *Grid[T]) GetCoordinate(row, col int) (T, error) {
	if !g.Has(row, col) {
		var zero T
		return zero, fmt.Errorf("%w: row %d col %d on %dx%d", ErrOutOfRange, row, col, len(g.cells), g.columns)
	}

	return g.cells[row][col], nil
}

// SetCoordinate stores v at (row, col).
func (g *Grid[T]) SetCoordinate(row, col int, v T) error {
	if !g.Has(row, col) {
		return fmt.Errorf("%w: row %d col %d on %dx%d", ErrOutOfRange, row, col, len(g.cells), g.columns)
	}
	g.cells[row][col] = v

	return nil
}

// Get returns the value at p.
func (g *Grid[T]) Get(p geom.Point) (T, error) { return g.GetCoordinate(p.Y, p.X) }

// Set stores v at p.
func (g *Grid[T]) Set(p geom.Point, v T) error { return g.SetCoordinate(p.Y, p.X, v) }

// MustGet is Get that panics when p is off the grid.
func (g *Grid[T]) MustGet(p geom.Point) T {
	v, err := g.Get(p)
	if err != nil {
		panic(err)
	}

	return v
}

// at is the unchecked accessor used by internal loops.
func (g *Grid[T]) at(p geom.Point) T { return g.cells[p.Y][p.X] }

// CornerPoint returns the grid corner in diagonal direction d,
// e.g. NorthEast is (cols-1, 0).
func (g *Grid[T]) CornerPoint(d geom.Direction) (geom.Point, error) {
	if !d.IsDiagonal() {
		return geom.Point{}, fmt.Errorf("%w: %s", ErrNotDiagonal, d)
	}
	x, y := 0, 0
	if d.XStep() > 0 {
		x = g.columns - 1
	}
	if d.YStep() > 0 {
		y = len(g.cells) - 1
	}

	return geom.Pt(x, y), nil
}

// IsBorderPoint reports whether p lies on the outermost ring of the grid.
func (g *Grid[T]) IsBorderPoint(p geom.Point) bool {
	if !g.HasPoint(p) {
		return false
	}

	return p.X == 0 || p.Y == 0 || p.X == g.columns-1 || p.Y == len(g.cells)-1
}

// SetFromGrid copies every cell of other into g, shifted by offset.
// Cells landing off g yield ErrOutOfRange; cells before the failing one
// are already written.
func (g *Grid[T]) SetFromGrid(other *Grid[T], offset geom.Point) error {
	for y, row := range other.cells {
		for x, v := range row {
			if err := g.Set(geom.Pt(x, y).Offset(offset), v); err != nil {
				return err
			}
		}
	}

	return nil
}

// DrawPath writes value(row, col) on every cell from one point to another,
// both inclusive. The points must share a row or a column.
func (g *Grid[T]) DrawPath(from, to geom.Point, value func(row, col int) T) error {
	if from.X != to.X && from.Y != to.Y {
		return fmt.Errorf("%w: %s to %s", ErrDiagonalPath, from, to)
	}
	if !g.HasPoint(from) || !g.HasPoint(to) {
		return fmt.Errorf("%w: path %s to %s", ErrOutOfRange, from, to)
	}
	for y := min(from.Y, to.Y); y <= max(from.Y, to.Y); y++ {
		for x := min(from.X, to.X); x <= max(from.X, to.X); x++ {
			g.cells[y][x] = value(y, x)
		}
	}

	return nil
}

// ExtractSection returns a copy of the rectangle between (rowStart, colStart)
// and (rowEnd, colEnd), both inclusive. The section remembers where it came
// from: SectionOffset accumulates across nested extractions.
func (g *Grid[T]) ExtractSection(rowStart, colStart, rowEnd, colEnd int) (*Grid[T], error) {
	if !g.Has(rowStart, colStart) || !g.Has(rowEnd, colEnd) {
		return nil, fmt.Errorf("%w: section (%d,%d)-(%d,%d)", ErrOutOfRange, rowStart, colStart, rowEnd, colEnd)
	}
	if rowEnd < rowStart || colEnd < colStart {
		return nil, fmt.Errorf("%w: section (%d,%d)-(%d,%d)", ErrInvertedSection, rowStart, colStart, rowEnd, colEnd)
	}

	s := Fill(rowEnd-rowStart+1, colEnd-colStart+1, func(row, col int) T {
		return g.cells[rowStart+row][colStart+col]
	})
	s.offset = g.offset.MoveXY(colStart, rowStart)

	return s, nil
}

// SectionOffset is the position of this grid's origin in the grid it was
// originally extracted from; (0,0) for grids that were not extracted.
func (g *Grid[T]) SectionOffset() geom.Point { return g.offset }

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	c := Fill(len(g.cells), g.columns, func(row, col int) T { return g.cells[row][col] })
	c.offset = g.offset

	return c
}

// BorderEntrance is a border cell paired with the direction that leads
// from it into the grid.
type BorderEntrance struct {
	Point     geom.Point
	Direction geom.Direction
}

// BorderEntrances lists the top row facing south, the right column facing
// west, the bottom row facing north and the left column facing east.
// Corner cells appear once per side they belong to.
func (g *Grid[T]) BorderEntrances() []BorderEntrance {
	rows, cols := len(g.cells), g.columns
	if rows == 0 || cols == 0 {
		return nil
	}

	out := make([]BorderEntrance, 0, 2*(rows+cols))
	for x := 0; x < cols; x++ {
		out = append(out, BorderEntrance{geom.Pt(x, 0), geom.South})
	}
	for y := 0; y < rows; y++ {
		out = append(out, BorderEntrance{geom.Pt(cols-1, y), geom.West})
	}
	for x := 0; x < cols; x++ {
		out = append(out, BorderEntrance{geom.Pt(x, rows-1), geom.North})
	}
	for y := 0; y < rows; y++ {
		out = append(out, BorderEntrance{geom.Pt(0, y), geom.East})
	}

	return out
}
