package grid

import "github.com/katalvlaran/gridkit/geom"

// line bits of a canvas cell: which neighbours the drawn line connects to.
const (
	lineUp uint8 = 1 << iota
	lineRight
	lineDown
	lineLeft
)

var lineBit = map[geom.Direction]uint8{
	geom.North: lineUp,
	geom.East:  lineRight,
	geom.South: lineDown,
	geom.West:  lineLeft,
}

var boxChar = map[uint8]string{
	lineUp:                                  "│",
	lineDown:                                "│",
	lineUp | lineDown:                       "│",
	lineLeft:                                "─",
	lineRight:                               "─",
	lineLeft | lineRight:                    "─",
	lineDown | lineRight:                    "┌",
	lineDown | lineLeft:                     "┐",
	lineUp | lineRight:                      "└",
	lineUp | lineLeft:                       "┘",
	lineUp | lineDown | lineRight:           "├",
	lineUp | lineDown | lineLeft:            "┤",
	lineLeft | lineRight | lineDown:         "┬",
	lineLeft | lineRight | lineUp:           "┴",
	lineUp | lineDown | lineLeft | lineRight: "┼",
}

// PlotPerimeter draws the outline of per over g on a canvas three times the
// grid's size. Each cell's value sits at the centre of its 3×3 block; the
// outline runs through the blocks' outer rings using box-drawing characters.
func PlotPerimeter[T any](g *Grid[T], per *Perimeter, plot Plotter[T]) string {
	plot = orDefault(plot)
	lines := Fill(3*g.NumRows(), 3*g.NumColumns(), func(int, int) uint8 { return 0 })
	mark := func(p geom.Point, d geom.Direction) {
		if lines.HasPoint(p) {
			lines.cells[p.Y][p.X] |= lineBit[d]
		}
	}
	// For a member p, the neighbour in d is a member iff p has no edge facing d.
	joined := func(p geom.Point, d geom.Direction) bool { return !per.Has(p.To(d)) }

	for _, e := range per.edges {
		p, d := e.Point, e.Direction
		c := geom.Pt(3*p.X+1, 3*p.Y+1)
		mid := c.Step(d)
		left, right := d.TurnLeft(), d.TurnRight()
		mark(mid, left)
		mark(mid, right)

		for _, s := range []geom.Direction{left, right} {
			end := mid.Step(s)
			mark(end, s.TurnAround())
			side := p.Step(s)
			switch {
			case !joined(p, s):
				// outer corner; the perpendicular edge of p draws the other arm
			case !joined(side, d):
				mark(end, s)
			default:
				mark(end, s)
				inner := end.Step(s)
				mark(inner, s.TurnAround())
				mark(inner, d)
			}
		}
	}

	canvas := Fill(lines.NumRows(), lines.NumColumns(), func(row, col int) string {
		if ch, ok := boxChar[lines.cells[row][col]]; ok {
			return ch
		}
		return " "
	})
	for y := range g.cells {
		for x, v := range g.cells[y] {
			canvas.cells[3*y+1][3*x+1] = plot(v, geom.Pt(x, y))
		}
	}

	return canvas.Plot(func(s string, _ geom.Point) string { return s })
}
