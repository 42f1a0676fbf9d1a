package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// OutlineReport is the boundary of the region containing one point.
type OutlineReport struct {
	File      string `yaml:"file,omitempty"`
	At        string `yaml:"at"`
	Value     string `yaml:"value"`
	Area      int    `yaml:"area"`
	Perimeter int    `yaml:"perimeter"`
	Sides     int    `yaml:"sides"`
	Border    bool   `yaml:"touches_border"`
	Plot      string `yaml:"plot"`
}

// Outline flood-fills the same-letter region around at and plots its
// perimeter with box-drawing characters.
func Outline(g *grid.Grid[rune], at geom.Point) (OutlineReport, error) {
	if !g.HasPoint(at) {
		return OutlineReport{}, fmt.Errorf("%w: %s", grid.ErrOutOfRange, at)
	}
	only := func(_ rune, p geom.Point, _ *grid.Grid[rune]) bool { return p == at }
	area, ok := g.Areas(grid.SameValue[rune](), only).Next()
	if !ok {
		return OutlineReport{}, fmt.Errorf("%w: %s", grid.ErrOutOfRange, at)
	}
	per := area.Perimeter()
	plot := grid.PlotPerimeter(g, per, func(v rune, p geom.Point) string {
		if area.Has(p) {
			return string(v)
		}
		return " "
	})

	return OutlineReport{
		At:        at.String(),
		Value:     string(area.FirstValue()),
		Area:      area.Size(),
		Perimeter: per.Len(),
		Sides:     len(per.Sides()),
		Border:    area.IsBorderArea(),
		Plot:      trimLines(plot),
	}, nil
}

// Text renders the summary followed by the plot.
func (r OutlineReport) Text() string {
	var b strings.Builder
	if r.File != "" {
		fmt.Fprintf(&b, "%s\n", r.File)
	}
	fmt.Fprintf(&b, "  %s at %s: area %d, perimeter %d, sides %d\n",
		r.Value, r.At, r.Area, r.Perimeter, r.Sides)
	b.WriteString(r.Plot)
	b.WriteByte('\n')

	return b.String()
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
