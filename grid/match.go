package grid

import (
	"regexp"
	"unicode/utf8"

	"github.com/katalvlaran/gridkit/geom"
)

// Match is one regular-expression hit inside a plotted row.
// Columns are counted in runes, so they line up with grid columns as long
// as every cell plots to exactly one character.
type Match struct {
	Text   string
	Start  geom.Point
	Groups []*Match // nil entries for groups that did not participate
}

// End is the coordinate of the last character of the match. For an empty
// match End lies one column left of Start.
func (m Match) End() geom.Point {
	return m.Start.MoveXY(utf8.RuneCountInString(m.Text)-1, 0)
}

// Matches runs re over every plotted row, top to bottom, and returns all
// non-overlapping matches in reading order.
func (g *Grid[T]) Matches(re *regexp.Regexp, plot Plotter[T]) []Match {
	var out []Match
	for y := range g.cells {
		row := Line[T]{g: g, index: y}.String(plot)
		for _, loc := range re.FindAllStringSubmatchIndex(row, -1) {
			m := Match{
				Text:  row[loc[0]:loc[1]],
				Start: geom.Pt(utf8.RuneCountInString(row[:loc[0]]), y),
			}
			for k := 2; k < len(loc); k += 2 {
				if loc[k] < 0 {
					m.Groups = append(m.Groups, nil)
					continue
				}
				m.Groups = append(m.Groups, &Match{
					Text:  row[loc[k]:loc[k+1]],
					Start: geom.Pt(utf8.RuneCountInString(row[:loc[k]]), y),
				})
			}
			out = append(out, m)
		}
	}

	return out
}
