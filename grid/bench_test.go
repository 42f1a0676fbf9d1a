package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridkit/grid"
)

func benchGarden(n int) *grid.Grid[rune] {
	return grid.Fill(n, n, func(row, col int) rune { return rune('A' + (row/3+col/5)%4) })
}

func BenchmarkAreas(b *testing.B) {
	g := benchGarden(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Areas(grid.SameValue[rune](), nil).Collect()
	}
}

func BenchmarkSides(b *testing.B) {
	g := benchGarden(200)
	areas := g.Areas(grid.SameValue[rune](), nil).Collect()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, a := range areas {
			_ = grid.NewPerimeter(a.Perimeter().Edges()...).Sides()
		}
	}
}
