package report

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridkit/grid"
)

// Region summarises one connected same-letter region.
type Region struct {
	Value     string `yaml:"value"`
	Origin    string `yaml:"origin"`
	Area      int    `yaml:"area"`
	Perimeter int    `yaml:"perimeter"`
	Sides     int    `yaml:"sides"`
}

// RegionReport is the fence pricing of a whole grid.
type RegionReport struct {
	File             string   `yaml:"file,omitempty"`
	Regions          int      `yaml:"regions"`
	PriceByPerimeter int64    `yaml:"price_by_perimeter"`
	PriceBySides     int64    `yaml:"price_by_sides"`
	Details          []Region `yaml:"details,omitempty"`
}

// Regions splits g into same-letter regions in row-major order of their
// first cell. Details are included when detailed is true.
func Regions(g *grid.Grid[rune], detailed bool) RegionReport {
	var rep RegionReport
	it := g.Areas(grid.SameValue[rune](), nil)
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		per := a.Perimeter()
		size, edges, sides := a.Size(), per.Len(), len(per.Sides())
		rep.Regions++
		rep.PriceByPerimeter += int64(size) * int64(edges)
		rep.PriceBySides += int64(size) * int64(sides)
		if detailed {
			origin, _ := a.FirstPoint()
			rep.Details = append(rep.Details, Region{
				Value:     string(a.FirstValue()),
				Origin:    origin.String(),
				Area:      size,
				Perimeter: edges,
				Sides:     sides,
			})
		}
	}

	return rep
}

// Text renders the report as aligned lines.
func (r RegionReport) Text() string {
	var b strings.Builder
	if r.File != "" {
		fmt.Fprintf(&b, "%s\n", r.File)
	}
	fmt.Fprintf(&b, "  regions:            %d\n", r.Regions)
	fmt.Fprintf(&b, "  price by perimeter: %d\n", r.PriceByPerimeter)
	fmt.Fprintf(&b, "  price by sides:     %d\n", r.PriceBySides)
	for _, d := range r.Details {
		fmt.Fprintf(&b, "  %s at %s: area %d, perimeter %d, sides %d\n",
			d.Value, d.Origin, d.Area, d.Perimeter, d.Sides)
	}

	return b.String()
}

// ReadGrid loads a character grid from path. Trailing newlines are ignored.
func ReadGrid(path string) (*grid.Grid[rune], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	g, err := grid.Read(strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return g, nil
}

// RegionsFiles reports every file concurrently. Results keep the order of
// paths; the first failure cancels the rest.
func RegionsFiles(ctx context.Context, logger *zap.Logger, paths []string, detailed bool) ([]RegionReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	reports := make([]RegionReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gr, err := ReadGrid(path)
			if err != nil {
				return err
			}
			rep := Regions(gr, detailed)
			rep.File = path
			reports[i] = rep
			logger.Debug("regions reported",
				zap.String("file", path),
				zap.Int("rows", gr.NumRows()),
				zap.Int("columns", gr.NumColumns()),
				zap.Int("regions", rep.Regions),
			)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// Totals sums prices across reports.
func Totals(reports []RegionReport) RegionReport {
	total := RegionReport{File: "total"}
	for _, r := range reports {
		total.Regions += r.Regions
		total.PriceByPerimeter += r.PriceByPerimeter
		total.PriceBySides += r.PriceBySides
	}

	return total
}
