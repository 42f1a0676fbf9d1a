package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridkit/core"
	"github.com/katalvlaran/gridkit/grid"
)

// Builder converts a grid into a graph through an EdgeFunc.
type Builder[T any] struct {
	grid *grid.Grid[T]
	fn   EdgeFunc[T]
	opts Options
}

// New returns a Builder over g. Options default to Conn4, a fresh graph
// and no metadata.
func New[T any](g *grid.Grid[T], fn EdgeFunc[T], opts ...Option) *Builder[T] {
	b := &Builder[T]{grid: g, fn: fn}
	for _, opt := range opts {
		opt(&b.opts)
	}

	return b
}

// Build scans the grid in row-major order and, for every direction whose
// neighbour is on the grid, applies the EdgeFunc. Edge endpoints are added
// as vertices on demand. A second edge for the same ordered pair fails
// with core.ErrDuplicateEdge.
func (b *Builder[T]) Build() (*core.Graph, error) {
	g := b.opts.Graph
	if g == nil {
		g = core.NewGraph()
	}
	dirs := b.opts.Conn.Directions()

	if b.opts.Metadata {
		for c := b.grid.Points(); c.Next(); {
			p := c.Point()
			v := g.GetOrAddVertex(VertexID(p))
			v.Metadata["x"] = p.X
			v.Metadata["y"] = p.Y
			v.Metadata["value"] = c.Value()
		}
	}

	for c := b.grid.Points(); c.Next(); {
		from, fromValue := c.Point(), c.Value()
		for _, d := range dirs {
			to := from.Step(d)
			if !b.grid.HasPoint(to) {
				continue
			}
			step := b.fn(from, fromValue, to, b.grid.MustGet(to), d)

			var e *core.Edge
			switch step.kind {
			case stepSkip:
				continue
			case stepCost:
				e = core.NewEdge(VertexID(from), VertexID(to), core.WithCost(step.cost))
			case stepEdge:
				e = step.edge
			}
			if err := g.AddEdgeWithVertices(e); err != nil {
				return nil, fmt.Errorf("gridgraph: %s towards %s: %w", from, d, err)
			}
		}
	}

	return g, nil
}
