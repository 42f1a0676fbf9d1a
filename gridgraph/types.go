// Package gridgraph defines core types, options, and sentinel errors
// for grid-to-graph conversion.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridkit/core"
	"github.com/katalvlaran/gridkit/errkind"
	"github.com/katalvlaran/gridkit/geom"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrBadVertexID indicates a vertex ID that does not parse as a point.
	ErrBadVertexID = errkind.New(errkind.ErrConfiguration, "gridgraph: vertex ID is not a point")
	// ErrEmptyArea indicates Bridge was given an empty area.
	ErrEmptyArea = errkind.New(errkind.ErrPrecondition, "gridgraph: area has no points")
	// ErrNoPath indicates no conversion path exists between two areas.
	ErrNoPath = errkind.New(errkind.ErrNotFound, "gridgraph: no path between areas")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	conn4 = []geom.Direction{geom.North, geom.East, geom.South, geom.West}
	conn8 = []geom.Direction{
		geom.North, geom.NorthEast, geom.East, geom.SouthEast,
		geom.South, geom.SouthWest, geom.West, geom.NorthWest,
	}
)

// Directions returns the neighbour directions of c in clockwise order.
func (c Connectivity) Directions() []geom.Direction {
	if c == Conn8 {
		return append([]geom.Direction(nil), conn8...)
	}

	return append([]geom.Direction(nil), conn4...)
}

// VertexID formats the vertex identifier for the cell at p.
func VertexID(p geom.Point) string { return p.String() }

// PointOf parses a vertex ID produced by VertexID.
func PointOf(id string) (geom.Point, error) {
	p, err := geom.ParsePoint(id)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}

	return p, nil
}

// Step is an EdgeFunc's verdict for one neighbour pair. Build one with
// Skip, Cost or Use.
type Step struct {
	kind stepKind
	cost int64
	edge *core.Edge
}

type stepKind uint8

const (
	stepSkip stepKind = iota
	stepCost
	stepEdge
)

// Skip leaves the pair unconnected.
func Skip() Step { return Step{kind: stepSkip} }

// Cost connects from→to with an edge of cost n.
func Cost(n int64) Step { return Step{kind: stepCost, cost: n} }

// Use adds e as given; its endpoints need not be point IDs.
func Use(e *core.Edge) Step { return Step{kind: stepEdge, edge: e} }

// EdgeFunc decides how the cell at from connects to its neighbour to,
// which lies one step in direction dir.
type EdgeFunc[T any] func(from geom.Point, fromValue T, to geom.Point, toValue T, dir geom.Direction) Step

// Options configure a Builder.
type Options struct {
	Conn     Connectivity
	Graph    *core.Graph
	Metadata bool
}

// Option represents a functional option for configuring a Builder.
type Option func(*Options)

// WithDiagonals switches the builder to Conn8.
func WithDiagonals() Option {
	return func(o *Options) { o.Conn = Conn8 }
}

// WithConnectivity sets the connectivity explicitly.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithGraph makes Build add to g instead of a fresh graph.
func WithGraph(g *core.Graph) Option {
	return func(o *Options) { o.Graph = g }
}

// WithMetadata creates a vertex for every cell up front, with metadata
// keys "x", "y" and "value".
func WithMetadata() Option {
	return func(o *Options) { o.Metadata = true }
}
