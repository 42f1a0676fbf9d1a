package report

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridkit/bfs"
	"github.com/katalvlaran/gridkit/config"
	"github.com/katalvlaran/gridkit/core"
	"github.com/katalvlaran/gridkit/dijkstra"
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

// StartFacing is the initial facing of a maze walk when turns cost.
const StartFacing = geom.East

// MazeReport is the cheapest walk through a maze.
type MazeReport struct {
	File     string   `yaml:"file,omitempty"`
	Start    string   `yaml:"start"`
	End      string   `yaml:"end"`
	Cost     int64    `yaml:"cost"`
	Paths    string   `yaml:"paths"`
	Tiles    int      `yaml:"tiles"`
	Reach    int      `yaml:"reachable"`
	Path     []string `yaml:"path"`
	Vertices int      `yaml:"vertices"`
	Edges    int      `yaml:"edges"`
}

// Maze solves g under cfg. Without a turn cost every step between open
// cells costs cfg.StepCost. With a turn cost the walker starts facing east,
// steps forward for cfg.StepCost and turns 90° in place for cfg.TurnCost;
// every facing at the end tile that reaches it at the minimum cost counts.
//
// Paths is the number of distinct cheapest walks; Tiles is the number of
// grid cells lying on at least one of them; Reach is the number of cells
// the walker can reach at all.
func Maze(g *grid.Grid[rune], cfg config.MazeConfig, logger *zap.Logger) (MazeReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start, err := findMarker(g, cfg.StartRune())
	if err != nil {
		return MazeReport{}, err
	}
	end, err := findMarker(g, cfg.EndRune())
	if err != nil {
		return MazeReport{}, err
	}

	var m maze
	if cfg.TurnCost > 0 {
		m, err = facingMaze(g, cfg, start, end)
	} else {
		m, err = plainMaze(g, cfg, start, end)
	}
	if err != nil {
		return MazeReport{}, err
	}

	reached, err := bfs.BFS(m.graph, m.source)
	if err != nil {
		return MazeReport{}, fmt.Errorf("report: exploring maze: %w", err)
	}
	reach := map[geom.Point]struct{}{}
	for _, id := range reached.Order {
		reach[m.points[id]] = struct{}{}
	}

	r, err := dijkstra.Calculate(m.graph, []string{m.source}, dijkstra.WithLogger(logger))
	if err != nil {
		return MazeReport{}, fmt.Errorf("report: solving maze: %w", err)
	}

	rep := MazeReport{
		Start:    start.String(),
		End:      end.String(),
		Cost:     dijkstra.Infinity,
		Reach:    len(reach),
		Vertices: m.graph.VertexCount(),
		Edges:    m.graph.EdgeCount(),
	}
	var targets []string
	for _, t := range m.targets {
		d, err := r.Distance(t)
		if err != nil {
			continue
		}
		switch {
		case d < rep.Cost:
			rep.Cost, targets = d, []string{t}
		case d == rep.Cost:
			targets = append(targets, t)
		}
	}
	if len(targets) == 0 {
		return MazeReport{}, fmt.Errorf("%w: %s from %s", ErrUnsolvable, end, start)
	}

	count, err := r.CountPaths(targets[0])
	if err != nil {
		return MazeReport{}, err
	}
	tiles := map[geom.Point]struct{}{}
	for i, t := range targets {
		if i > 0 {
			n, err := r.CountPaths(t)
			if err != nil {
				return MazeReport{}, err
			}
			count.Add(count, n)
		}
		on, err := r.OnAnyShortestPath(t)
		if err != nil {
			return MazeReport{}, err
		}
		for _, id := range on {
			tiles[m.points[id]] = struct{}{}
		}
	}
	path, err := r.Path(targets[0])
	if err != nil {
		return MazeReport{}, err
	}
	for _, id := range path {
		p := m.points[id].String()
		if n := len(rep.Path); n > 0 && rep.Path[n-1] == p {
			continue // turn in place
		}
		rep.Path = append(rep.Path, p)
	}
	rep.Paths = count.String()
	rep.Tiles = len(tiles)

	logger.Debug("maze solved",
		zap.String("start", rep.Start),
		zap.String("end", rep.End),
		zap.Int64("cost", rep.Cost),
		zap.String("paths", rep.Paths),
		zap.Int("tiles", rep.Tiles),
	)

	return rep, nil
}

// Text renders the report as aligned lines.
func (r MazeReport) Text() string {
	var b strings.Builder
	if r.File != "" {
		fmt.Fprintf(&b, "%s\n", r.File)
	}
	fmt.Fprintf(&b, "  from %s to %s\n", r.Start, r.End)
	fmt.Fprintf(&b, "  cost:  %d\n", r.Cost)
	fmt.Fprintf(&b, "  paths: %s\n", r.Paths)
	fmt.Fprintf(&b, "  tiles: %d of %d reachable\n", r.Tiles, r.Reach)
	fmt.Fprintf(&b, "  path:  %s\n", strings.Join(r.Path, " "))

	return b.String()
}

// maze is a graph ready for dijkstra, with the vertex-to-tile mapping.
type maze struct {
	graph   *core.Graph
	source  string
	targets []string
	points  map[string]geom.Point
}

func findMarker(g *grid.Grid[rune], marker rune) (geom.Point, error) {
	var (
		found geom.Point
		seen  bool
	)
	for c := g.Points(); c.Next(); {
		if c.Value() != marker {
			continue
		}
		if seen {
			return geom.Point{}, fmt.Errorf("%w: %q at %s and %s", ErrDuplicateMarker, marker, found, c.Point())
		}
		found, seen = c.Point(), true
	}
	if !seen {
		return geom.Point{}, fmt.Errorf("%w: %q", ErrMissingMarker, marker)
	}

	return found, nil
}

func plainMaze(g *grid.Grid[rune], cfg config.MazeConfig, start, end geom.Point) (maze, error) {
	wall := cfg.WallRune()
	step := func(_ geom.Point, a rune, _ geom.Point, b rune, _ geom.Direction) gridgraph.Step {
		if a == wall || b == wall {
			return gridgraph.Skip()
		}
		return gridgraph.Cost(cfg.StepCost)
	}
	opts := []gridgraph.Option{}
	if cfg.Diagonals {
		opts = append(opts, gridgraph.WithDiagonals())
	}
	graph, err := gridgraph.New(g, step, opts...).Build()
	if err != nil {
		return maze{}, err
	}
	// A walled-in start or end has no edges yet still needs a vertex.
	graph.GetOrAddVertex(gridgraph.VertexID(start))
	graph.GetOrAddVertex(gridgraph.VertexID(end))

	points := make(map[string]geom.Point, graph.VertexCount())
	for _, id := range graph.Vertices() {
		p, err := gridgraph.PointOf(id)
		if err != nil {
			return maze{}, err
		}
		points[id] = p
	}

	return maze{
		graph:   graph,
		source:  gridgraph.VertexID(start),
		targets: []string{gridgraph.VertexID(end)},
		points:  points,
	}, nil
}

// facingMaze builds the (tile, facing) state graph: a forward edge when the
// tile ahead is open, and a turn edge to each 90° neighbour facing.
func facingMaze(g *grid.Grid[rune], cfg config.MazeConfig, start, end geom.Point) (maze, error) {
	wall := cfg.WallRune()
	graph := core.NewGraph()
	points := map[string]geom.Point{}
	state := func(dp geom.DirectedPoint) string {
		id := dp.String()
		points[id] = dp.Point
		return id
	}

	for c := g.Points(); c.Next(); {
		if c.Value() == wall {
			continue
		}
		for _, d := range geom.Straight() {
			here := c.Point().To(d)
			from := state(here)
			graph.GetOrAddVertex(from)
			edges := []*core.Edge{
				core.NewEdge(from, state(here.TurnLeft()), core.WithCost(cfg.TurnCost)),
				core.NewEdge(from, state(here.TurnRight()), core.WithCost(cfg.TurnCost)),
			}
			ahead := here.Forward(1)
			if v, err := g.Get(ahead.Point); err == nil && v != wall {
				edges = append(edges, core.NewEdge(from, state(ahead), core.WithCost(cfg.StepCost)))
			}
			for _, e := range edges {
				if err := graph.AddEdgeWithVertices(e); err != nil {
					return maze{}, fmt.Errorf("report: %s: %w", here, err)
				}
			}
		}
	}

	targets := make([]string, 0, 4)
	for _, d := range geom.Straight() {
		targets = append(targets, state(end.To(d)))
	}
	sort.Strings(targets)

	return maze{
		graph:   graph,
		source:  state(start.To(StartFacing)),
		targets: targets,
		points:  points,
	}, nil
}
