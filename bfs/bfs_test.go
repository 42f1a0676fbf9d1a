package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridkit/bfs"
	"github.com/katalvlaran/gridkit/core"
)

// cycle builds the directed cycle A→B→C→D→A plus the chord A→C.
func cycle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}} {
		if err := g.AddEdgeWithVertices(core.NewEdge(e[0], e[1], core.WithCost(7))); err != nil {
			t.Fatalf("AddEdgeWithVertices: %v", err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_DepthsIgnoreCost: the chord makes C one hop away despite cost.
func TestBFS_DepthsIgnoreCost(t *testing.T) {
	res, err := bfs.BFS(cycle(t), "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	want := map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	path, err := res.PathTo("D")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "C", "D"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(D) = %v; want %v", path, want)
	}
}

// TestBFS_Directed: nothing leads back to an isolated source.
func TestBFS_Directed(t *testing.T) {
	g := cycle(t)
	_ = g.AddEdgeWithVertices(core.NewEdge("X", "A"))
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Depth["X"]; ok {
		t.Error("X reached against edge direction")
	}
	if _, err := res.PathTo("X"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(X): want ErrNoPath, got %v", err)
	}
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	res, err := bfs.BFS(cycle(t), "A", bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 3 {
		t.Errorf("MaxDepth(1) visited %v; want A, B, C", res.Order)
	}

	noChord := func(curr, nbr string) bool { return !(curr == "A" && nbr == "C") }
	res, err = bfs.BFS(cycle(t), "A", bfs.WithFilterNeighbor(noChord))
	if err != nil {
		t.Fatal(err)
	}
	if res.Depth["C"] != 2 || res.Depth["D"] != 3 {
		t.Errorf("filtered depths = %v; want C:2 D:3", res.Depth)
	}
}

func TestBFS_Hooks(t *testing.T) {
	var enqueued []string
	stop := errors.New("stop")
	_, err := bfs.BFS(cycle(t), "A",
		bfs.WithOnEnqueue(func(id string, _ int) { enqueued = append(enqueued, id) }),
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "B" {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Fatalf("want hook error, got %v", err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(enqueued, want) {
		t.Errorf("enqueued = %v; want %v", enqueued, want)
	}
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(cycle(t), "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
