package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

func land(r rune) bool { return r != '~' }

// islands returns the land areas of g in discovery order.
func islands(t *testing.T, g *grid.Grid[rune]) []*grid.Area[rune] {
	t.Helper()
	isLand := func(r rune, _ geom.Point, _ *grid.Grid[rune]) bool { return land(r) }
	belongs := func(r rune, _ geom.Point, _ *grid.Area[rune]) bool { return land(r) }
	return g.Areas(belongs, isLand).Collect()
}

// TestBridge_BasicLine: "#~#" needs one conversion.
func TestBridge_BasicLine(t *testing.T) {
	g := read(t, "#~#")
	is := islands(t, g)
	if len(is) != 2 {
		t.Fatalf("found %d islands; want 2", len(is))
	}
	path, cost, err := gridgraph.Bridge(g, is[0], is[1], land, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("Bridge: %v", err)
	}
	want := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0)}
	if cost != 1 || !reflect.DeepEqual(path, want) {
		t.Errorf("Bridge = %v, %d; want %v, 1", path, cost, want)
	}
}

// TestBridge_PrefersLand routes over an existing land cell for free.
func TestBridge_PrefersLand(t *testing.T) {
	g := read(t, "#~~~#\n~~#~~")
	is := islands(t, g)
	if len(is) != 3 {
		t.Fatalf("found %d islands; want 3", len(is))
	}
	_, cost, err := gridgraph.Bridge(g, is[0], is[1], land, gridgraph.Conn8)
	if err != nil {
		t.Fatalf("Bridge: %v", err)
	}
	// (0,0) → (1,0)~ → (2,1)# → (3,0)~ → (4,0)
	if cost != 2 {
		t.Errorf("cost = %d; want 2", cost)
	}

	_, cost, err = gridgraph.Bridge(g, is[0], is[1], land, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("Bridge: %v", err)
	}
	if cost != 3 {
		t.Errorf("Conn4 cost = %d; want 3", cost)
	}
}

// TestBridge_Errors covers empty areas and disconnected targets.
func TestBridge_Errors(t *testing.T) {
	g := read(t, "#~#")
	is := islands(t, g)
	empty := grid.NewArea(g)
	if _, _, err := gridgraph.Bridge(g, empty, is[1], land, gridgraph.Conn4); !errors.Is(err, gridgraph.ErrEmptyArea) {
		t.Fatalf("expected ErrEmptyArea, got %v", err)
	}

	other := read(t, "#")
	outside := grid.NewArea(other, geom.Pt(5, 5))
	if _, _, err := gridgraph.Bridge(g, is[0], outside, land, gridgraph.Conn4); !errors.Is(err, gridgraph.ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}
