package toposnap

import (
	"context"
	"testing"
)

func coord(x, y float64) Coord { return Coord{X: x, Y: y} }

func mustTopology(t *testing.T, edges []ReferenceEdge) *MemTopology {
	t.Helper()
	topo, err := NewMemTopology(edges)
	if err != nil {
		t.Fatalf("NewMemTopology: %v", err)
	}
	return topo
}

func assertLineString(t *testing.T, g *Geometry, want []Coord) {
	t.Helper()
	if g.Type != LineString {
		t.Fatalf("got geometry type %v, want LineString", g.Type)
	}
	if len(g.Coords) != len(want) {
		t.Fatalf("got %d coords %+v, want %d coords %+v", len(g.Coords), g.Coords, len(want), want)
	}
	for i, c := range want {
		if g.Coords[i].X != c.X || g.Coords[i].Y != c.Y {
			t.Errorf("coord %d = %+v, want %+v", i, g.Coords[i], c)
		}
	}
}

func TestSnapBasicInsertion(t *testing.T) {
	// No edge lies along the input segment, so the coverage veto does not
	// apply and the nearby vertex (5,0.2) is inserted.
	topo := mustTopology(t, []ReferenceEdge{
		{ID: "cross", Coords: []Coord{coord(5, 0.2), coord(5, 5)}},
	})
	input := NewLineString([]Coord{coord(0, 0), coord(10, 0)})

	out, err := Snap(context.Background(), topo, input, Config{ToleranceSnap: 1.0, ToleranceRemoval: -1, Iterate: true})
	if err != nil {
		t.Fatalf("Snap: %v", err)
	}
	assertLineString(t, out, []Coord{coord(0, 0), coord(5, 0.2), coord(10, 0)})
	assertLineString(t, input, []Coord{coord(0, 0), coord(10, 0)})
}

func TestSnapCoverageVeto(t *testing.T) {
	// (5,0) is a candidate strictly inside the input segment, but "base"
	// already covers that segment, so nothing is inserted.
	topo := mustTopology(t, []ReferenceEdge{
		{ID: "base", Coords: []Coord{coord(0, 0), coord(10, 0)}},
		{ID: "spur", Coords: []Coord{coord(5, 0), coord(5, 5)}},
	})
	input := NewLineString([]Coord{coord(0, 0), coord(10, 0)})

	out, err := Snap(context.Background(), topo, input, Config{ToleranceSnap: 1.0, ToleranceRemoval: -1, Iterate: true})
	if err != nil {
		t.Fatalf("Snap: %v", err)
	}
	assertLineString(t, out, []Coord{coord(0, 0), coord(10, 0)})
}

func TestSnapEndpointVeto(t *testing.T) {
	topo := mustTopology(t, []ReferenceEdge{
		{ID: "corner", Coords: []Coord{coord(0, 0), coord(-5, 5)}},
	})
	input := NewLineString([]Coord{coord(0, 0), coord(10, 0)})

	out, err := Snap(context.Background(), topo, input, Config{ToleranceSnap: 1.0, ToleranceRemoval: -1, Iterate: true})
	if err != nil {
		t.Fatalf("Snap: %v", err)
	}
	assertLineString(t, out, []Coord{coord(0, 0), coord(10, 0)})
}

func TestSnapOrderingWithoutIterate(t *testing.T) {
	topo := mustTopology(t, []ReferenceEdge{
		{ID: "a", Coords: []Coord{coord(3, 0.9), coord(3, 100)}},
		{ID: "b", Coords: []Coord{coord(7, 0.5), coord(7, 100)}},
	})
	input := NewLineString([]Coord{coord(0, 0), coord(10, 0)})

	out, err := Snap(context.Background(), topo, input, Config{ToleranceSnap: 1.0, ToleranceRemoval: -1, Iterate: false})
	if err != nil {
		t.Fatalf("Snap: %v", err)
	}
	assertLineString(t, out, []Coord{coord(0, 0), coord(7, 0.5), coord(10, 0)})
}

func TestSnapRemoval(t *testing.T) {
	topo := mustTopology(t, []ReferenceEdge{
		{ID: "base", Coords: []Coord{coord(0, 0), coord(10, 0)}},
	})
	input := NewLineString([]Coord{coord(0, 0), coord(3, 0.1), coord(7, -0.2), coord(10, 0)})

	out, err := Snap(context.Background(), topo, input, Config{ToleranceSnap: 0, ToleranceRemoval: 0.5, Iterate: true})
	if err != nil {
		t.Fatalf("Snap: %v", err)
	}
	assertLineString(t, out, []Coord{coord(0, 0), coord(10, 0)})
}

func TestSnapEmptyTopologyIsNoop(t *testing.T) {
	topo := mustTopology(t, nil)
	input := NewLineString([]Coord{coord(0, 0), coord(3, 7), coord(10, 0)})

	out, err := Snap(context.Background(), topo, input, Config{ToleranceSnap: 1.0, ToleranceRemoval: -1, Iterate: true})
	if err != nil {
		t.Fatalf("Snap: %v", err)
	}
	assertLineString(t, out, []Coord{coord(0, 0), coord(3, 7), coord(10, 0)})
}

func TestSnapZeroToleranceIsNoop(t *testing.T) {
	topo := mustTopology(t, []ReferenceEdge{
		{ID: "near", Coords: []Coord{coord(5, 0.001), coord(5, 5)}},
	})
	input := NewLineString([]Coord{coord(0, 0), coord(10, 0)})

	out, err := Snap(context.Background(), topo, input, Config{ToleranceSnap: 0, ToleranceRemoval: -1, Iterate: true})
	if err != nil {
		t.Fatalf("Snap: %v", err)
	}
	assertLineString(t, out, []Coord{coord(0, 0), coord(10, 0)})
}

func TestSnapIsIdempotentUnderIterate(t *testing.T) {
	topo := mustTopology(t, []ReferenceEdge{
		{ID: "a", Coords: []Coord{coord(3, 0.9), coord(3, 100)}},
		{ID: "b", Coords: []Coord{coord(7, 0.5), coord(7, 100)}},
	})
	input := NewLineString([]Coord{coord(0, 0), coord(10, 0)})
	cfg := Config{ToleranceSnap: 1.0, ToleranceRemoval: -1, Iterate: true}

	once, err := Snap(context.Background(), topo, input, cfg)
	if err != nil {
		t.Fatalf("first Snap: %v", err)
	}
	twice, err := Snap(context.Background(), topo, once, cfg)
	if err != nil {
		t.Fatalf("second Snap: %v", err)
	}
	if len(once.Coords) != len(twice.Coords) {
		t.Fatalf("snap(snap(G)) changed point count: %d vs %d", len(once.Coords), len(twice.Coords))
	}
	for i := range once.Coords {
		if once.Coords[i] != twice.Coords[i] {
			t.Errorf("snap is not idempotent at index %d: %+v vs %+v", i, once.Coords[i], twice.Coords[i])
		}
	}
}

func TestSnapRejectsNilArguments(t *testing.T) {
	topo := mustTopology(t, nil)
	if _, err := Snap(context.Background(), nil, NewLineString(nil), DefaultConfig()); err == nil {
		t.Error("expected error for nil topology")
	}
	if _, err := Snap(context.Background(), topo, nil, DefaultConfig()); err == nil {
		t.Error("expected error for nil geometry")
	}
}

func TestMemTopologyStatsReportsComponents(t *testing.T) {
	topo := mustTopology(t, []ReferenceEdge{
		{ID: "left", Coords: []Coord{coord(0, 0), coord(5, 0)}},
		{ID: "right", Coords: []Coord{coord(5, 0), coord(10, 0)}},
		{ID: "island", Coords: []Coord{coord(100, 100), coord(200, 200)}},
	})
	stats := topo.Stats()
	if stats.ComponentCount != 2 {
		t.Errorf("ComponentCount = %d, want 2", stats.ComponentCount)
	}
	if stats.EdgeCount != 3 {
		t.Errorf("EdgeCount = %d, want 3", stats.EdgeCount)
	}
}
