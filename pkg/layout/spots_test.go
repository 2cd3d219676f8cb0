package layout

import (
	"math"
	"testing"

	"github.com/cpereira/forcedraw/pkg/geom"
	"github.com/cpereira/forcedraw/pkg/graph"
)

func TestResolveSpotsPartition(t *testing.T) {
	// Triangle with a doubled edge and a reversed duplicate: a-b, a-b,
	// b-a all land in the same spot.
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	e1, _ := g.AddEdge("", a, b)
	e2, _ := g.AddEdge("", a, b)
	e3, _ := g.AddEdge("", b, a)
	e4, _ := g.AddEdge("", b, c)
	_ = g.AddVertex("isolated")

	spots := resolveSpots(g)
	if len(spots) != 2 {
		t.Fatalf("spot count = %d, want 2", len(spots))
	}

	// Total and disjoint: every edge in exactly one spot.
	seen := make(map[graph.EdgeID]int)
	total := 0
	for _, s := range spots {
		if s.U >= s.V {
			t.Errorf("spot endpoints not normalized: %d, %d", s.U, s.V)
		}
		for _, id := range s.Edges {
			seen[id]++
			total++
		}
	}
	if total != g.EdgeCount() {
		t.Errorf("partition covers %d edges, want %d", total, g.EdgeCount())
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("edge %d appears in %d spots", id, n)
		}
	}

	// Spots appear in first-edge order; edges keep insertion order.
	first := spots[0]
	if first.U != a || first.V != b {
		t.Errorf("first spot = %d-%d, want %d-%d", first.U, first.V, a, b)
	}
	want := []graph.EdgeID{e1, e2, e3}
	for i, id := range first.Edges {
		if id != want[i] {
			t.Errorf("spot edge %d = %v, want %v", i, id, want[i])
		}
	}
	if spots[1].Edges[0] != e4 {
		t.Errorf("second spot first edge = %v, want %v", spots[1].Edges[0], e4)
	}
}

func TestResolveSpotsParallelPair(t *testing.T) {
	// Three vertices where one pair carries two parallel edges: exactly
	// one spot of size two, and no spots for the non-adjacent pairs.
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	g.AddVertex("c")
	if _, err := g.AddEdge("", a, b); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("", a, b); err != nil {
		t.Fatal(err)
	}

	spots := resolveSpots(g)
	if len(spots) != 1 {
		t.Fatalf("spot count = %d, want 1", len(spots))
	}
	if spots[0].U != a || spots[0].V != b {
		t.Errorf("spot pair = %d-%d, want %d-%d", spots[0].U, spots[0].V, a, b)
	}
	if len(spots[0].Edges) != 2 {
		t.Errorf("spot size = %d, want 2", len(spots[0].Edges))
	}
}

func TestSpotCurvesSingleEdge(t *testing.T) {
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	if _, err := g.AddEdge("", a, b); err != nil {
		t.Fatal(err)
	}

	e, _ := New(testConfig())
	if err := e.Bind(g); err != nil {
		t.Fatal(err)
	}
	_ = e.SetPosition(a, geom.Point{X: 0, Y: 0})
	_ = e.SetPosition(b, geom.Point{X: 10, Y: 0})

	spots := e.Spots()
	if len(spots) != 1 {
		t.Fatalf("spot count = %d, want 1", len(spots))
	}
	curves := e.SpotCurves(spots[0])
	if len(curves) != 1 {
		t.Fatalf("curve count = %d, want 1", len(curves))
	}
	c := curves[0]
	if !c.Straight {
		t.Error("single-edge spot should be straight")
	}
	if c.Control != geom.Midpoint(c.From, c.To) {
		t.Errorf("straight control = %+v, want midpoint %+v", c.Control, geom.Midpoint(c.From, c.To))
	}
}

func TestSpotCurvesFan(t *testing.T) {
	// Three parallel edges on a horizontal pair fan out on the vertical
	// through the midpoint.
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	for i := 0; i < 3; i++ {
		if _, err := g.AddEdge("", a, b); err != nil {
			t.Fatal(err)
		}
	}

	e, _ := New(testConfig())
	if err := e.Bind(g); err != nil {
		t.Fatal(err)
	}
	from := geom.Point{X: 0, Y: 0}
	to := geom.Point{X: 100, Y: 0}
	_ = e.SetPosition(a, from)
	_ = e.SetPosition(b, to)

	curves := e.SpotCurves(e.Spots()[0])
	if len(curves) != 3 {
		t.Fatalf("curve count = %d, want 3", len(curves))
	}

	mid := geom.Midpoint(from, to)
	shiftMax := 3.0*5 + 10
	edgeShift := shiftMax * 2 / 3
	for i, c := range curves {
		if c.Straight {
			t.Errorf("curve %d should not be straight", i)
		}
		if c.From != from || c.To != to {
			t.Errorf("curve %d endpoints = %+v -> %+v", i, c.From, c.To)
		}
		// Control points sit on the perpendicular through the midpoint.
		if math.Abs(c.Control.X-mid.X) > 1e-9 {
			t.Errorf("curve %d control off the perpendicular: %+v", i, c.Control)
		}
		wantOffset := shiftMax - float64(i)*edgeShift*2
		if got := c.Control.Y - mid.Y; math.Abs(math.Abs(got)-math.Abs(wantOffset)) > 1e-9 {
			t.Errorf("curve %d offset = %v, want magnitude %v", i, got, wantOffset)
		}
	}

	// The fan is not collinear: offsets differ between curves.
	if curves[0].Control == curves[1].Control || curves[1].Control == curves[2].Control {
		t.Error("fan control points should be distinct")
	}
}

func TestSpotsRebuildOnBind(t *testing.T) {
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	if _, err := g.AddEdge("", a, b); err != nil {
		t.Fatal(err)
	}

	e, _ := New(testConfig())
	if err := e.Bind(g); err != nil {
		t.Fatal(err)
	}
	if len(e.Spots()) != 1 {
		t.Fatalf("spot count = %d, want 1", len(e.Spots()))
	}

	// Topology changes after Bind are not observed until re-bound.
	if _, err := g.AddEdge("", a, b); err != nil {
		t.Fatal(err)
	}
	if len(e.Spots()[0].Edges) != 1 {
		t.Error("spot cache should be a bind-time snapshot")
	}
	if err := e.Bind(g); err != nil {
		t.Fatal(err)
	}
	if len(e.Spots()[0].Edges) != 2 {
		t.Error("re-bind should rebuild the spot cache")
	}
}
