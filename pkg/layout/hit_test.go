package layout

import (
	"testing"

	"github.com/cpereira/forcedraw/pkg/geom"
	"github.com/cpereira/forcedraw/pkg/graph"
	"github.com/cpereira/forcedraw/pkg/viewport"
)

func TestHitTestCenterAlwaysHits(t *testing.T) {
	g := pathGraph(t, 4)
	e, _ := New(testConfig())
	if err := e.Bind(g); err != nil {
		t.Fatal(err)
	}

	view := viewport.New(500, 500)
	b, _ := e.Bounds()
	view.Fit(b, g.VertexCount(), 0.2)

	// The transformed center of every vertex lands inside its own hitbox.
	for _, id := range e.Order() {
		pos, _ := e.Position(id)
		hit, ok := e.HitTest(view, view.ToScreen(pos))
		if !ok {
			t.Errorf("vertex %d: no hit at its own center", id)
			continue
		}
		// Another vertex may legitimately win via overlap, but then its
		// hitbox must contain the point too; assert at least self-or-later.
		if hit < id {
			t.Errorf("vertex %d: hit %d, which precedes it in order", id, hit)
		}
	}
}

func TestHitTestMissAndBoundary(t *testing.T) {
	g := graph.New()
	a := g.AddVertex("a")

	cfg := testConfig()
	e, _ := New(cfg)
	if err := e.Bind(g); err != nil {
		t.Fatal(err)
	}
	_ = e.SetPosition(a, geom.Point{X: 100, Y: 100})

	view := viewport.New(500, 500) // identity transform

	half := (cfg.NodeSize + cfg.NodeBorder) / 2

	// Exactly on the hitbox edge is a hit (inclusive bounds).
	if _, ok := e.HitTest(view, geom.Point{X: 100 + half, Y: 100}); !ok {
		t.Error("boundary point should hit")
	}
	// Just beyond is a miss.
	if _, ok := e.HitTest(view, geom.Point{X: 100 + half + 0.001, Y: 100}); ok {
		t.Error("point beyond the hitbox should miss")
	}
	// Far away is a miss.
	if _, ok := e.HitTest(view, geom.Point{X: 400, Y: 400}); ok {
		t.Error("distant point should miss")
	}
}

func TestHitTestLastWinsOnOverlap(t *testing.T) {
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")

	e, _ := New(testConfig())
	if err := e.Bind(g); err != nil {
		t.Fatal(err)
	}
	// Coincident hitboxes: the vertex latest in insertion order wins.
	_ = e.SetPosition(a, geom.Point{X: 50, Y: 50})
	_ = e.SetPosition(b, geom.Point{X: 50, Y: 50})

	view := viewport.New(500, 500)
	hit, ok := e.HitTest(view, geom.Point{X: 50, Y: 50})
	if !ok {
		t.Fatal("overlapping hitboxes should hit")
	}
	if hit != b {
		t.Errorf("hit = %v, want the later vertex %v", hit, b)
	}
}

func TestHitTestRespectsZoom(t *testing.T) {
	g := graph.New()
	a := g.AddVertex("a")

	cfg := testConfig()
	e, _ := New(cfg)
	if err := e.Bind(g); err != nil {
		t.Fatal(err)
	}
	_ = e.SetPosition(a, geom.Point{X: 100, Y: 100})

	view := viewport.New(500, 500)
	view.Zoom = 2
	view.Shift = geom.Point{X: 30, Y: -10}

	// The hitbox follows the transformed center; its size stays in
	// screen units.
	center := view.ToScreen(geom.Point{X: 100, Y: 100})
	if hit, ok := e.HitTest(view, center); !ok || hit != a {
		t.Errorf("hit at transformed center = %v, %v", hit, ok)
	}
	if _, ok := e.HitTest(view, geom.Point{X: 100, Y: 100}); ok {
		t.Error("untransformed model point should miss under this transform")
	}
}

func TestHitTestIdle(t *testing.T) {
	e, _ := New(testConfig())
	if _, ok := e.HitTest(viewport.New(500, 500), geom.Point{}); ok {
		t.Error("idle engine should never hit")
	}
}
