package cli

import (
	"testing"

	"github.com/cpereira/forcedraw/pkg/graph"
	"github.com/cpereira/forcedraw/pkg/layout"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	if _, err := g.AddEdge("e1", a, b); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("e2", a, b); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("", b, c); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSimulate(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.Seed = 42

	eng, err := simulate(cfg, testGraph(t), 50)
	if err != nil {
		t.Fatalf("simulate error: %v", err)
	}
	if !eng.Bound() {
		t.Fatal("engine should be bound after simulate")
	}

	// Deterministic: same seed, same positions.
	eng2, err := simulate(cfg, testGraph(t), 50)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range eng.Order() {
		p1, _ := eng.Position(id)
		p2, _ := eng2.Position(id)
		if p1 != p2 {
			t.Errorf("vertex %d: %+v vs %+v with identical seed", id, p1, p2)
		}
	}
}

func TestSimulateEmptyGraph(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.Seed = 42
	if _, err := simulate(cfg, graph.New(), 10); err == nil {
		t.Error("empty graph should error")
	}
}

func TestBuildArtifact(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.Seed = 42

	eng, err := simulate(cfg, testGraph(t), 100)
	if err != nil {
		t.Fatal(err)
	}
	art, err := buildArtifact(eng)
	if err != nil {
		t.Fatalf("buildArtifact error: %v", err)
	}

	if len(art.Nodes) != 3 {
		t.Errorf("node count = %d, want 3", len(art.Nodes))
	}
	if len(art.Edges) != 3 {
		t.Errorf("edge count = %d, want 3", len(art.Edges))
	}

	// The doubled a-b edge yields two curved entries; b-c stays straight.
	curved, straight := 0, 0
	for _, e := range art.Edges {
		if e.Straight {
			straight++
		} else {
			curved++
		}
	}
	if curved != 2 || straight != 1 {
		t.Errorf("curved/straight = %d/%d, want 2/1", curved, straight)
	}

	// Auto-fit viewport carries the configured canvas.
	if art.Viewport.Width != cfg.CanvasWidth || art.Viewport.Height != cfg.CanvasHeight {
		t.Errorf("viewport canvas = %vx%v", art.Viewport.Width, art.Viewport.Height)
	}
	if art.Viewport.Zoom == 0 {
		t.Error("auto-fit should produce a nonzero zoom for three spread vertices")
	}
}

func TestBuildArtifactUnbound(t *testing.T) {
	eng, err := layout.New(layout.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := buildArtifact(eng); err == nil {
		t.Error("idle engine should error")
	}
}

func TestDefaultOutput(t *testing.T) {
	if got := defaultOutput("graph.json", ".svg"); got != "graph.svg" {
		t.Errorf("defaultOutput = %q, want graph.svg", got)
	}
	if got := defaultOutput("noext", ".svg"); got != "noext.svg" {
		t.Errorf("defaultOutput = %q, want noext.svg", got)
	}
}
