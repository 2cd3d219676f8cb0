package layout_test

import (
	"fmt"

	"github.com/cpereira/forcedraw/pkg/graph"
	"github.com/cpereira/forcedraw/pkg/layout"
)

func ExampleEngine() {
	// Build a triangle and simulate it.
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	_, _ = g.AddEdge("", a, b)
	_, _ = g.AddEdge("", b, c)
	_, _ = g.AddEdge("", c, a)

	cfg := layout.DefaultConfig()
	cfg.Seed = 1
	engine, _ := layout.New(cfg)
	_ = engine.Bind(g)
	_ = engine.Advance(100)

	fmt.Println("bound:", engine.Bound())
	fmt.Println("vertices:", len(engine.Order()))
	fmt.Println("spots:", len(engine.Spots()))
	// Output:
	// bound: true
	// vertices: 3
	// spots: 3
}

func ExampleEngine_SpotCurves() {
	// Two parallel edges between the same pair fan out into two curves;
	// a lone edge stays straight.
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	_, _ = g.AddEdge("first", a, b)
	_, _ = g.AddEdge("second", a, b)
	_, _ = g.AddEdge("", b, c)

	cfg := layout.DefaultConfig()
	cfg.Seed = 1
	engine, _ := layout.New(cfg)
	_ = engine.Bind(g)

	for _, spot := range engine.Spots() {
		curves := engine.SpotCurves(spot)
		fmt.Printf("spot %d-%d: %d curve(s), straight=%v\n",
			spot.U, spot.V, len(curves), curves[0].Straight)
	}
	// Output:
	// spot 0-1: 2 curve(s), straight=false
	// spot 1-2: 1 curve(s), straight=true
}
