package cli

import (
	"fmt"

	"github.com/cpereira/forcedraw/pkg/graph"
	"github.com/cpereira/forcedraw/pkg/layout"
	"github.com/cpereira/forcedraw/pkg/viewport"
)

// layoutArtifact is the JSON output of a simulation run: renderable
// geometry only, no engine state. Positions and curve control points
// are in model space; the viewport block carries the auto-fit transform
// a renderer should apply to map them onto the canvas.
type layoutArtifact struct {
	Nodes    []artifactNode   `json:"nodes"`
	Edges    []artifactEdge   `json:"edges,omitempty"`
	Viewport artifactViewport `json:"viewport"`
}

type artifactNode struct {
	ID   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
}

type artifactEdge struct {
	Label    string  `json:"label,omitempty"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	ControlX float64 `json:"cx"`
	ControlY float64 `json:"cy"`
	Straight bool    `json:"straight"`
}

type artifactViewport struct {
	ShiftX float64 `json:"shift_x"`
	ShiftY float64 `json:"shift_y"`
	Zoom   float64 `json:"zoom"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// buildArtifact snapshots a bound engine into its renderable form,
// auto-fitting a viewport to the final bounding box.
func buildArtifact(e *layout.Engine) (layoutArtifact, error) {
	g := e.Graph()
	if g == nil {
		return layoutArtifact{}, fmt.Errorf("build artifact: %w", layout.ErrNotBound)
	}
	cfg := e.Config()

	art := layoutArtifact{Nodes: make([]artifactNode, 0, g.VertexCount())}
	for _, v := range g.Vertices() {
		p, _ := e.Position(v.ID)
		art.Nodes = append(art.Nodes, artifactNode{
			ID:   v.Element,
			X:    p.X,
			Y:    p.Y,
			Size: e.NodeSize(v.ID),
		})
	}

	for _, spot := range e.Spots() {
		from, _ := g.Vertex(spot.U)
		to, _ := g.Vertex(spot.V)
		for _, c := range e.SpotCurves(spot) {
			edge, _ := g.Edge(c.Edge)
			art.Edges = append(art.Edges, artifactEdge{
				Label:    edge.Element,
				From:     from.Element,
				To:       to.Element,
				ControlX: c.Control.X,
				ControlY: c.Control.Y,
				Straight: c.Straight,
			})
		}
	}

	view := viewport.New(cfg.CanvasWidth, cfg.CanvasHeight)
	if b, ok := e.Bounds(); ok {
		view.Fit(b, g.VertexCount(), cfg.PaddingFactor)
	}
	art.Viewport = artifactViewport{
		ShiftX: view.Shift.X,
		ShiftY: view.Shift.Y,
		Zoom:   view.Zoom,
		Width:  view.Width,
		Height: view.Height,
	}
	return art, nil
}

// simulate runs a fresh engine over g for the requested number of
// steps. Shared by the layout, render, and serve paths.
func simulate(cfg layout.Config, g *graph.Graph, steps int) (*layout.Engine, error) {
	eng, err := layout.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := eng.Bind(g); err != nil {
		return nil, err
	}
	if err := eng.Advance(steps); err != nil {
		return nil, err
	}
	return eng, nil
}
