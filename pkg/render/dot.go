// Package render turns a computed layout into viewable artifacts.
//
// It sits on the produced-to side of the engine boundary: it consumes
// vertex positions and suggested sizes and makes pixel decisions the
// engine never does. DOT export pins every node at its simulated
// position so Graphviz's neato engine renders the force-directed
// arrangement instead of computing its own.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/cpereira/forcedraw/pkg/layout"
)

// ToDOT converts a bound engine's current layout to Graphviz DOT with
// pinned node positions (neato "pos=x,y!" syntax). Node names are
// handle-derived and unique; vertex element values become labels, so
// they may repeat freely. Returns [layout.ErrNotBound] when the engine
// has no graph.
func ToDOT(e *layout.Engine) (string, error) {
	g := e.Graph()
	if g == nil {
		return "", fmt.Errorf("to dot: %w", layout.ErrNotBound)
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		p, _ := e.Position(v.ID)
		// DOT widths are in inches at 72 points per inch.
		fmt.Fprintf(&buf, "  n%d [label=%q, pos=\"%.4f,%.4f!\", width=%.4f];\n",
			v.ID, v.Element, p.X, p.Y, e.NodeSize(v.ID)/72)
	}

	buf.WriteString("\n")
	for _, ed := range g.Edges() {
		if ed.Element != "" {
			fmt.Fprintf(&buf, "  n%d -- n%d [label=%q];\n", ed.U, ed.V, ed.Element)
			continue
		}
		fmt.Fprintf(&buf, "  n%d -- n%d;\n", ed.U, ed.V)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
