package layout

import (
	"github.com/cpereira/forcedraw/pkg/geom"
	"github.com/cpereira/forcedraw/pkg/graph"
)

// Spot groups all edges that connect the same unordered vertex pair, so
// parallel edges can be drawn as distinct curves instead of overlapping
// straight lines. U < V always holds; Edges preserves insertion order.
//
// Spots are a rendering aid only: the simulation applies one attraction
// term per adjacent pair regardless of edge multiplicity.
type Spot struct {
	U, V  graph.VertexID
	Edges []graph.EdgeID
}

// resolveSpots partitions every edge of g into a spot keyed by its
// unordered endpoint pair. The partition is total and disjoint: each
// edge lands in exactly one spot, and vertices without edges produce no
// spots. Spots appear in order of their first edge.
func resolveSpots(g *graph.Graph) []Spot {
	type pair struct{ a, b graph.VertexID }
	index := make(map[pair]int)
	var spots []Spot
	for _, e := range g.Edges() {
		a, b := e.U, e.V
		if b < a {
			a, b = b, a
		}
		k := pair{a, b}
		if i, ok := index[k]; ok {
			spots[i].Edges = append(spots[i].Edges, e.ID)
			continue
		}
		index[k] = len(spots)
		spots = append(spots, Spot{U: a, V: b, Edges: []graph.EdgeID{e.ID}})
	}
	return spots
}

// Spots returns the edge-spot cache built at bind time, or nil when the
// engine is idle. The slice is shared; treat it as read-only.
func (e *Engine) Spots() []Spot { return e.spots }

// EdgeCurve describes how to draw one edge of a spot in model space.
// For a straight edge the control point equals the midpoint, so drawing
// every curve as a quadratic Bézier is always correct; Straight lets a
// renderer use a plain segment instead.
type EdgeCurve struct {
	Edge     graph.EdgeID
	From     geom.Point
	To       geom.Point
	Control  geom.Point
	Straight bool
}

// SpotCurves lays out the edges of a spot at the vertices' current
// positions. A spot with a single edge yields one straight segment. A
// spot with k > 1 edges yields k quadratic curves whose control points
// fan out symmetrically on the perpendicular through the midpoint; the
// fan width grows with k. The exact widths are cosmetic, not a
// correctness invariant.
func (e *Engine) SpotCurves(s Spot) []EdgeCurve {
	from := e.pos[s.U]
	to := e.pos[s.V]

	k := len(s.Edges)
	if k == 1 {
		return []EdgeCurve{{
			Edge:     s.Edges[0],
			From:     from,
			To:       to,
			Control:  geom.Midpoint(from, to),
			Straight: true,
		}}
	}

	angle := geom.ReciprocalAngle(from, to)
	middle := geom.Midpoint(from, to)
	shiftMax := float64(k)*5 + 10
	edgeShift := shiftMax * 2 / float64(k)

	curves := make([]EdgeCurve, 0, k)
	for i, id := range s.Edges {
		shift := shiftMax - float64(i)*edgeShift*2
		curves = append(curves, EdgeCurve{
			Edge:    id,
			From:    from,
			To:      to,
			Control: geom.Shift(middle, angle, shift),
		})
	}
	return curves
}
