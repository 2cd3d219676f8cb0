package layout

import (
	"github.com/cpereira/forcedraw/pkg/geom"
	"github.com/cpereira/forcedraw/pkg/graph"
	"github.com/cpereira/forcedraw/pkg/viewport"
)

// HitTest returns the vertex whose on-screen hitbox contains the
// screen-space pointer p, or false when nothing is hit or the engine is
// idle.
//
// A vertex's hitbox is an axis-aligned square centered at its
// transformed position, with side length [Engine.NodeSize] plus the
// configured border. When several hitboxes overlap the pointer, the
// vertex latest in graph insertion order wins; that order is fixed,
// so the tie-break is deterministic.
func (e *Engine) HitTest(view *viewport.Viewport, p geom.Point) (graph.VertexID, bool) {
	if e.g == nil {
		return 0, false
	}
	var found graph.VertexID
	hit := false
	for _, id := range e.order {
		c := view.ToScreen(e.pos[id])
		half := (e.NodeSize(id) + e.cfg.NodeBorder) / 2
		if p.X >= c.X-half && p.X <= c.X+half &&
			p.Y >= c.Y-half && p.Y <= c.Y+half {
			found, hit = id, true
		}
	}
	return found, hit
}
