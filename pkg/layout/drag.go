package layout

import (
	"fmt"

	"github.com/cpereira/forcedraw/pkg/geom"
	"github.com/cpereira/forcedraw/pkg/graph"
)

// Dragging is modeled as explicit commands dispatched by the host
// rather than pointer callbacks mutating shared state: BeginDrag marks
// a vertex as held, UpdateDrag moves it, EndDrag releases it. While a
// vertex is held it is excluded from force application in [Engine.Step]
// and [Engine.Advance]; only one vertex can be held at a time, and a
// second BeginDrag replaces the first.

// BeginDrag marks a vertex as held. Returns [ErrNotBound] when idle or
// an error wrapping [graph.ErrUnknownVertex] for a foreign handle.
func (e *Engine) BeginDrag(id graph.VertexID) error {
	if e.g == nil {
		return fmt.Errorf("begin drag: %w", ErrNotBound)
	}
	if _, ok := e.pos[id]; !ok {
		return fmt.Errorf("begin drag: %w: %d", graph.ErrUnknownVertex, id)
	}
	e.dragged = id
	e.dragging = true
	return nil
}

// UpdateDrag moves the held vertex to the given model-space point.
// Returns [ErrNoActiveDrag] when no drag is in progress.
func (e *Engine) UpdateDrag(p geom.Point) error {
	if !e.dragging {
		return ErrNoActiveDrag
	}
	e.pos[e.dragged] = p
	return nil
}

// EndDrag releases the held vertex, if any. The vertex resumes normal
// force application on the next step.
func (e *Engine) EndDrag() {
	e.dragging = false
}

// Dragged returns the currently held vertex, and false when no drag is
// in progress.
func (e *Engine) Dragged() (graph.VertexID, bool) {
	return e.dragged, e.dragging
}
