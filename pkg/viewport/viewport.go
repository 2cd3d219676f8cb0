// Package viewport maintains the shift/zoom state that maps layout
// model coordinates onto a screen canvas, including bounding-box
// auto-fit.
//
// The forward transform is screen = model·zoom + shift, applied
// componentwise. Zoom is screen units per model unit; shift is a
// screen-space translation.
//
// Zero zoom is a preserved degenerate state rather than an error: the
// inverse transform falls back to an identity scale (model =
// screen − shift), matching how interactive hosts have historically
// treated a collapsed zoom.
package viewport

import "github.com/cpereira/forcedraw/pkg/geom"

// Viewport holds the transform between model and screen space for one
// canvas. The zero value is usable but renders everything at zoom 0;
// use [New] for the conventional identity start.
type Viewport struct {
	// Shift is the screen-space translation.
	Shift geom.Point
	// Zoom is the scale in screen units per model unit.
	Zoom float64
	// Width and Height are the canvas dimensions in screen units,
	// used by Fit.
	Width  float64
	Height float64
}

// New returns a viewport for a canvas of the given size, with zoom 1
// and no shift.
func New(width, height float64) *Viewport {
	return &Viewport{Zoom: 1, Width: width, Height: height}
}

// ToScreen maps a model-space point to screen space.
func (v *Viewport) ToScreen(p geom.Point) geom.Point {
	return geom.Point{
		X: p.X*v.Zoom + v.Shift.X,
		Y: p.Y*v.Zoom + v.Shift.Y,
	}
}

// ToModel maps a screen-space point back to model space. When zoom is
// zero the scale degenerates and ToModel applies only the inverse
// shift.
func (v *Viewport) ToModel(p geom.Point) geom.Point {
	if v.Zoom == 0 {
		return geom.Point{X: p.X - v.Shift.X, Y: p.Y - v.Shift.Y}
	}
	return geom.Point{
		X: (p.X - v.Shift.X) / v.Zoom,
		Y: (p.Y - v.Shift.Y) / v.Zoom,
	}
}

// Fit sets zoom and shift so that the model-space bounding box b is
// fully visible on the canvas with a padding margin: zoom is the
// smaller of the width-fit and height-fit ratios scaled by
// (1 − padding), and shift maps the center of b to the canvas center.
//
// Auto-fit is only meaningful for two or more vertices; callers pass
// the vertex count and Fit leaves the viewport unchanged when it is
// below two. A degenerate box (zero width or height from coincident
// positions) produces an infinite zoom; like zero zoom, this edge case
// is preserved rather than silently clamped.
func (v *Viewport) Fit(b geom.Rect, vertexCount int, padding float64) {
	if vertexCount < 2 {
		return
	}
	zw := (1 - padding) * v.Width / b.Width()
	zh := (1 - padding) * v.Height / b.Height()
	v.Zoom = zw
	if zh < zw {
		v.Zoom = zh
	}
	c := b.Center()
	v.Shift = geom.Point{
		X: v.Width/2 - v.Zoom*c.X,
		Y: v.Height/2 - v.Zoom*c.Y,
	}
}

// Pan translates the view by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.Shift.X += dx
	v.Shift.Y += dy
}

// ZoomAround multiplies the zoom by factor while keeping the
// screen-space point p fixed, so interactive zooming centers on the
// pointer.
func (v *Viewport) ZoomAround(factor float64, p geom.Point) {
	m := v.ToModel(p)
	v.Zoom *= factor
	after := v.ToScreen(m)
	v.Shift.X += p.X - after.X
	v.Shift.Y += p.Y - after.Y
}
