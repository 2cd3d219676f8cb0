// Package geom provides the 2D vector math used by the layout engine.
//
// All operations work on [Point] values in model space. Points double as
// vectors: a force accumulator or a displacement is a Point whose
// coordinates are the vector components. Every function is pure and
// allocation-free.
//
// # Degenerate input
//
// [Normalize] is undefined for the zero vector: it divides by the vector
// length and returns NaN components when the length is zero. Callers must
// guarantee non-degenerate input. The layout engine relies on randomized
// initial placement to make exact coincidence of two vertices improbable,
// and floors distances before computing force directions, so the force
// paths never hit this case in practice.
package geom

import "math"

// Point is a position (or vector) in 2D model space.
type Point struct {
	X float64
	Y float64
}

// Add returns the componentwise sum p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p with both components multiplied by f.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Vector returns the connecting vector from a to b.
func Vector(a, b Point) Point {
	return Point{b.X - a.X, b.Y - a.Y}
}

// Normalize returns the unit vector pointing in the direction of v.
// The result is undefined (NaN components) when v is the zero vector;
// see the package documentation.
func Normalize(v Point) Point {
	length := math.Hypot(v.X, v.Y)
	return Point{v.X / length, v.Y / length}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Angle returns the shorter angle of the line through a and b, in
// radians restricted to (-π/2, π/2).
//
// This is the arctangent of the slope, not a four-quadrant atan2: two
// point pairs mirrored through either axis yield the same angle. That is
// exactly what perpendicular-offset placement needs, where only the
// orientation of the line matters, not its direction.
func Angle(a, b Point) float64 {
	return math.Atan((a.Y - b.Y) / (a.X - b.X))
}

// ReciprocalAngle returns the angle perpendicular to the line through
// a and b, i.e. Angle(a, b) - π/2.
func ReciprocalAngle(a, b Point) float64 {
	return Angle(a, b) - math.Pi/2
}

// Shift offsets p by the polar vector (angle, magnitude):
// p + magnitude·(cos angle, sin angle).
func Shift(p Point, angle, magnitude float64) Point {
	return Point{
		p.X + math.Cos(angle)*magnitude,
		p.Y + math.Sin(angle)*magnitude,
	}
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min Point
	Max Point
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r.
func (r Rect) Center() Point { return Midpoint(r.Min, r.Max) }

// BoundsOf returns the smallest Rect containing all points, and false
// when the slice is empty.
func BoundsOf(points []Point) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r, true
}
