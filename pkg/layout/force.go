package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpereira/forcedraw/pkg/geom"
)

// Stabilizer is the minimum distance used in force computations. Flooring
// the distance here keeps both force functions finite when two vertices
// spawn on top of each other or drift arbitrarily close.
const Stabilizer = 1.0

// ErrInvalidVertexCount is returned by [Attractive] when the vertex count
// fed into the damping term is zero or negative.
var ErrInvalidVertexCount = errors.New("vertex count must be positive")

// ForceFunc computes a pairwise force vector acting on from, given the
// positions of the two entities and a scale parameter. It is the
// substitution point for the engine's repulsion pass: a host targeting
// large graphs can install an approximate variant with
// [Engine.SetRepulsion] without touching the rest of the engine.
type ForceFunc func(from, to geom.Point, scale float64) geom.Point

// Attractive computes the spring force acting on from, directed toward
// to, with magnitude SpringForce·ln(distance/scale)/vertexCount. The
// distance is floored at [Stabilizer]. The vertexCount divisor damps the
// attraction so layouts stay stable as graphs grow; a non-positive count
// is rejected rather than silently producing Inf.
//
// Attraction applies once per adjacent vertex pair regardless of how
// many parallel edges connect them.
func Attractive(from, to geom.Point, vertexCount int, force, scale float64) (geom.Point, error) {
	if vertexCount <= 0 {
		return geom.Point{}, fmt.Errorf("%w: got %d", ErrInvalidVertexCount, vertexCount)
	}
	return attractive(from, to, vertexCount, force, scale), nil
}

// attractive is the unchecked hot-path variant. The engine establishes
// vertexCount >= 1 at bind time.
func attractive(from, to geom.Point, vertexCount int, force, scale float64) geom.Point {
	dir := geom.Normalize(geom.Vector(from, to))
	return dir.Scale(attractiveScalar(geom.Dist(from, to), vertexCount, force, scale))
}

func attractiveScalar(distance float64, vertexCount int, force, scale float64) float64 {
	if distance < Stabilizer {
		distance = Stabilizer
	}
	return force * math.Log(distance/scale) / float64(vertexCount)
}

// Repelling computes the repulsive force acting on from, directed away
// from to, with magnitude scale/distance². The distance is floored at
// [Stabilizer] to avoid blow-up when two entities nearly coincide.
// Repulsion applies between every pair of distinct vertices, adjacent
// or not.
func Repelling(from, to geom.Point, scale float64) geom.Point {
	dir := geom.Normalize(geom.Vector(from, to))
	return dir.Scale(-repellingScalar(geom.Dist(from, to), scale))
}

func repellingScalar(distance, scale float64) float64 {
	if distance < Stabilizer {
		distance = Stabilizer
	}
	return scale / (distance * distance)
}
