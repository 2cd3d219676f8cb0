// Package layout implements the force-directed layout simulation: the
// force model, the per-step iteration loop, the multi-edge spot
// resolver, and pointer hit-testing over the resulting layout.
//
// An [Engine] is a small state machine with two states. Idle: no graph
// bound, no position state. Bound: a graph is attached, every vertex has
// a randomly spawned position and a force accumulator, and the edge-spot
// cache and degree bounds are built. [Engine.Bind] moves Idle→Bound and
// [Engine.Unbind] back.
//
// The simulation never detects convergence: [Engine.Step] and
// [Engine.Advance] run exactly as instructed and termination policy is
// entirely the caller's. An animating host typically runs
// Config.StepsPerFrame steps per rendered frame.
//
// Engines are single-threaded. Step and Advance are pure computation
// plus in-place mutation and run to completion before returning; a host
// that renders concurrently with simulation must serialize access, e.g.
// simulate-then-render within one frame boundary.
package layout

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cpereira/forcedraw/pkg/geom"
	"github.com/cpereira/forcedraw/pkg/graph"
)

var (
	// ErrNotBound is returned by operations that require a bound graph.
	ErrNotBound = errors.New("no graph bound")

	// ErrEmptyGraph is returned by [Engine.Bind] for graphs without
	// vertices: the attraction damping term divides by the vertex count,
	// so a bound graph must have at least one vertex.
	ErrEmptyGraph = errors.New("graph has no vertices")

	// ErrNoActiveDrag is returned by [Engine.UpdateDrag] when no drag is
	// in progress.
	ErrNoActiveDrag = errors.New("no active drag")
)

// Engine owns per-vertex position and accumulated-force state and runs
// the force-directed simulation over a bound graph.
//
// The per-step cost is O(V²): every ordered pair of distinct vertices
// contributes a repulsion term, plus an attraction term for adjacent
// pairs. Spatial approximations are out of scope here, but the repulsion
// pass can be substituted wholesale with [Engine.SetRepulsion].
type Engine struct {
	cfg Config
	rng *rand.Rand

	g     *graph.Graph
	order []graph.VertexID // bind-time vertex enumeration, insertion order
	pos   map[graph.VertexID]geom.Point
	force map[graph.VertexID]geom.Point

	minDegree int
	maxDegree int
	spots     []Spot

	repulsion ForceFunc

	dragged  graph.VertexID
	dragging bool
}

// New creates an idle engine with the given parameters.
// Returns an error wrapping [ErrInvalidConfig] if cfg does not validate.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		repulsion: Repelling,
	}, nil
}

// Config returns the engine's parameters.
func (e *Engine) Config() Config { return e.cfg }

// SetRepulsion replaces the pairwise repulsion function used by the
// simulation. Passing nil restores the default inverse-square
// [Repelling]. The attraction pass and the rest of the engine are
// unaffected.
func (e *Engine) SetRepulsion(f ForceFunc) {
	if f == nil {
		f = Repelling
	}
	e.repulsion = f
}

// Bound reports whether a graph is currently bound.
func (e *Engine) Bound() bool { return e.g != nil }

// Graph returns the bound graph, or nil when idle.
func (e *Engine) Graph() *graph.Graph { return e.g }

// Bind attaches a graph, assigns every vertex a random initial position
// inside the size-dependent spawn region, and rebuilds the edge-spot
// cache and degree bounds. Any previous binding (including drag state)
// is discarded first.
//
// Returns [ErrEmptyGraph] for a graph with no vertices. The spot cache
// and degree bounds are snapshots: topology changes made to g after
// Bind are not observed until the graph is re-bound.
func (e *Engine) Bind(g *graph.Graph) error {
	if g == nil {
		return fmt.Errorf("bind: %w", ErrNotBound)
	}
	if g.VertexCount() == 0 {
		return fmt.Errorf("bind: %w", ErrEmptyGraph)
	}

	e.Unbind()
	e.g = g

	n := g.VertexCount()
	e.order = make([]graph.VertexID, 0, n)
	e.pos = make(map[graph.VertexID]geom.Point, n)
	e.force = make(map[graph.VertexID]geom.Point, n)

	// Spawn region grows with n^0.3 so larger graphs spread out; the
	// padding margin keeps initial positions off the canvas edge.
	spread := math.Pow(float64(n), 0.3)
	padX := e.cfg.PaddingFactor * e.cfg.CanvasWidth
	padY := e.cfg.PaddingFactor * e.cfg.CanvasHeight
	spanX := spread*e.cfg.CanvasWidth - 2*padX
	spanY := spread*e.cfg.CanvasHeight - 2*padY

	e.minDegree = math.MaxInt
	e.maxDegree = 0
	for _, v := range g.Vertices() {
		e.order = append(e.order, v.ID)
		e.pos[v.ID] = geom.Point{
			X: e.rng.Float64()*spanX + padX,
			Y: e.rng.Float64()*spanY + padY,
		}
		e.force[v.ID] = geom.Point{}

		if d := g.Degree(v.ID); d < e.minDegree {
			e.minDegree = d
		}
		if d := g.Degree(v.ID); d > e.maxDegree {
			e.maxDegree = d
		}
	}

	e.spots = resolveSpots(g)
	return nil
}

// Unbind detaches the graph and discards all position, force, spot and
// drag state, returning the engine to idle.
func (e *Engine) Unbind() {
	e.g = nil
	e.order = nil
	e.pos = nil
	e.force = nil
	e.spots = nil
	e.minDegree = 0
	e.maxDegree = 0
	e.dragging = false
}

// Step runs a single simulation step: reset every force accumulator,
// accumulate repulsion over all ordered pairs of distinct vertices plus
// attraction over adjacent pairs, then displace every vertex by
// Speed·force.
//
// At most one vertex may be excluded from the displacement phase; its
// position is left untouched so a host may set it directly (dragging).
// An explicit excluded argument takes precedence over a vertex held via
// [Engine.BeginDrag]; with neither, no vertex is excluded. Additional
// excluded arguments beyond the first are ignored.
func (e *Engine) Step(excluded ...graph.VertexID) error {
	if e.g == nil {
		return fmt.Errorf("step: %w", ErrNotBound)
	}
	skip, haveSkip := e.excludedVertex(excluded)
	e.step(skip, haveSkip)
	return nil
}

// Advance runs Step exactly n times sequentially. Each step sees the
// previous step's output; there is no batch shortcut. A negative n is
// treated as zero.
func (e *Engine) Advance(n int, excluded ...graph.VertexID) error {
	if e.g == nil {
		return fmt.Errorf("advance: %w", ErrNotBound)
	}
	skip, haveSkip := e.excludedVertex(excluded)
	for i := 0; i < n; i++ {
		e.step(skip, haveSkip)
	}
	return nil
}

func (e *Engine) excludedVertex(excluded []graph.VertexID) (graph.VertexID, bool) {
	if len(excluded) > 0 {
		return excluded[0], true
	}
	if e.dragging {
		return e.dragged, true
	}
	return 0, false
}

func (e *Engine) step(skip graph.VertexID, haveSkip bool) {
	for _, id := range e.order {
		e.force[id] = geom.Point{}
	}

	n := e.g.VertexCount()
	for _, a := range e.order {
		pa := e.pos[a]
		acc := e.force[a]
		for _, b := range e.order {
			if a == b {
				continue
			}
			pb := e.pos[b]
			acc = acc.Add(e.repulsion(pa, pb, e.cfg.RepulsionScale))
			if e.g.Adjacent(a, b) {
				acc = acc.Add(attractive(pa, pb, n, e.cfg.SpringForce, e.cfg.SpringScale))
			}
		}
		e.force[a] = acc
	}

	for _, id := range e.order {
		if haveSkip && id == skip {
			continue
		}
		e.pos[id] = e.pos[id].Add(e.force[id].Scale(e.cfg.Speed))
	}
}

// Position returns the current position of a vertex.
// The second return is false when the engine is idle or the vertex is
// unknown.
func (e *Engine) Position(id graph.VertexID) (geom.Point, bool) {
	p, ok := e.pos[id]
	return p, ok
}

// SetPosition overwrites a vertex position directly, bypassing the
// simulation. Hosts use this for the vertex being dragged; tests use it
// to construct exact scenarios.
func (e *Engine) SetPosition(id graph.VertexID, p geom.Point) error {
	if e.g == nil {
		return fmt.Errorf("set position: %w", ErrNotBound)
	}
	if _, ok := e.pos[id]; !ok {
		return fmt.Errorf("set position: %w: %d", graph.ErrUnknownVertex, id)
	}
	e.pos[id] = p
	return nil
}

// Positions returns a copy of the current position map.
func (e *Engine) Positions() map[graph.VertexID]geom.Point {
	out := make(map[graph.VertexID]geom.Point, len(e.pos))
	for id, p := range e.pos {
		out[id] = p
	}
	return out
}

// Order returns the engine's vertex enumeration order (graph insertion
// order, fixed at bind time). The returned slice must not be modified.
func (e *Engine) Order() []graph.VertexID { return e.order }

// Bounds returns the axis-aligned bounding box over all current vertex
// positions, and false when the engine is idle.
func (e *Engine) Bounds() (geom.Rect, bool) {
	if e.g == nil {
		return geom.Rect{}, false
	}
	pts := make([]geom.Point, 0, len(e.order))
	for _, id := range e.order {
		pts = append(pts, e.pos[id])
	}
	return geom.BoundsOf(pts)
}

// DegreeBounds returns the minimum and maximum vertex degree observed
// at bind time. Both are zero when the engine is idle.
func (e *Engine) DegreeBounds() (min, max int) {
	return e.minDegree, e.maxDegree
}

// NodeSize returns the suggested on-screen diameter for a vertex: the
// base node size, plus a per-degree term when the bound graph's degrees
// are not all equal. Degree-dependent sizing is advisory and frozen at
// bind time along with the degree bounds.
func (e *Engine) NodeSize(id graph.VertexID) float64 {
	if e.g == nil {
		return e.cfg.NodeSize
	}
	if e.minDegree != e.maxDegree {
		return e.cfg.NodeSize + float64(e.g.Degree(id))*e.cfg.NodeDegreeScaler
	}
	return e.cfg.NodeSize
}
