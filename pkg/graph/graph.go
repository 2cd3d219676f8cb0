// Package graph provides the undirected multigraph consumed by the
// layout engine.
//
// Vertices and edges are identified by arena-indexed handles ([VertexID],
// [EdgeID]) owned by the [Graph] that created them. Handles are stable
// small integers assigned in insertion order, which makes them cheap map
// keys for position and force state and gives every enumeration a
// deterministic order.
//
// Parallel edges (multiple edges between the same vertex pair) are
// allowed and preserved; they are what the layout engine's edge-spot
// resolver disambiguates at render time. Self-loops are rejected: the
// spot and adjacency logic has no meaningful geometry for an edge whose
// endpoints coincide.
//
// Graph is not safe for concurrent use without external synchronization.
package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVertex is returned by [Graph.AddEdge] when an endpoint
	// handle does not belong to this graph.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are
	// the same vertex. Self-loops are not supported.
	ErrSelfLoop = errors.New("self-loop edges are not supported")
)

// VertexID is a stable handle for a vertex, assigned by [Graph.AddVertex]
// in insertion order starting at 0.
type VertexID int

// EdgeID is a stable handle for an edge, assigned by [Graph.AddEdge]
// in insertion order starting at 0.
type EdgeID int

// Vertex is a graph vertex: a handle plus an opaque element value used
// as its display label.
type Vertex struct {
	ID      VertexID
	Element string
}

// Edge is an undirected edge between two vertices. U and V record the
// order the endpoints were given to AddEdge, but no operation
// distinguishes direction: the pair is unordered.
type Edge struct {
	ID      EdgeID
	Element string
	U, V    VertexID
}

// Opposite returns the endpoint of e other than id.
// The second return is false when id is not an endpoint of e.
func (e Edge) Opposite(id VertexID) (VertexID, bool) {
	switch id {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	}
	return 0, false
}

// Graph is a mutable undirected multigraph. The zero value is not
// usable - use [New].
type Graph struct {
	vertices []Vertex
	edges    []Edge
	incident map[VertexID][]EdgeID
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{incident: make(map[VertexID][]EdgeID)}
}

// AddVertex adds a vertex with the given element value and returns its
// handle. Element values need not be unique.
func (g *Graph) AddVertex(element string) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{ID: id, Element: element})
	return id
}

// AddEdge adds an undirected edge between u and v and returns its
// handle. Returns ErrUnknownVertex if either endpoint does not exist,
// or ErrSelfLoop if u == v. Parallel edges are allowed.
func (g *Graph) AddEdge(element string, u, v VertexID) (EdgeID, error) {
	if !g.has(u) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownVertex, u)
	}
	if !g.has(v) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}
	if u == v {
		return 0, fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, Element: element, U: u, V: v})
	g.incident[u] = append(g.incident[u], id)
	g.incident[v] = append(g.incident[v], id)
	return id, nil
}

func (g *Graph) has(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// Vertex returns the vertex with the given handle and true, or a zero
// Vertex and false if the handle is not part of this graph.
func (g *Graph) Vertex(id VertexID) (Vertex, bool) {
	if !g.has(id) {
		return Vertex{}, false
	}
	return g.vertices[id], true
}

// Edge returns the edge with the given handle and true, or a zero Edge
// and false if the handle is not part of this graph.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, false
	}
	return g.edges[id], true
}

// Vertices returns a copy of all vertices in insertion order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Degree returns the number of edges incident to the vertex, counting
// parallel edges individually. Returns 0 for unknown handles.
func (g *Graph) Degree(id VertexID) int { return len(g.incident[id]) }

// IncidentEdges returns the handles of all edges incident to the
// vertex, in insertion order. The returned slice should be treated as a
// read-only view.
func (g *Graph) IncidentEdges(id VertexID) []EdgeID { return g.incident[id] }

// Adjacent reports whether at least one edge connects u and v.
func (g *Graph) Adjacent(u, v VertexID) bool {
	// Scan the smaller incidence list.
	a, b := u, v
	if len(g.incident[b]) < len(g.incident[a]) {
		a, b = b, a
	}
	for _, eid := range g.incident[a] {
		if other, ok := g.edges[eid].Opposite(a); ok && other == b {
			return true
		}
	}
	return false
}
