package graph

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadGraph(t *testing.T) {
	in := `{
		"nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
		"edges": [
			{"from": "a", "to": "b", "label": "e1"},
			{"from": "a", "to": "b"},
			{"from": "b", "to": "c"}
		]
	}`

	g, err := ReadGraph(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadGraph error: %v", err)
	}
	if g.VertexCount() != 3 || g.EdgeCount() != 3 {
		t.Errorf("counts = %d/%d, want 3/3", g.VertexCount(), g.EdgeCount())
	}

	// Handles follow file order.
	if v, _ := g.Vertex(0); v.Element != "a" {
		t.Errorf("vertex 0 = %q, want a", v.Element)
	}

	// Parallel edges survive the read.
	if !g.Adjacent(0, 1) || g.Degree(0) != 2 {
		t.Errorf("parallel edges not preserved: degree(a) = %d", g.Degree(0))
	}

	if e, _ := g.Edge(0); e.Element != "e1" {
		t.Errorf("edge 0 label = %q, want e1", e.Element)
	}
}

func TestReadGraphDuplicateNode(t *testing.T) {
	in := `{"nodes": [{"id": "a"}, {"id": "a"}]}`
	_, err := ReadGraph(strings.NewReader(in))
	if !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("error = %v, want ErrDuplicateNodeID", err)
	}
}

func TestReadGraphUnknownEndpoint(t *testing.T) {
	in := `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "ghost"}]}`
	_, err := ReadGraph(strings.NewReader(in))
	if !errors.Is(err, ErrUnknownEndpoint) {
		t.Errorf("error = %v, want ErrUnknownEndpoint", err)
	}
}

func TestReadGraphRejectsSelfLoop(t *testing.T) {
	in := `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "a"}]}`
	_, err := ReadGraph(strings.NewReader(in))
	if !errors.Is(err, ErrSelfLoop) {
		t.Errorf("error = %v, want ErrSelfLoop", err)
	}
}

func TestWriteGraphRoundTrip(t *testing.T) {
	g := New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	if _, err := g.AddEdge("x", a, b); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("y", a, b); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("", b, c); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		t.Fatalf("WriteGraph error: %v", err)
	}

	g2, err := ReadGraph(&buf)
	if err != nil {
		t.Fatalf("ReadGraph error: %v", err)
	}
	if g2.VertexCount() != g.VertexCount() || g2.EdgeCount() != g.EdgeCount() {
		t.Errorf("round-trip counts = %d/%d, want %d/%d",
			g2.VertexCount(), g2.EdgeCount(), g.VertexCount(), g.EdgeCount())
	}
	for i, e := range g.Edges() {
		e2, _ := g2.Edge(EdgeID(i))
		if e2.Element != e.Element {
			t.Errorf("edge %d label = %q, want %q", i, e2.Element, e.Element)
		}
	}
}
