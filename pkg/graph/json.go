package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Node-link JSON is the wire format for graphs:
//
//	{
//	  "nodes": [{"id": "a"}, {"id": "b"}],
//	  "edges": [{"from": "a", "to": "b", "label": "e1"}]
//	}
//
// Node ids must be unique within a file; they become vertex element
// values on read. Parallel edges are expressed by repeating a from/to
// pair.

var (
	// ErrDuplicateNodeID is returned by [ReadGraph] when two nodes in a
	// file share the same id.
	ErrDuplicateNodeID = errors.New("duplicate node id")

	// ErrUnknownEndpoint is returned by [ReadGraph] when an edge
	// references a node id that is not declared in the nodes list.
	ErrUnknownEndpoint = errors.New("edge references unknown node id")
)

type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges,omitempty"`
}

type jsonNode struct {
	ID string `json:"id"`
}

type jsonEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// ReadGraph parses node-link JSON from r into a new Graph.
// Vertex handles are assigned in the order nodes appear in the file.
func ReadGraph(r io.Reader) (*Graph, error) {
	var jg jsonGraph
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jg); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}

	g := New()
	ids := make(map[string]VertexID, len(jg.Nodes))
	for _, n := range jg.Nodes {
		if _, exists := ids[n.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		ids[n.ID] = g.AddVertex(n.ID)
	}
	for _, e := range jg.Edges {
		u, ok := ids[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, e.From)
		}
		v, ok := ids[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, e.To)
		}
		if _, err := g.AddEdge(e.Label, u, v); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ReadGraphFile reads node-link JSON from a file.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGraph(f)
}

// WriteGraph writes g as indented node-link JSON to w. Vertex element
// values are used as node ids, so they must be unique for the output to
// round-trip through [ReadGraph].
func WriteGraph(g *Graph, w io.Writer) error {
	jg := jsonGraph{Nodes: make([]jsonNode, 0, g.VertexCount())}
	for _, v := range g.Vertices() {
		jg.Nodes = append(jg.Nodes, jsonNode{ID: v.Element})
	}
	for _, e := range g.Edges() {
		from, _ := g.Vertex(e.U)
		to, _ := g.Vertex(e.V)
		jg.Edges = append(jg.Edges, jsonEdge{From: from.Element, To: to.Element, Label: e.Element})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jg)
}

// WriteGraphFile writes g as node-link JSON to a file.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteGraph(g, f)
}
