package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// document is the canonical JSON shape for graphs: a node-link format with
// nodes listed in enumeration order and edges in insertion order. The format
// round-trips: import → export → re-import produces an identical graph.
type document struct {
	Nodes []string `json:"nodes"`
	Edges []Edge   `json:"edges"`
}

// Marshal converts a graph view to JSON bytes.
// Node and edge order follow the view's enumeration order, so output is
// deterministic for deterministic views.
func Marshal(v View) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(v, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes a graph view as indented JSON to w.
func Write(v View, w io.Writer) error {
	out := document{Nodes: v.Nodes(), Edges: v.Edges()}
	if out.Nodes == nil {
		out.Nodes = []string{}
	}
	if out.Edges == nil {
		out.Edges = []Edge{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}

// WriteFile writes a graph view to a JSON file with 0644 permissions.
func WriteFile(v View, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(v, f)
}

// Read decodes a JSON graph from r. Duplicate nodes or edges referencing
// unknown nodes surface as errors from [Graph.AddNode] and [Graph.AddEdge].
func Read(r io.Reader) (*Graph, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}
	g := New()
	for _, id := range data.Nodes {
		if err := g.AddNode(id); err != nil {
			return nil, fmt.Errorf("node %q: %w", id, err)
		}
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge %q -> %q: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// ReadFile reads a JSON file and returns the decoded graph.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
