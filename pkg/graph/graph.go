package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Edge is an ordered pair of node identifiers. For undirected interpretations
// (circular, bipartite and force-directed layouts) the order carries no
// meaning; the hierarchical layout reads From → To as direction. Self-loops
// (From == To) and parallel edges are permitted.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// View is the read-only capability interface the layout engine requires.
// Callers with their own graph representation implement View directly and
// avoid copying; [Graph] is a ready-made implementation for everyone else.
//
// Enumeration order must be stable across calls on an unchanged graph: every
// layout strategy derives placement order from it, and layout determinism is
// only as good as the view's enumeration determinism.
type View interface {
	// Nodes returns all node identifiers in stable enumeration order.
	Nodes() []string

	// Edges returns all edges in stable enumeration order. Parallel edges
	// appear once per occurrence.
	Edges() []Edge

	// Neighbors returns the nodes adjacent to id, ignoring edge direction.
	// The result order must be stable. Unknown ids yield nil.
	Neighbors(id string) []string

	// Degree returns the number of edges incident to id, counting self-loops
	// twice. Unknown ids yield 0.
	Degree(id string) int

	// NodeCount returns the number of nodes.
	NodeCount() int

	// EdgeCount returns the number of edges, counting parallel edges
	// individually.
	EdgeCount() int
}

// Graph is an insertion-ordered adjacency structure implementing [View].
// It tolerates self-loops and parallel edges and never mutates behind the
// layout engine's back during a layout call.
//
// The zero value is not usable - use [New]. Graph is not safe for concurrent
// mutation without external synchronization; concurrent reads are fine.
type Graph struct {
	order    []string
	index    map[string]int
	edges    []Edge
	adjacent map[string][]string
	degree   map[string]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		index:    make(map[string]int),
		adjacent: make(map[string][]string),
		degree:   make(map[string]int),
	}
}

// AddNode adds a node. Returns ErrInvalidNodeID for empty ids and
// ErrDuplicateNodeID when the id is already present.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.index[id]; exists {
		return ErrDuplicateNodeID
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	return nil
}

// AddEdge adds a directed edge between two existing nodes. Self-loops and
// parallel edges are allowed. Returns ErrUnknownSourceNode or
// ErrUnknownTargetNode when an endpoint is missing.
func (g *Graph) AddEdge(from, to string) error {
	if _, ok := g.index[from]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.index[to]; !ok {
		return ErrUnknownTargetNode
	}
	g.edges = append(g.edges, Edge{From: from, To: to})
	if from == to {
		g.adjacent[from] = append(g.adjacent[from], from)
		g.degree[from] += 2
		return nil
	}
	g.adjacent[from] = append(g.adjacent[from], to)
	g.adjacent[to] = append(g.adjacent[to], from)
	g.degree[from]++
	g.degree[to]++
	return nil
}

// Has reports whether the node exists.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Nodes returns all node identifiers in insertion order.
// The returned slice is a copy.
func (g *Graph) Nodes() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Neighbors returns the nodes adjacent to id in edge insertion order,
// ignoring direction. The returned slice should not be modified.
func (g *Graph) Neighbors(id string) []string { return g.adjacent[id] }

// Degree returns the number of edge endpoints at id. Self-loops count twice.
func (g *Graph) Degree(id string) int { return g.degree[id] }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges, counting parallel edges individually.
func (g *Graph) EdgeCount() int { return len(g.edges) }

var _ View = (*Graph)(nil)
