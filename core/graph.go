package core

import "fmt"

// Graph is an append-only directed graph over dense NodeIDs.
//
// children[id] lists the nodes discovered from id in discovery order;
// edges keeps every edge in insertion order for export.
type Graph struct {
	children [][]NodeID
	edges    []Edge
}

// NewGraph returns an empty graph with room for sizeHint nodes.
func NewGraph(sizeHint int) *Graph {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Graph{
		children: make([][]NodeID, 0, sizeHint),
		edges:    make([]Edge, 0, sizeHint),
	}
}

// AddNode appends a node and returns its ID (the current node count).
//
// Panics with ErrArenaFull once MaxNodeID nodes exist.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() NodeID {
	if len(g.children) > int(MaxNodeID) {
		panic(ErrArenaFull)
	}
	g.children = append(g.children, nil)

	return NodeID(len(g.children) - 1)
}

// HasNode reports whether id exists in g.
func (g *Graph) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.children)
}

// AddEdge records the directed edge from → to.
// Both endpoints must already exist; edges are never deduplicated.
func (g *Graph) AddEdge(from, to NodeID) error {
	if !g.HasNode(from) {
		return fmt.Errorf("%w: edge source %d", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return fmt.Errorf("%w: edge target %d", ErrNodeNotFound, to)
	}
	g.children[from] = append(g.children[from], to)
	g.edges = append(g.edges, Edge{From: from, To: to})

	return nil
}

// Children returns the nodes discovered from id, in discovery order.
// The returned slice shares storage with g and must not be modified.
func (g *Graph) Children(id NodeID) ([]NodeID, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return g.children[id], nil
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.children) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
