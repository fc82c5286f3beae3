package search

import (
	"fmt"

	"github.com/makargravanov/state-space-searching/core"
	"github.com/makargravanov/state-space-searching/pouring"
)

// Space is the lazily materialized search space of one invocation:
// the node registry and the discovery graph, kept in lockstep so that a
// NodeID names the same node in both.
//
// A Space is single-use. Strategies differ in how they overwrite parent
// links, and the discovery order a strategy leaves behind would bias the
// next one, so every run must start from a fresh Space.
type Space struct {
	reg   *core.Registry[pouring.State]
	graph *core.Graph
}

// NewSpace returns a Space seeded with the initial state, and that state's NodeID.
func NewSpace(initial pouring.State) (*Space, core.NodeID) {
	sp := &Space{
		reg:   core.NewRegistry[pouring.State](16),
		graph: core.NewGraph(16),
	}
	root, _ := sp.register(initial)

	return sp, root
}

// register adds s to both the registry and the graph if it is new.
func (sp *Space) register(s pouring.State) (core.NodeID, bool) {
	id, added := sp.reg.Register(s)
	if !added {
		return id, false
	}
	if gid := sp.graph.AddNode(); gid != id {
		panic(fmt.Sprintf("search: registry id %d and graph id %d diverged", id, gid))
	}

	return id, true
}

// Discover registers s as seen from parent. On first sighting it assigns a
// NodeID, adds the graph edge parent → child, and reports isNew == true.
// Otherwise it returns the existing ID and leaves the graph untouched, so
// every child has exactly one discovery edge.
func (sp *Space) Discover(parent core.NodeID, s pouring.State) (id core.NodeID, isNew bool) {
	id, isNew = sp.register(s)
	if !isNew {
		return id, false
	}
	if err := sp.graph.AddEdge(parent, id); err != nil {
		panic(fmt.Sprintf("search: discovery edge: %v", err))
	}

	return id, true
}

// Lookup returns the NodeID of s if it has been discovered.
func (sp *Space) Lookup(s pouring.State) (core.NodeID, bool) {
	return sp.reg.Lookup(s)
}

// State returns the state of node id.
func (sp *Space) State(id core.NodeID) (pouring.State, bool) {
	return sp.reg.State(id)
}

// MustState returns the state of a node handed out by this Space.
// It panics with core.ErrNodeNotFound for any other id.
func (sp *Space) MustState(id core.NodeID) pouring.State { return sp.reg.MustState(id) }

// Has reports whether id is registered.
func (sp *Space) Has(id core.NodeID) bool { return sp.reg.Has(id) }

// Len returns the number of distinct states discovered so far.
func (sp *Space) Len() int { return sp.reg.Len() }

// States returns all discovered states in NodeID order.
func (sp *Space) States() []pouring.State { return sp.reg.States() }

// Edges returns the discovery edges in insertion order.
func (sp *Space) Edges() []core.Edge { return sp.graph.Edges() }

// Children returns the nodes first discovered from id.
func (sp *Space) Children(id core.NodeID) ([]core.NodeID, error) {
	return sp.graph.Children(id)
}

// Validate is the argument check every strategy runs before touching sp.
func Validate(sp *Space, start core.NodeID) error {
	if sp == nil {
		return ErrSpaceNil
	}
	if !sp.Has(start) {
		return fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	return nil
}
