// Package core provides the per-search storage used by the traversal
// strategies: a dense node arena (Registry) and an append-only search graph
// (Graph).
//
// Both structures are built for one search invocation and then discarded.
// Nothing is ever removed, so a NodeID stays valid for the lifetime of its
// owner and can be used as a plain slice index.
//
// Registry[S]
//
//	A growable table of states indexed by NodeID, plus a hash index from
//	state to NodeID. Register assigns the next dense ID on first sighting and
//	returns the existing ID afterwards, so the mapping is injective and stable.
//
// Graph
//
//	A directed graph over NodeIDs that records the discovery tree: one edge
//	parent → child per discovery event. AddNode hands out dense IDs in the
//	same order as Registry.Register, which lets a caller keep both in lockstep.
//
// Core Methods:
//
//	// Registry
//	Register(s S) (id NodeID, added bool)  // O(1) amortized
//	Lookup(s S) (NodeID, bool)             // O(1)
//	State(id NodeID) (S, bool)             // O(1)
//	Len() int                              // O(1)
//
//	// Graph
//	AddNode() NodeID                       // O(1) amortized
//	AddEdge(from, to NodeID) error         // O(1) amortized
//	Children(id NodeID) ([]NodeID, error)  // O(1), shares storage
//	Edges() []Edge                         // O(E) copy, insertion order
//
// Concurrency:
//
//	Neither type is safe for concurrent use. A search owns its storage
//	exclusively and runs synchronously.
package core
