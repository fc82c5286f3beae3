package core

// Registry is a bidirectional State <-> NodeID mapping stored as an arena.
//
// states[id] holds the state for id; index maps a state back to its id.
// The two views are kept consistent by Register, the only mutator.
type Registry[S comparable] struct {
	states []S
	index  map[S]NodeID
}

// NewRegistry returns an empty registry with room for sizeHint states.
func NewRegistry[S comparable](sizeHint int) *Registry[S] {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Registry[S]{
		states: make([]S, 0, sizeHint),
		index:  make(map[S]NodeID, sizeHint),
	}
}

// Register returns the NodeID of s, assigning the next dense ID if s has not
// been seen before. added reports whether a new ID was created.
//
// Register panics with ErrArenaFull once MaxNodeID IDs are in use.
// Complexity: O(1) amortized.
func (r *Registry[S]) Register(s S) (id NodeID, added bool) {
	if id, ok := r.index[s]; ok {
		return id, false
	}
	if len(r.states) > int(MaxNodeID) {
		panic(ErrArenaFull)
	}
	id = NodeID(len(r.states))
	r.states = append(r.states, s)
	r.index[s] = id

	return id, true
}

// Lookup returns the NodeID registered for s.
func (r *Registry[S]) Lookup(s S) (NodeID, bool) {
	id, ok := r.index[s]

	return id, ok
}

// State returns the state stored under id.
func (r *Registry[S]) State(id NodeID) (S, bool) {
	if !r.Has(id) {
		var zero S
		return zero, false
	}

	return r.states[id], true
}

// MustState is State for ids the caller obtained from this registry.
// It panics with ErrNodeNotFound otherwise.
func (r *Registry[S]) MustState(id NodeID) S {
	if !r.Has(id) {
		panic(ErrNodeNotFound)
	}

	return r.states[id]
}

// Has reports whether id has been handed out by this registry.
func (r *Registry[S]) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(r.states)
}

// Len returns the number of distinct states registered.
func (r *Registry[S]) Len() int { return len(r.states) }

// States returns a copy of the arena in NodeID order.
func (r *Registry[S]) States() []S {
	out := make([]S, len(r.states))
	copy(out, r.states)

	return out
}
