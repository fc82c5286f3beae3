// Package dfs implements depth-first search over the lazily grown pouring
// state space.
//
// DFS shares the discovery protocol of package bfs and differs only in the
// frontier: a LIFO stack instead of a FIFO queue. The last successor pushed
// is expanded first, so the search dives along "pour B->A" chains before
// trying fills.
//
// Key properties:
//   - Same goal test and termination as BFS (goal popped, or stack empty).
//   - A node is pushed only when it is claimed by its first parent, so the
//     stack never holds more entries than there are discovered states.
//   - No optimality: the returned path may be longer than the BFS one.
//
// Complexity:
//
//   - Time:   O(V) pops, six successors each.
//   - Memory: O(V) for the stack, parent map and space.
//
// Errors:
//
//   - search.ErrSpaceNil        if the space is nil.
//   - search.ErrStartNotFound   if start is not registered.
package dfs

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/makargravanov/state-space-searching/core"
	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/search"
)

// Name is the identifier reported by Strategy.Name.
const Name = "dfs"

// Strategy adapts DFS to the search.Strategy interface.
type Strategy struct{}

// Name returns "dfs".
func (Strategy) Name() string { return Name }

// Search runs DFS; see the package function.
func (Strategy) Search(sp *search.Space, start core.NodeID, p pouring.Puzzle, opts ...search.Option) (search.Result, error) {
	return DFS(sp, start, p, opts...)
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	space   *search.Space     // lazily grown search space
	puzzle  pouring.Puzzle    // capacities and target
	opts    search.Options    // hooks
	stack   *arraystack.Stack // frontier of NodeIDs
	parent  search.ParentMap  // traversal tree, set once per node
	visited int               // counted pops
}

// DFS performs depth-first search on sp from start.
// Returns the Result or an argument error; an exhausted stack is Found == false.
func DFS(sp *search.Space, start core.NodeID, p pouring.Puzzle, opts ...search.Option) (search.Result, error) {
	// 1. Validate input
	if err := search.Validate(sp, start); err != nil {
		return search.Result{Goal: core.None}, err
	}

	// 2. Initialize walker with the root on the stack
	w := &dfsWalker{
		space:  sp,
		puzzle: p,
		opts:   search.Apply(opts...),
		stack:  arraystack.New(),
		parent: search.NewParentMap(start, sp.Len()),
	}
	w.stack.Push(start)

	// 3. Traverse
	goal, found := w.traverse()

	return search.Finish(sp, w.parent, goal, found, w.visited), nil
}

// traverse pops until the goal is found or the stack is empty.
func (w *dfsWalker) traverse() (core.NodeID, bool) {
	for {
		v, ok := w.stack.Pop()
		if !ok {
			return core.None, false
		}
		id := v.(core.NodeID)
		w.visited++

		s := w.space.MustState(id)
		w.opts.OnVisit(id, s)
		if w.puzzle.IsGoal(s) {
			return id, true
		}

		for _, next := range pouring.Successors(s, w.puzzle.CapacityA, w.puzzle.CapacityB) {
			nid, isNew := w.space.Discover(id, next)
			if isNew {
				w.opts.OnDiscover(id, nid, next)
			}
			if !w.parent.Claimed(nid) {
				w.parent[nid] = id
				w.stack.Push(nid)
			}
		}
	}
}
