package search

import (
	"slices"

	"github.com/makargravanov/state-space-searching/core"
	"github.com/makargravanov/state-space-searching/pouring"
)

// ParentMap records the traversal tree: child → parent, root → core.None.
// A node with an entry is "claimed" by the traversal.
type ParentMap map[core.NodeID]core.NodeID

// NewParentMap returns a parent map holding only root → core.None.
func NewParentMap(root core.NodeID, sizeHint int) ParentMap {
	pm := make(ParentMap, sizeHint)
	pm[root] = core.None

	return pm
}

// Claimed reports whether id already has a parent entry.
func (pm ParentMap) Claimed(id core.NodeID) bool {
	_, ok := pm[id]

	return ok
}

// Reconstruct walks parent links from goal back to the root sentinel and
// returns the states in root-to-goal order.
//
// It returns an empty (nil) path when goal has no parent entry, which is the
// case whenever the search did not succeed; callers gate on Result.Found.
// A walk longer than the map itself means the links form a cycle, and is
// also answered with an empty path.
func Reconstruct(sp *Space, parent ParentMap, goal core.NodeID) []pouring.State {
	if sp == nil || !parent.Claimed(goal) {
		return nil
	}
	path := make([]pouring.State, 0, 8)
	for cur := goal; cur != core.None; cur = parent[cur] {
		if len(path) > len(parent) {
			return nil
		}
		s, ok := sp.State(cur)
		if !ok {
			return nil
		}
		path = append(path, s)
		if !parent.Claimed(cur) {
			return nil
		}
	}
	slices.Reverse(path)

	return path
}

// Finish assembles the Result of a terminated traversal.
func Finish(sp *Space, parent ParentMap, goal core.NodeID, found bool, visited int) Result {
	if !found {
		return Result{Visited: visited, Goal: core.None}
	}
	path := Reconstruct(sp, parent, goal)

	return Result{Found: len(path) > 0, Path: path, Visited: visited, Goal: goal}
}
