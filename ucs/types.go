// Package ucs implements uniform-cost search over the pouring state space.
//
// UCS pops nodes in order of cumulative path cost from the root using a
// min-priority queue. There is no decrease-key: a cheaper path to a known
// node pushes a second entry, and entries whose cost is above the best known
// cost are skipped on pop ("lazy deletion").
//
// Complexity:
//
//	- Time:  O((V + E) log E), V = states, E = relaxations (≤ 6V pushes plus improvements)
//	- Space: O(V + E) for cost/parent maps and the heap with stale entries.
//
// With the default unit step cost UCS finds paths of the same length as BFS.
// search.WithStepCost makes it weighted; step costs must be non-negative.
package ucs

import (
	"github.com/emirpasic/gods/utils"

	"github.com/makargravanov/state-space-searching/core"
)

// Name is the identifier reported by Strategy.Name.
const Name = "ucs"

// nodeItem is a frontier entry: a node and the path cost it was pushed with.
type nodeItem struct {
	id   core.NodeID
	cost int
}

// byCost orders nodeItems by ascending cost; it is the heap comparator.
var byCost utils.Comparator = func(a, b interface{}) int {
	return utils.IntComparator(a.(nodeItem).cost, b.(nodeItem).cost)
}
