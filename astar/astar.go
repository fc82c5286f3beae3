// Package astar implements A* best-first search over the pouring state space.
//
// A* orders its frontier by f = g + h, where g is the cost from the root and
// h is pouring.Heuristic: the smaller distance of either container to the
// target volume. Bookkeeping follows package ucs: a g-score map, lazy
// deletion of stale heap entries, and a duplicate push whenever a strictly
// lower g is found for a known node.
//
// Caveats:
//
//   - Ties on f are broken by the heap alone; there is no secondary key.
//     When several optimal paths exist, which one is returned is up to the
//     heap's internal order.
//   - The heuristic is neither admissible nor consistent for every capacity
//     pair, since one fill or empty can change a container by its full
//     capacity at unit cost. A* may then return a longer path than BFS while
//     still reporting success, and may expand a node more than once.
//
// Errors:
//
//   - search.ErrSpaceNil        if the space is nil.
//   - search.ErrStartNotFound   if start is not registered.
package astar

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"

	"github.com/makargravanov/state-space-searching/core"
	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/search"
)

// Name is the identifier reported by Strategy.Name.
const Name = "astar"

// Strategy adapts A* to the search.Strategy interface.
type Strategy struct{}

// Name returns "astar".
func (Strategy) Name() string { return Name }

// Search runs A*; see the package function.
func (Strategy) Search(sp *search.Space, start core.NodeID, p pouring.Puzzle, opts ...search.Option) (search.Result, error) {
	return AStar(sp, start, p, opts...)
}

// entry is a frontier element: priority f, the g it was pushed with, and the node.
type entry struct {
	f  int
	g  int
	id core.NodeID
}

// byF orders entries by f only.
var byF utils.Comparator = func(a, b interface{}) int {
	return utils.IntComparator(a.(entry).f, b.(entry).f)
}

// runner holds the mutable state of a single A* execution.
type runner struct {
	space   *search.Space
	puzzle  pouring.Puzzle
	opts    search.Options
	open    *priorityqueue.Queue
	parent  search.ParentMap
	g       map[core.NodeID]int
	visited int
}

// AStar runs A* on sp from start and stops when a goal state is popped or
// the open set is exhausted.
func AStar(sp *search.Space, start core.NodeID, p pouring.Puzzle, opts ...search.Option) (search.Result, error) {
	if err := search.Validate(sp, start); err != nil {
		return search.Result{Goal: core.None}, err
	}

	r := &runner{
		space:  sp,
		puzzle: p,
		opts:   search.Apply(opts...),
		open:   priorityqueue.NewWith(byF),
		parent: search.NewParentMap(start, sp.Len()),
		g:      make(map[core.NodeID]int, sp.Len()),
	}
	r.g[start] = 0
	r.open.Enqueue(entry{f: pouring.Heuristic(sp.MustState(start), p.Target), g: 0, id: start})

	goal, found := r.process()

	return search.Finish(sp, r.parent, goal, found, r.visited), nil
}

func (r *runner) process() (core.NodeID, bool) {
	for !r.open.Empty() {
		v, _ := r.open.Dequeue()
		cur := v.(entry)
		if r.g[cur.id] < cur.g {
			continue // superseded by a cheaper push
		}

		r.visited++
		s := r.space.MustState(cur.id)
		r.opts.OnVisit(cur.id, s)
		if r.puzzle.IsGoal(s) {
			return cur.id, true
		}
		r.expand(cur, s)
	}

	return core.None, false
}

func (r *runner) expand(cur entry, s pouring.State) {
	for _, next := range pouring.Successors(s, r.puzzle.CapacityA, r.puzzle.CapacityB) {
		tentative := cur.g + r.opts.StepCost(s, next)

		nid, isNew := r.space.Discover(cur.id, next)
		if isNew {
			r.opts.OnDiscover(cur.id, nid, next)
		} else if g, ok := r.g[nid]; ok && tentative >= g {
			continue
		}

		r.parent[nid] = cur.id
		r.g[nid] = tentative
		r.open.Enqueue(entry{
			f:  tentative + pouring.Heuristic(next, r.puzzle.Target),
			g:  tentative,
			id: nid,
		})
	}
}
