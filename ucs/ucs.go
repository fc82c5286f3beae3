package ucs

import (
	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/makargravanov/state-space-searching/core"
	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/search"
)

// Strategy adapts UCS to the search.Strategy interface.
type Strategy struct{}

// Name returns "ucs".
func (Strategy) Name() string { return Name }

// Search runs UCS; see the package function.
func (Strategy) Search(sp *search.Space, start core.NodeID, p pouring.Puzzle, opts ...search.Option) (search.Result, error) {
	return UCS(sp, start, p, opts...)
}

// UCS runs uniform-cost search on sp from start.
//
// Returns:
//
//   - Result.Found with the cheapest path when a goal state is popped.
//   - Result.Visited counts non-stale pops only.
//   - search.ErrSpaceNil / search.ErrStartNotFound for invalid arguments.
func UCS(sp *search.Space, start core.NodeID, p pouring.Puzzle, opts ...search.Option) (search.Result, error) {
	if err := search.Validate(sp, start); err != nil {
		return search.Result{Goal: core.None}, err
	}

	r := &runner{
		space:  sp,
		puzzle: p,
		opts:   search.Apply(opts...),
		pq:     priorityqueue.NewWith(byCost),
		parent: search.NewParentMap(start, sp.Len()),
		cost:   make(map[core.NodeID]int, sp.Len()),
	}
	r.cost[start] = 0
	r.pq.Enqueue(nodeItem{id: start, cost: 0})

	goal, found := r.process()

	return search.Finish(sp, r.parent, goal, found, r.visited), nil
}

// runner holds the mutable state of a single UCS execution.
type runner struct {
	space   *search.Space
	puzzle  pouring.Puzzle
	opts    search.Options
	pq      *priorityqueue.Queue // min-heap of nodeItem
	parent  search.ParentMap     // overwritten on strictly cheaper paths
	cost    map[core.NodeID]int  // best known cost per node
	visited int
}

// process pops the cheapest entry until the goal is popped or the heap is empty.
func (r *runner) process() (core.NodeID, bool) {
	for !r.pq.Empty() {
		v, _ := r.pq.Dequeue()
		item := v.(nodeItem)

		// stale entry: a cheaper one for this node was pushed later
		if best, ok := r.cost[item.id]; ok && best < item.cost {
			continue
		}

		r.visited++
		s := r.space.MustState(item.id)
		r.opts.OnVisit(item.id, s)
		if r.puzzle.IsGoal(s) {
			return item.id, true
		}
		r.relax(item, s)
	}

	return core.None, false
}

// relax pushes newly discovered successors and re-pushes known ones whose
// tentative cost is strictly lower than the recorded cost.
func (r *runner) relax(item nodeItem, s pouring.State) {
	for _, next := range pouring.Successors(s, r.puzzle.CapacityA, r.puzzle.CapacityB) {
		nextCost := item.cost + r.opts.StepCost(s, next)

		nid, isNew := r.space.Discover(item.id, next)
		if isNew {
			r.opts.OnDiscover(item.id, nid, next)
		} else if best, ok := r.cost[nid]; ok && nextCost >= best {
			continue
		}

		r.cost[nid] = nextCost
		r.parent[nid] = item.id
		r.pq.Enqueue(nodeItem{id: nid, cost: nextCost})
	}
}
