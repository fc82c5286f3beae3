package bfs

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/makargravanov/state-space-searching/core"
	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/search"
)

// Name is the identifier reported by Strategy.Name.
const Name = "bfs"

// Strategy adapts BFS to the search.Strategy interface.
type Strategy struct{}

// Name returns "bfs".
func (Strategy) Name() string { return Name }

// Search runs BFS; see the package function.
func (Strategy) Search(sp *search.Space, start core.NodeID, p pouring.Puzzle, opts ...search.Option) (search.Result, error) {
	return BFS(sp, start, p, opts...)
}

// walker encapsulates mutable BFS state for one invocation.
type walker struct {
	space   *search.Space
	puzzle  pouring.Puzzle
	opts    search.Options
	queue   *linkedlistqueue.Queue
	parent  search.ParentMap
	visited int
}

// BFS runs breadth-first search on sp from start until a state holding
// p.Target in either container is popped, or the frontier runs dry.
// Returns search.ErrSpaceNil or search.ErrStartNotFound for invalid input.
func BFS(sp *search.Space, start core.NodeID, p pouring.Puzzle, opts ...search.Option) (search.Result, error) {
	if err := search.Validate(sp, start); err != nil {
		return search.Result{Goal: core.None}, err
	}

	w := &walker{
		space:  sp,
		puzzle: p,
		opts:   search.Apply(opts...),
		queue:  linkedlistqueue.New(),
		parent: search.NewParentMap(start, sp.Len()),
	}
	w.queue.Enqueue(start)

	goal, found := w.loop()

	return search.Finish(sp, w.parent, goal, found, w.visited), nil
}

// loop processes the queue until the goal is popped or the queue is empty.
func (w *walker) loop() (core.NodeID, bool) {
	for !w.queue.Empty() {
		v, _ := w.queue.Dequeue()
		id := v.(core.NodeID)
		w.visited++

		s := w.space.MustState(id)
		w.opts.OnVisit(id, s)
		if w.puzzle.IsGoal(s) {
			return id, true
		}
		w.enqueueSuccessors(id, s)
	}

	return core.None, false
}

// enqueueSuccessors registers unseen successors and enqueues every node
// that has not been claimed by a parent yet.
func (w *walker) enqueueSuccessors(id core.NodeID, s pouring.State) {
	for _, next := range pouring.Successors(s, w.puzzle.CapacityA, w.puzzle.CapacityB) {
		nid, isNew := w.space.Discover(id, next)
		if isNew {
			w.opts.OnDiscover(id, nid, next)
		}
		// a registered node without a parent entry can only be a seeded one
		if !w.parent.Claimed(nid) {
			w.parent[nid] = id
			w.queue.Enqueue(nid)
		}
	}
}
