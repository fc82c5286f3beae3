// Package bfs provides breadth-first search over the lazily grown pouring
// state space, returning the fewest-moves path to a goal state.
//
// What
//
//   - Pops nodes from a FIFO frontier in strict level order, seeded with the root.
//   - Every pop is counted in Result.Visited, then goal-tested.
//   - Expansion runs pouring.Successors and registers unseen states through
//     search.Space.Discover (one graph edge per discovery).
//   - A node is enqueued only when it gets its parent entry, so each node sits
//     in the frontier at most once.
//
// Why
//
//	All moves cost the same, so level order guarantees the first goal popped
//	has the minimum number of pour operations.
//
// Determinism
//
//	Successors come in a fixed order and the queue is FIFO; the visit
//	sequence and Visited count are fully reproducible.
//
// Complexity (V = reachable states)
//
//   - Time:   O(V), six successors per pop
//   - Memory: O(V) for the frontier, parent map and space
//
// Usage
//
//	sp, root := search.NewSpace(p.Initial())
//	res, err := bfs.BFS(sp, root, p)
//	if err != nil {
//		// ErrSpaceNil or ErrStartNotFound
//	}
//	if res.Found {
//		fmt.Println(res.Path)
//	}
package bfs
