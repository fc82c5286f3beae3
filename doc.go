// Package statespace solves the two-jug water pouring puzzle by searching a
// state space that is built lazily, one discovered state at a time.
//
// What is in here?
//
//	Two containers with capacities A and B start as (A, 0). Six moves
//	(fill, empty, pour, for either container) lead from one state to the
//	next. The goal is any state in which either container holds exactly
//	the target volume. Four strategies explore the same space:
//		• BFS: fewest moves, FIFO frontier
//		• DFS: LIFO frontier, first path found
//		• UCS: cheapest path under a step cost (unit by default)
//		• A*:  cost plus the distance of the nearer container to the target
//
// Layout:
//
//	pouring/   : State, Puzzle, Move, the successor generator and the heuristic
//	core/      : dense NodeID arena: state registry and append-only discovery graph
//	search/    : Space, the discovery protocol, parent maps, Result and options
//	bfs/ dfs/ ucs/ astar/ : one strategy each, all implementing search.Strategy
//	solver/    : strategy catalog; runs each strategy on a fresh Space
//	dot/       : Graphviz export of an explored Space
//	cmd/pour   : command-line harness: reports, benchmarks and DOT files
//
// Quick example:
//
//	p := pouring.Puzzle{CapacityA: 4, CapacityB: 3, Target: 2}
//	out, err := solver.Run(bfs.Strategy{}, p)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out.Found, out.Path) // true [(4,0) (4,3) (0,3) (3,0) (3,3) (4,2)]
//
// A Space, and everything in core, is single-goroutine. Run separate
// searches on separate Spaces.
package statespace
