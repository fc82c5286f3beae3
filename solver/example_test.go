package solver_test

import (
	"fmt"

	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/solver"
)

// ExampleRunAll runs every strategy on an unsolvable puzzle: two even jugs
// can never hold an odd volume, and each strategy exhausts the four
// reachable states before giving up.
func ExampleRunAll() {
	p := pouring.Puzzle{CapacityA: 2, CapacityB: 2, Target: 1}
	outs, err := solver.RunAll(solver.All(), p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, o := range outs {
		fmt.Println(solver.DisplayName(o.Strategy), o.Found, o.Visited, o.Space.Len())
	}
	// Output:
	// BFS false 4 4
	// UCS false 4 4
	// DFS false 4 4
	// A* false 4 4
}
