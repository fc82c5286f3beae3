package bfs_test

import (
	"fmt"

	"github.com/makargravanov/state-space-searching/bfs"
	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/search"
)

// ExampleBFS solves the classic puzzle: measure 2 litres with a 4 and a 3 litre jug.
func ExampleBFS() {
	p := pouring.Puzzle{CapacityA: 4, CapacityB: 3, Target: 2}
	sp, root := search.NewSpace(p.Initial())

	res, err := bfs.BFS(sp, root, p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	moves, _ := pouring.Moves(res.Path, p.CapacityA, p.CapacityB)

	fmt.Println(res.Found, res.Visited, sp.Len())
	fmt.Println(res.Path)
	fmt.Println(moves)
	// Output:
	// true 11 12
	// [(4,0) (4,3) (0,3) (3,0) (3,3) (4,2)]
	// [fill B empty A pour B->A fill B pour B->A]
}
