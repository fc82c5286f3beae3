package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makargravanov/state-space-searching/bfs"
	"github.com/makargravanov/state-space-searching/core"
	"github.com/makargravanov/state-space-searching/dfs"
	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/search"
)

func solve(t *testing.T, p pouring.Puzzle, opts ...search.Option) (search.Result, *search.Space) {
	t.Helper()
	sp, root := search.NewSpace(p.Initial())
	res, err := dfs.DFS(sp, root, p, opts...)
	require.NoError(t, err)

	return res, sp
}

func TestDFS_NilSpace(t *testing.T) {
	res, err := dfs.DFS(nil, 0, pouring.Puzzle{CapacityA: 1, CapacityB: 1})
	assert.ErrorIs(t, err, search.ErrSpaceNil)
	assert.False(t, res.Found)
}

func TestDFS_StartNotFound(t *testing.T) {
	sp, _ := search.NewSpace(pouring.State{A: 3})
	_, err := dfs.DFS(sp, 1, pouring.Puzzle{CapacityA: 3, CapacityB: 5, Target: 4})
	assert.ErrorIs(t, err, search.ErrStartNotFound)
}

func TestDFS_Classic(t *testing.T) {
	res, sp := solve(t, pouring.Puzzle{CapacityA: 4, CapacityB: 3, Target: 2})
	require.True(t, res.Found)
	// the stack dives into the last successor pushed
	assert.Equal(t, []pouring.State{
		{A: 4, B: 0}, {A: 1, B: 3}, {A: 1, B: 0}, {A: 0, B: 1}, {A: 4, B: 1}, {A: 2, B: 3},
	}, res.Path)
	assert.Equal(t, 6, res.Visited)
	assert.Equal(t, 9, sp.Len())
}

func TestDFS_TrivialGoal(t *testing.T) {
	res, _ := solve(t, pouring.Puzzle{CapacityA: 6, CapacityB: 4, Target: 0})
	require.True(t, res.Found)
	assert.Equal(t, []pouring.State{{A: 6, B: 0}}, res.Path)
	assert.Equal(t, 1, res.Visited)
}

func TestDFS_NoSolution(t *testing.T) {
	res, sp := solve(t, pouring.Puzzle{CapacityA: 2, CapacityB: 2, Target: 1})
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Equal(t, core.None, res.Goal)
	assert.Equal(t, sp.Len(), res.Visited, "every discovered node is popped exactly once")
}

func TestDFS_NeverShorterThanBFS(t *testing.T) {
	for capA := 1; capA <= 9; capA++ {
		for capB := 1; capB <= 9; capB++ {
			for target := 0; target <= max(capA, capB); target++ {
				p := pouring.Puzzle{CapacityA: capA, CapacityB: capB, Target: target}
				d, sp := solve(t, p)

				bsp, root := search.NewSpace(p.Initial())
				b, err := bfs.BFS(bsp, root, p)
				require.NoError(t, err)

				require.Equal(t, b.Found, d.Found, "%+v", p)
				assert.GreaterOrEqual(t, len(d.Path), len(b.Path), "%+v", p)
				assert.LessOrEqual(t, d.Visited, sp.Len(), "%+v", p)
			}
		}
	}
}

func TestDFS_PathIsConnected(t *testing.T) {
	p := pouring.Puzzle{CapacityA: 7, CapacityB: 11, Target: 6}
	res, _ := solve(t, p)
	require.True(t, res.Found)
	_, ok := pouring.Moves(res.Path, p.CapacityA, p.CapacityB)
	assert.True(t, ok, "each step must be a single move: %v", res.Path)
	assert.True(t, p.IsGoal(res.Path[len(res.Path)-1]))
}
