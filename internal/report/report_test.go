package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makargravanov/state-space-searching/bfs"
	"github.com/makargravanov/state-space-searching/internal/bench"
	"github.com/makargravanov/state-space-searching/internal/report"
	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/solver"
)

func measure(t *testing.T, p pouring.Puzzle) bench.Measurement {
	t.Helper()
	o, err := solver.Run(bfs.Strategy{}, p)
	require.NoError(t, err)

	return bench.Measurement{Outcome: o, Elapsed: 1500 * time.Microsecond}
}

func TestWriteRun_Found(t *testing.T) {
	m := measure(t, pouring.Puzzle{CapacityA: 4, CapacityB: 3, Target: 2})
	var buf bytes.Buffer
	require.NoError(t, report.WriteRun(&buf, m, false))

	want := "=== RUN BFS ===\n" +
		"Path found (0.001500 s):\n" +
		"Path length: 6\n" +
		"Visited nodes: 11\n" +
		"Directedness: 0.5455\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteRun_Verbose(t *testing.T) {
	m := measure(t, pouring.Puzzle{CapacityA: 4, CapacityB: 3, Target: 2})
	var buf bytes.Buffer
	require.NoError(t, report.WriteRun(&buf, m, true))

	assert.Contains(t, buf.String(), "Path:\n"+
		"  (4,0)\n"+
		"  (4,3)  fill B\n"+
		"  (0,3)  empty A\n"+
		"  (3,0)  pour B->A\n"+
		"  (3,3)  fill B\n"+
		"  (4,2)  pour B->A\n")
}

func TestWriteRun_NotFound(t *testing.T) {
	m := measure(t, pouring.Puzzle{CapacityA: 2, CapacityB: 2, Target: 1})
	var buf bytes.Buffer
	require.NoError(t, report.WriteRun(&buf, m, true))
	assert.Equal(t, "=== RUN BFS ===\nNo solution found (0.001500 s).\n\n", buf.String())
}

func TestWriteBench(t *testing.T) {
	sum := bench.Summary{
		Puzzle: pouring.Puzzle{CapacityA: 4, CapacityB: 3, Target: 2},
		Runs:   2,
		Stats: []bench.Stat{
			{Strategy: "bfs", Durations: []time.Duration{time.Millisecond, 3 * time.Millisecond}},
			{Strategy: "astar", Durations: []time.Duration{time.Microsecond, time.Microsecond}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteBench(&buf, sum))
	assert.Equal(t, "=== BENCHMARK REPORT (2 runs, A=4 B=3 target=2) ===\n"+
		"BFS: average time = 0.002000 s\n"+
		"A*: average time = 0.000001 s\n", buf.String())
}

func TestWriteBench_Failures(t *testing.T) {
	sum := bench.Summary{Runs: 1, Failures: []bench.Failure{{Strategy: "dfs", Run: 1}}}
	var buf bytes.Buffer
	require.NoError(t, report.WriteBench(&buf, sum))
	assert.Equal(t, "error: DFS found no path in run 1\n"+
		"Benchmark cannot be completed: not every run was successful\n", buf.String())
}

func TestDirectedness(t *testing.T) {
	assert.Zero(t, report.Directedness(3, 0))
	assert.InDelta(t, 6.0/11.0, report.Directedness(6, 11), 1e-12)
}
