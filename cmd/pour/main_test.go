package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makargravanov/state-space-searching/internal/config"
)

// execute runs the command tree with args and returns what it printed.
func execute(t *testing.T, stdin string, terminal bool, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	o := newOptions(strings.NewReader(stdin), &out)
	o.interactive = func() bool { return terminal }
	cmd := newRootCmd(o)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestSolve_DefaultPuzzleAllStrategies(t *testing.T) {
	out, err := execute(t, "", false, "solve")
	require.NoError(t, err)
	for _, h := range []string{"=== RUN BFS ===", "=== RUN UCS ===", "=== RUN DFS ===", "=== RUN A* ==="} {
		assert.Contains(t, out, h)
	}
	assert.Equal(t, 4, strings.Count(out, "Path found"))
	assert.Contains(t, out, "Visited nodes: 11\n")
}

func TestSolve_RootRunsSolve(t *testing.T) {
	out, err := execute(t, "", false, "-a", "2", "-b", "2", "-t", "1", "--strategy", "bfs")
	require.NoError(t, err)
	assert.Equal(t, "=== RUN BFS ===\n", out[:len("=== RUN BFS ===\n")])
	assert.Contains(t, out, "No solution found")
	assert.NotContains(t, out, "UCS")
}

func TestSolve_VerboseWritesDOT(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "", false, "solve", "--verbose", "--dot-dir", dir, "--strategy", "bfs", "--strategy", "A*")
	require.NoError(t, err)
	assert.Contains(t, out, "  (4,3)  fill B\n")

	for _, name := range []string{"bfs", "astar"} {
		data, err := os.ReadFile(filepath.Join(dir, name+"_search_tree.dot"))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(data), "digraph "+name+" {\n"))
		assert.Contains(t, out, "dot -Tpng "+filepath.Join(dir, name+"_search_tree.dot"))
	}
}

func TestSolve_NoDOTWithoutSolution(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", false, "--verbose", "--dot-dir", dir, "-a", "2", "-b", "2", "-t", "1")
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSolve_ConfigFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("capacity_a: 3\ncapacity_b: 5\ntarget: 4\nstrategies: [ucs]\n"), 0o600))

	out, err := execute(t, "", true, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "=== RUN UCS ===")
	assert.Contains(t, out, "Path length: 8\n")
	assert.NotContains(t, out, "Capacity of jug A", "a config file suppresses the prompt")

	out, err = execute(t, "", false, "--config", path, "--strategy", "bfs", "-t", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "=== RUN BFS ===")
	assert.NotContains(t, out, "UCS")
}

func TestSolve_InvalidInput(t *testing.T) {
	_, err := execute(t, "", false, "-a", "0")
	assert.ErrorContains(t, err, "CapacityA")

	_, err = execute(t, "", false, "--strategy", "greedy")
	assert.ErrorContains(t, err, "Strategies[0]")

	_, err = execute(t, "", false, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorContains(t, err, "config: read")

	_, err = execute(t, "", false, "solve", "extra")
	assert.Error(t, err)
}

func TestPrompt_Interactive(t *testing.T) {
	out, err := execute(t, "3\n5\n4\n", true, "--strategy", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "Capacity of jug A [4]: ")
	assert.Contains(t, out, "Target volume [2]: ")
	assert.Contains(t, out, "Path length: 8\n")
}

func TestPrompt_KeepsDefaultsOnEmptyAnswers(t *testing.T) {
	cfg := config.Default()
	var out bytes.Buffer
	require.NoError(t, prompt(strings.NewReader("\n7\n\n"), &out, &cfg))
	assert.Equal(t, 4, cfg.CapacityA)
	assert.Equal(t, 7, cfg.CapacityB)
	assert.Equal(t, 2, cfg.Target)
}

func TestPrompt_Errors(t *testing.T) {
	cfg := config.Default()
	assert.ErrorContains(t, prompt(strings.NewReader("x\n"), &bytes.Buffer{}, &cfg), "Capacity of jug A")
	assert.ErrorContains(t, prompt(strings.NewReader("1\n"), &bytes.Buffer{}, &cfg), "no answer")
}

func TestBench(t *testing.T) {
	out, err := execute(t, "", false, "bench", "--runs", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "=== BENCHMARK REPORT (2 runs, A=4 B=3 target=2) ===")
	for _, name := range []string{"BFS", "UCS", "DFS", "A*"} {
		assert.Contains(t, out, name+": average time = ")
	}

	out, err = execute(t, "", false, "bench", "--runs", "1", "-a", "2", "-b", "2", "-t", "1", "--strategy", "dfs")
	require.NoError(t, err)
	assert.Contains(t, out, "error: DFS found no path in run 1\n")
	assert.Contains(t, out, "Benchmark cannot be completed")

	_, err = execute(t, "", false, "bench", "--runs", "0")
	assert.ErrorContains(t, err, "Runs")
}
