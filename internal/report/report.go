// Package report renders solver runs and benchmark summaries as plain text.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/makargravanov/state-space-searching/internal/bench"
	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/solver"
)

// Directedness is the share of visited nodes that ended up on the path:
// len(path) / visited. It is 0 when nothing was visited.
func Directedness(pathLen, visited int) float64 {
	if visited == 0 {
		return 0
	}

	return float64(pathLen) / float64(visited)
}

// Header returns the banner printed before a strategy's run report.
func Header(strategy string) string {
	return fmt.Sprintf("=== RUN %s ===\n", solver.DisplayName(strategy))
}

// WriteRun writes the report of a single measured run. With verbose set and
// a path found, every state is listed along with the move that reached it.
func WriteRun(w io.Writer, m bench.Measurement, verbose bool) error {
	var sb strings.Builder
	sb.WriteString(Header(m.Strategy))

	if !m.Found {
		fmt.Fprintf(&sb, "No solution found (%s s).\n\n", seconds(m.Elapsed))
		return flush(w, &sb)
	}

	fmt.Fprintf(&sb, "Path found (%s s):\n", seconds(m.Elapsed))
	fmt.Fprintf(&sb, "Path length: %d\n", len(m.Path))
	fmt.Fprintf(&sb, "Visited nodes: %d\n", m.Visited)
	fmt.Fprintf(&sb, "Directedness: %.4f\n", Directedness(len(m.Path), m.Visited))

	if verbose {
		moves, ok := pouring.Moves(m.Path, m.Puzzle.CapacityA, m.Puzzle.CapacityB)
		sb.WriteString("Path:\n")
		for i, s := range m.Path {
			if i == 0 || !ok {
				fmt.Fprintf(&sb, "  %s\n", s)
				continue
			}
			fmt.Fprintf(&sb, "  %s  %s\n", s, moves[i-1])
		}
	}
	sb.WriteString("\n")

	return flush(w, &sb)
}

// WriteBench writes the averaged timings, or the failed runs when at least
// one strategy missed the goal.
func WriteBench(w io.Writer, sum bench.Summary) error {
	var sb strings.Builder

	if !sum.AllSuccessful() {
		for _, f := range sum.Failures {
			fmt.Fprintf(&sb, "error: %s found no path in run %d\n", solver.DisplayName(f.Strategy), f.Run)
		}
		sb.WriteString("Benchmark cannot be completed: not every run was successful\n")
		return flush(w, &sb)
	}

	fmt.Fprintf(&sb, "=== BENCHMARK REPORT (%d runs, %s) ===\n", sum.Runs, puzzleLabel(sum.Puzzle))
	for _, st := range sum.Stats {
		fmt.Fprintf(&sb, "%s: average time = %s s\n", solver.DisplayName(st.Strategy), seconds(st.Average()))
	}

	return flush(w, &sb)
}

func puzzleLabel(p pouring.Puzzle) string {
	return fmt.Sprintf("A=%d B=%d target=%d", p.CapacityA, p.CapacityB, p.Target)
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}

func flush(w io.Writer, sb *strings.Builder) error {
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "report: write")
	}

	return nil
}
