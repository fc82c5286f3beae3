// Package solver is the entry point callers use to run the strategies:
// a catalog of the four search.Strategy implementations and a Run function
// that builds a fresh search.Space for every invocation.
//
// Run never reuses storage between calls. BFS/DFS set parent links once,
// UCS/A* overwrite them, and a graph grown by one strategy carries its
// discovery order, so independent, reproducible results need a new Space
// each time.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/makargravanov/state-space-searching/astar"
	"github.com/makargravanov/state-space-searching/bfs"
	"github.com/makargravanov/state-space-searching/dfs"
	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/search"
	"github.com/makargravanov/state-space-searching/ucs"
)

// ErrUnknownStrategy is returned by Lookup for a name outside the catalog.
var ErrUnknownStrategy = errors.New("solver: unknown strategy")

// all lists the strategies in the order reports present them.
var all = []search.Strategy{
	bfs.Strategy{},
	ucs.Strategy{},
	dfs.Strategy{},
	astar.Strategy{},
}

// displayNames maps strategy names to their conventional spelling.
var displayNames = map[string]string{
	bfs.Name:   "BFS",
	ucs.Name:   "UCS",
	dfs.Name:   "DFS",
	astar.Name: "A*",
}

// All returns every strategy: BFS, UCS, DFS, A*.
func All() []search.Strategy {
	out := make([]search.Strategy, len(all))
	copy(out, all)

	return out
}

// Names returns the catalog names in All order.
func Names() []string {
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name()
	}

	return names
}

// Lookup finds a strategy by name, case-insensitively.
// "a*" is accepted as an alias of "astar".
func Lookup(name string) (search.Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "a*" {
		n = astar.Name
	}
	for _, s := range all {
		if s.Name() == n {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
}

// LookupAll resolves names in order; an empty list means All.
func LookupAll(names []string) ([]search.Strategy, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]search.Strategy, 0, len(names))
	for _, n := range names {
		s, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// DisplayName returns "BFS", "UCS", "DFS" or "A*" for a catalog name,
// or the name unchanged.
func DisplayName(name string) string {
	if d, ok := displayNames[name]; ok {
		return d
	}

	return name
}

// Outcome is a Result together with the puzzle and the Space it was computed
// on, so the caller can name the moves and export the explored graph.
type Outcome struct {
	search.Result
	Strategy string
	Puzzle   pouring.Puzzle
	Space    *search.Space
}

// Run solves p with s on a fresh Space seeded with p.Initial().
func Run(s search.Strategy, p pouring.Puzzle, opts ...search.Option) (Outcome, error) {
	if s == nil {
		return Outcome{}, ErrUnknownStrategy
	}
	sp, root := search.NewSpace(p.Initial())
	res, err := s.Search(sp, root, p, opts...)
	if err != nil {
		return Outcome{}, fmt.Errorf("solver: %s: %w", s.Name(), err)
	}

	return Outcome{Result: res, Strategy: s.Name(), Puzzle: p, Space: sp}, nil
}

// RunAll runs every strategy in list on p, each on its own Space, sequentially.
func RunAll(list []search.Strategy, p pouring.Puzzle, opts ...search.Option) ([]Outcome, error) {
	out := make([]Outcome, 0, len(list))
	for _, s := range list {
		o, err := Run(s, p, opts...)
		if err != nil {
			return out, err
		}
		out = append(out, o)
	}

	return out, nil
}
