package search

import (
	"errors"

	"github.com/makargravanov/state-space-searching/core"
	"github.com/makargravanov/state-space-searching/pouring"
)

// Sentinel errors shared by all strategies.
var (
	// ErrSpaceNil is returned when a nil *Space is passed to a strategy.
	ErrSpaceNil = errors.New("search: space is nil")

	// ErrStartNotFound is returned when the start NodeID is not registered in the Space.
	ErrStartNotFound = errors.New("search: start node not found")
)

// Result is the outcome of one traversal.
//
//   - Found:   whether a goal state was popped from the frontier.
//   - Path:    states from the initial state to the goal, inclusive; empty if !Found.
//   - Visited: number of counted frontier pops, the terminating pop included.
//   - Goal:    NodeID of the goal, or core.None if !Found.
type Result struct {
	Found   bool
	Path    []pouring.State
	Visited int
	Goal    core.NodeID
}

// Moves returns the number of pour operations on the path.
func (r Result) Moves() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Strategy is one frontier discipline over the shared discovery protocol.
// Every implementation takes the same inputs and returns the same Result shape,
// so callers can iterate over strategies generically.
type Strategy interface {
	// Name returns the short lowercase identifier ("bfs", "dfs", "ucs", "astar").
	Name() string

	// Search runs the traversal from start over sp for puzzle p.
	// An error is returned only for invalid arguments; "no solution" is Found == false.
	Search(sp *Space, start core.NodeID, p pouring.Puzzle, opts ...Option) (Result, error)
}

// Option configures a traversal via functional arguments.
type Option func(*Options)

// Options holds hooks and the step cost used by a traversal.
// Hooks observe the search; they cannot abort or alter it.
type Options struct {
	// OnVisit is called on every counted frontier pop, before the goal test.
	OnVisit func(id core.NodeID, s pouring.State)

	// OnDiscover is called when a state is registered for the first time,
	// after the parent edge has been added to the graph.
	OnDiscover func(parent, child core.NodeID, s pouring.State)

	// StepCost returns the cost of moving from one state to another.
	// Only cost-aware strategies (UCS, A*) read it. Must be non-negative.
	StepCost func(from, to pouring.State) int
}

// DefaultOptions returns no-op hooks and unit step cost.
func DefaultOptions() Options {
	return Options{
		OnVisit:    func(core.NodeID, pouring.State) {},
		OnDiscover: func(core.NodeID, core.NodeID, pouring.State) {},
		StepCost:   UnitCost,
	}
}

// Apply builds Options from DefaultOptions and opts, left to right.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// UnitCost charges 1 for every move.
func UnitCost(_, _ pouring.State) int { return 1 }

// WithOnVisit registers a callback run on each counted frontier pop.
func WithOnVisit(fn func(id core.NodeID, s pouring.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnDiscover registers a callback run on each discovery event.
func WithOnDiscover(fn func(parent, child core.NodeID, s pouring.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithStepCost replaces the unit step cost used by UCS and A*.
func WithStepCost(fn func(from, to pouring.State) int) Option {
	return func(o *Options) {
		if fn != nil {
			o.StepCost = fn
		}
	}
}
