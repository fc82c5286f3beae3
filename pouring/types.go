// Package pouring defines the two-container water-pouring puzzle: the State
// value type, the Puzzle parameters, the six Moves and the pure successor
// function that the search strategies expand.
package pouring

import "fmt"

// State is the pair of volumes held in containers A and B.
// It is a comparable value type: equality and hashing are by value,
// so a State can be used directly as a map key.
type State struct {
	A int // volume in container A
	B int // volume in container B
}

// String renders the state as "(a,b)".
func (s State) String() string {
	return fmt.Sprintf("(%d,%d)", s.A, s.B)
}

// Puzzle holds the capacities of both containers and the target volume.
//
// Capacities must be positive and Target non-negative. This is a caller
// precondition; nothing in this module re-checks it on the search path.
type Puzzle struct {
	CapacityA int
	CapacityB int
	Target    int
}

// Initial returns the starting state: A full, B empty.
func (p Puzzle) Initial() State {
	return State{A: p.CapacityA, B: 0}
}

// IsGoal reports whether either container of s holds exactly p.Target.
func (p Puzzle) IsGoal(s State) bool {
	return s.A == p.Target || s.B == p.Target
}

// Move enumerates the six pour operations, in generator order.
type Move int

const (
	FillA  Move = iota // fill A to capacity
	FillB              // fill B to capacity
	EmptyA             // pour A out
	EmptyB             // pour B out
	PourAB             // pour A into B until A is empty or B is full
	PourBA             // pour B into A until B is empty or A is full
)

// NumMoves is the fixed number of successors generated for every state.
const NumMoves = 6

var moveNames = [NumMoves]string{
	FillA:  "fill A",
	FillB:  "fill B",
	EmptyA: "empty A",
	EmptyB: "empty B",
	PourAB: "pour A->B",
	PourBA: "pour B->A",
}

// String returns a human-readable name of the move.
func (m Move) String() string {
	if m < 0 || int(m) >= NumMoves {
		return fmt.Sprintf("Move(%d)", int(m))
	}

	return moveNames[m]
}

// AllMoves returns the moves in the order Successors generates them.
func AllMoves() [NumMoves]Move {
	return [NumMoves]Move{FillA, FillB, EmptyA, EmptyB, PourAB, PourBA}
}
