package pouring

// Apply returns the state produced by performing m on s.
// Capacities are not validated. A move that cannot change anything
// (filling a full container, pouring into a full one) returns s unchanged.
func Apply(s State, m Move, capacityA, capacityB int) State {
	switch m {
	case FillA:
		return State{A: capacityA, B: s.B}
	case FillB:
		return State{A: s.A, B: capacityB}
	case EmptyA:
		return State{A: 0, B: s.B}
	case EmptyB:
		return State{A: s.A, B: 0}
	case PourAB:
		t := min(s.A, capacityB-s.B)
		return State{A: s.A - t, B: s.B + t}
	case PourBA:
		t := min(s.B, capacityA-s.A)
		return State{A: s.A + t, B: s.B - t}
	}

	return s
}

// Successors returns the six candidate next states of s in fixed order:
// fill A, fill B, empty A, empty B, pour A->B, pour B->A.
//
// Candidates may repeat s or each other; de-duplication belongs to the caller.
// The order never changes, which keeps visit counts reproducible.
// Complexity: O(1), no allocations.
func Successors(s State, capacityA, capacityB int) [NumMoves]State {
	var next [NumMoves]State
	for i, m := range AllMoves() {
		next[i] = Apply(s, m, capacityA, capacityB)
	}

	return next
}

// MoveBetween returns the first move (in generator order) that turns from into to.
// ok is false when no single move relates the two states.
func MoveBetween(from, to State, capacityA, capacityB int) (m Move, ok bool) {
	for _, m = range AllMoves() {
		if Apply(from, m, capacityA, capacityB) == to {
			return m, true
		}
	}

	return 0, false
}

// Moves annotates a path with the move taken at each step; len(result) == len(path)-1.
// ok is false if some consecutive pair is not related by a single move.
func Moves(path []State, capacityA, capacityB int) ([]Move, bool) {
	if len(path) < 2 {
		return nil, true
	}
	out := make([]Move, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		m, ok := MoveBetween(path[i-1], path[i], capacityA, capacityB)
		if !ok {
			return out, false
		}
		out = append(out, m)
	}

	return out, true
}

// Heuristic estimates the remaining distance from s to the goal as the smaller
// of |a-target| and |b-target|. It is the estimate used by A*.
//
// It is not admissible for every capacity pair: a single fill or empty can move
// a container by more than one unit of "distance" at unit cost.
func Heuristic(s State, target int) int {
	return min(abs(s.A-target), abs(s.B-target))
}

// Solvable reports the closed-form answer for the puzzle: starting from
// (capacityA, 0), a target in [0, max(A,B)] is reachable iff it is zero or a
// multiple of gcd(A,B). Targets outside that range are never reachable.
func (p Puzzle) Solvable() bool {
	if p.Target < 0 || p.Target > max(p.CapacityA, p.CapacityB) {
		return false
	}
	if p.Target == 0 {
		return true
	}

	return p.Target%gcd(p.CapacityA, p.CapacityB) == 0
}

func gcd(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
