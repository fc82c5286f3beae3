package core

import (
	"errors"
	"math"
)

// Sentinel errors for core storage operations.
var (
	// ErrNodeNotFound indicates an operation referenced an ID that was never handed out.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrArenaFull indicates the arena ran out of representable NodeIDs.
	ErrArenaFull = errors.New("core: node arena is full")
)

// NodeID is the dense identity assigned to a state on first discovery.
// IDs start at 0 and grow by one; they are never reused.
type NodeID int32

// None is the sentinel "no node" value, used as the root's parent.
const None NodeID = -1

// MaxNodeID is the largest ID an arena can hand out.
const MaxNodeID NodeID = math.MaxInt32

// Valid reports whether id can refer to an arena slot.
func (id NodeID) Valid() bool { return id >= 0 }

// Edge is a discovery link from a parent node to a newly found child.
type Edge struct {
	From NodeID
	To   NodeID
}
