// Package search holds the pieces shared by every traversal strategy:
// the lazily grown Space, the discovery protocol, the ParentMap and path
// reconstruction, the Strategy interface, Result and functional Options.
//
// What
//
//   - Space pairs a core.Registry of pouring.States with a core.Graph and
//     keeps their NodeIDs in lockstep. NewSpace seeds it with the initial state.
//   - Space.Discover is the single registration path: the first sighting of a
//     state assigns a NodeID and adds exactly one edge parent → child.
//   - ParentMap is the traversal tree; Reconstruct walks it from the goal back
//     to the root sentinel core.None and reverses.
//   - Strategy is implemented by packages bfs, dfs, ucs and astar.
//
// Lifecycle
//
//	Registry, graph, parent map, cost maps and frontier all belong to one
//	invocation. Re-running any strategy needs a new Space; package solver does
//	that for you.
//
// Errors
//
//   - ErrSpaceNil       if the Space pointer is nil.
//   - ErrStartNotFound  if the start NodeID was never registered.
//
// Not finding a solution is not an error: Result.Found is false and
// Result.Path is empty.
package search
