// Package dijkstra provides a generic implementation of Dijkstra's
// shortest-path algorithm over implicit graphs with non-negative edge costs.
//
// Overview:
//
//   - The graph is never materialised. A Traversal enumerates the edges leaving
//     a point on demand, reports which points are impassable, and reads and
//     writes distances in a store owned by the caller.
//   - Points are any comparable key: a plain (x, y) cell, or (x, y, facing)
//     when turning has a cost of its own.
//   - Distances are any unsigned integer type. "Unknown" is expressed by the
//     store (ok == false), never by a magic value.
//
// When to use:
//
//   - Grid mazes: walls are IsImpossible, moves are Neighbours.
//   - Orientation-sensitive searches: encode the facing into the point and make
//     rotations edges with their own cost.
//   - Whole-map questions: Run always computes every reachable distance, so
//     one search from the exit answers "how far is every cell from the end".
//
// Key features:
//
//   - Lazy decrease-key: improved points are re-pushed, stale entries skipped.
//   - Overflow-safe: a sum that would wrap is treated as infinite.
//   - Functional options: WithMaxDistance, WithOnRelax, WithInitialCapacity.
//   - Funcs turns four closures into a Traversal; MapStore is a ready-made
//     sparse store.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(E) heap entries; distance storage belongs to the caller.
//
// Failure semantics:
//
//   - Unreachable points keep no distance. That is a normal result.
//   - A nil Traversal or a negative capacity is a programming error and panics.
//   - Sources the store cannot address panic inside the store itself.
//
// API reference:
//
//	func Run[P comparable, B any, D Distance](
//	    t Traversal[P, B, D],
//	    source P,
//	    initial D,
//	    bounds B,
//	    opts ...Option[P, D],
//	) Stats
//
// Thread safety:
//
//   - Run is synchronous and single-threaded. It mutates the store through t
//     for its whole duration; do not share the store with concurrent readers.
package dijkstra
