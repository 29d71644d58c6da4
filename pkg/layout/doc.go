// Package layout computes alignment, distribution and untangling moves for a
// set of placed objects in a 2D working plane.
//
// The engine works on snapshots. Callers build an [Object] for every element
// (an id and its world bounding box), choose an axis from a [geom.Basis], and
// receive a [Result] listing the displacement each object needs. Nothing is
// mutated; applying the moves to a document is the caller's job, and [Apply]
// does it for in-memory snapshots.
//
// # Operations
//
//   - [AlignEdge]: align every object's min or max edge to the group's extreme edge
//   - [AlignCenter]: align every object's center to the middle of the group's span
//   - [Distribute]: keep the outermost objects fixed and space the rest evenly
//   - [Untangle]: push overlapping objects forward until they respect a minimum gap
//   - [AlignPoints]: align anchor points (such as tag heads) to the first anchor
//
// [Run] dispatches a [Mode] (left, right, top, bottom, center-x, center-y,
// distribute-h/v, untangle-h/v) and performs the input checks a caller would
// otherwise have to repeat.
//
// # Tolerance
//
// Displacements whose components are all below [geom.Epsilon] are dropped, so
// re-running an operation on its own output yields an empty result.
//
// # Concurrency
//
// Every function is a pure computation over its arguments and allocates its
// own working slices, so concurrent calls are safe.
package layout
