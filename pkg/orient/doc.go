// Package orient measures the in-plane rotation of placed objects and
// computes the rotations that make other objects match a reference.
//
// An [Object] exposes at most one orientation source, tried in order:
//
//  1. A [Location] with an intrinsic rotation (point-placed families, tags, text)
//  2. A [Curve] (line- or arc-based elements); the tangent at the middle
//     parameter is projected onto the working basis
//  3. An orientation vector (walls); projected the same way
//
// Objects with none of these, or whose tangent or vector projects to a
// zero-length direction, have no orientation and are reported with
// ErrCodeNoOrientation.
//
// [Match] is the batch operation: the base object's angle becomes the target
// and every other object receives a [Rotation] instruction about the basis
// normal. Failures on individual targets are collected rather than fatal.
package orient
