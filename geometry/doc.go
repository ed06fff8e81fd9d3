// Package geometry defines the plane-geometry primitives the barrier
// resilience engine is built on: points, disks, vertical borders, and the
// intersection predicates relating them.
//
// What:
//
//   - Point[T] and Disk[T] model a disk's centre and radius over either a
//     signed integer or a floating-point numeric type T.
//   - Border[T] models a vertical barrier: an x coordinate plus a
//     left/right flag.
//   - GeometryObject[T] is the tagged union consumed by the proximity
//     index: either a Disk[T] or a Border[T].
//   - Intersects answers the single geometric question the rest of the
//     engine depends on: do these two objects touch or overlap.
//
// Why:
//
//   - The implicit max-flow engine never materialises a graph; every
//     edge it needs is answered by a geometry query instead. Keeping
//     these primitives in one small, dependency-free package lets
//     proximity, levels, and blocking all share the exact same notion of
//     "intersects" without re-deriving it.
//
// Complexity:
//
//   - Intersects: O(1) for any pair of objects.
//   - AssignIndices: O(n).
//
// Errors:
//
//   - None. Geometry predicates are total functions; callers validate
//     borders/radii at a higher layer (see package resilience).
//
// Convention:
//
//   - All distance comparisons use squared distances, never square
//     roots, so integer instantiations stay exact. Tangent disks (squared
//     distance exactly equal to the squared sum of radii) are treated as
//     intersecting.
package geometry
