// Package proximity implements the mutable spatial index the implicit
// max-flow engine queries instead of ever materialising an edge set: given
// a query object, find some stored object that intersects it, and delete
// objects once their matching edge has been consumed.
//
// What:
//
//   - Index[T] is the contract: Rebuild, AnyIntersecting, Delete.
//   - Linear is an O(n)-per-query scan, reproducible (first match in
//     insertion order), used as the reference implementation and test
//     oracle.
//   - KDTree is an equal-radius 2-D k-d tree over disk centres, answering
//     AnyIntersecting with a single nearest-neighbour query plus a linear
//     scan over the (at most two-entry) border list; a border query
//     scans the stored disks linearly instead.
//
// Why:
//
//   - levels and blocking never enumerate G′'s edges; they ask "does
//     anything still in the index intersect this object" and, if so,
//     consume it. Factoring that question into its own package lets both
//     implementations share one contract and lets resilience.Config pick
//     between them without either caller knowing the difference.
//
// Complexity:
//
//   - Linear: Rebuild O(n), AnyIntersecting O(n), Delete O(n).
//   - KDTree: Rebuild O(n log n), AnyIntersecting O(log n) amortised for
//     disk queries (plus O(b) for the border list, b = number of borders,
//     at most 2), Delete O(log n) amortised (tombstone, no rebalancing).
//
// Errors:
//
//   - ErrNonUniformRadius: KDTree.Rebuild requires every disk in the
//     object set to share one radius (the nearest-centre shortcut in
//     AnyIntersecting only decides intersection correctly when all disks
//     are the same size); Linear has no such restriction.
package proximity
