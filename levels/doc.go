// Package levels computes the BFS layering of the implicit residual graph
// R(G′, paths): for every vertex reachable from the source, its distance
// in edges, without ever materialising R's edge set.
//
// What:
//
//   - FindLevels runs a layered breadth-first search seeded at the left
//     border (source), alternating between disk-proximity queries (odd
//     layers) and residual-edge bookkeeping derived from the already-found
//     path family (even layers), and reports the distance to the sink if
//     reachable.
//
// Why:
//
//   - R's edges are defined implicitly by geometric intersection and by
//     which edges already belong to some found path. Layering it the way
//     an explicit-graph BFS would is what lets blocking build one
//     proximity index per odd layer instead of re-deriving adjacency from
//     scratch on every DFS step.
//
// Complexity:
//
//   - Time: O(n log n) amortised with the KDTree index, O(n²) with Linear,
//     where n is the disk count — each disk is removed from its round's
//     index at most once.
//   - Memory: O(n) for levels, prev, and next.
//
// Errors:
//
//   - Propagates whatever the supplied proximity.Index returns from
//     Rebuild (for example proximity.ErrNonUniformRadius).
package levels
