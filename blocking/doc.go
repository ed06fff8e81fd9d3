// Package blocking computes a blocking family of edge-disjoint paths from
// source to sink in the implicit residual graph R(G′, paths) — a maximal
// set of paths no single one of which can be extended or combined with
// another to free up more flow this round.
//
// What:
//
//   - FindBlockingFamily layers R via package levels, builds one
//     proximity index per odd layer (holding that layer's disk inbound
//     vertices), and repeatedly DFS-explores from the source until no
//     further source→sink path exists in the current layering.
//
// Why:
//
//   - A Dinic-style max-flow round finds one blocking family per
//     phase instead of one augmenting path at a time; this is what makes
//     the overall algorithm's number of phases bounded by the layering
//     depth rather than by the flow value.
//
// Complexity:
//
//   - Time: O(n log n) amortised per call with the KDTree index (each
//     disk is visited and deleted from its layer's index at most once
//     across the whole DFS), where n is the disk count.
//   - Memory: O(n) for the per-layer indices, the explored set, and the
//     path buffer.
//
// Errors:
//
//   - Propagates whatever levels.FindLevels or a proximity.Index returns.
package blocking
