// Package resilience exposes the two public entry points of the barrier
// resilience engine: Count, the minimum number of disks whose removal
// disconnects the left border from the right, and Witness, the same
// number together with the disks that achieve it.
//
// What:
//
//   - Count solves for the vertex-connectivity value alone.
//   - Witness solves for the value and a minimal blocking set of disk
//     indices realising it.
//   - Config selects the proximity index variant and carries the
//     Verbose logging knob.
//
// Why:
//
//   - Both entry points repeatedly ask package blocking for a blocking
//     family against a growing set of already-used edges, folding each
//     family into that set by symmetric difference (cancelling edges
//     travelled in both directions) until no more families exist — the
//     geometric analogue of a Dinic max-flow phase loop, run over an
//     implicit, vertex-capacitated graph instead of an explicit one.
//
// Complexity:
//
//   - Time: O(k) rounds of blocking.FindBlockingFamily, where k is the
//     final disk-removal count (each round finds at least one path, and
//     k is bounded by the left/right border's minimum vertex cut).
//   - Memory: O(n) for the accumulated used-edge set, n = len(disks).
//
// Errors:
//
//   - ErrUnsupportedConfig: an IndexKind outside the ones this package
//     knows how to construct, or a kd_tree request over disks that do not
//     share one radius — proximity.ErrNonUniformRadius from KDTree is
//     wrapped into this same sentinel so callers only ever need one
//     errors.Is check, matching spec's single named UnsupportedConfig
//     condition.
//
// Panics:
//
//   - A Violation from internal/invariant if the accumulated cut size
//     ever disagrees with the accumulated path count, or if the
//     symmetric-difference fold ever sees the same-orientation edge
//     twice — both would indicate a bug in this engine, not a caller
//     input problem.
package resilience
