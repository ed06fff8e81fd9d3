// Package tgraph defines the vocabulary of the vertex-split transformed
// graph G′ that the barrier resilience engine runs its max-flow over:
// vertices, edges, source/sink sentinels, and paths.
//
// What:
//
//   - Vertex identifies either the Source, the Sink, or one of a disk's
//     two split halves (inbound/outbound), addressed by the disk's
//     stable index.
//   - Edge is a directed arc between two Vertex values in G′.
//   - Path is a sequence of Edge values from Source to Sink.
//
// Why:
//
//   - G′ is never materialised as an adjacency list: packages proximity,
//     levels, and blocking only ever need to name a vertex or an edge, not
//     enumerate them. Keeping the vocabulary in its own tiny package lets
//     every other package share identical Vertex/Edge identity and
//     equality without re-deriving it.
//
// Complexity:
//
//   - All operations in this package are O(1).
//
// Errors:
//
//   - None. Vertex and Edge are plain comparable values; validity is
//     enforced by callers that construct them only from disk indices
//     assigned by package geometry.
package tgraph
