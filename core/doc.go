// Package core defines the identifier types and capability contracts that
// every lvlgraph backend, adapter, and algorithm shares.
//
// What:
//
//   - VertexID / EdgeID: dense, non-negative integer identifiers allocated
//     by a backend in strictly increasing order and never reused.
//   - Graph: the read-only structural surface (counts, successors,
//     out-edges, edge existence) common to mutable and immutable forms.
//   - Bidirectional: optional extension adding predecessors and in-edges.
//   - MutableGraph[I]: append-only construction surface whose Freeze
//     produces the immutable counterpart I.
//   - ImmutableGraph[M]: frozen snapshot surface (lazy vertex/edge
//     enumeration, max-identifier, emptiness) whose Thaw produces a fresh
//     mutable counterpart M.
//
// Why:
//   - Keep algorithms and the labeling adapters fully polymorphic over
//     concrete storage: anything satisfying these contracts plugs in.
//   - Express the mutable↔immutable duality statically, as two distinct
//     types connected by explicit deep-copying conversions.
//
// The mutual counterpart relationship is spelled with paired type
// parameters: a backend provides a pair (G, I) with
// G = MutableGraph[I] and I = ImmutableGraph[G].
//
// Errors:
//
//   - The contracts are value-based: a declined edge insertion is
//     (0, false, nil), an absent result is an ok=false return. Backend
//     failures surface as ordinary errors from AddVertex/AddEdge.
//
// Complexity expectations (contract, not enforcement): counting and edge
// existence O(1) or O(degree); enumeration O(degree) per vertex;
// Freeze/Thaw O(V+E) deep copies.
package core
