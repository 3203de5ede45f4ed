// Package digraph provides the adjacency-list directed-graph backend:
// a compact slice-of-slices forward adjacency plus an edge endpoint table.
//
// What:
//
//   - Mutable: append-only builder. AddVertex/AddEdge allocate dense
//     identifiers; parallel edges and self-loops are permitted; the only
//     declined insertions are out-of-range endpoints.
//   - Immutable: frozen snapshot of a Mutable. Read-only, safe for
//     unsynchronized concurrent reads, thawable back into a fresh Mutable.
//
// Why:
//   - The baseline backend for the labeling adapters and the traversal
//     algorithms: cheapest possible storage when only forward adjacency
//     is needed.
//
// Both forms satisfy the core contracts as the counterpart pair
// (*Mutable = core.MutableGraph[*Immutable],
// *Immutable = core.ImmutableGraph[*Mutable]).
//
// Complexity:
//
//   - AddVertex/AddEdge: O(1) amortized
//   - Successors/OutEdges: O(out-degree) (fresh slice per call)
//   - HasEdge: O(out-degree)
//   - Freeze/Thaw: O(V+E) deep copy
package digraph
