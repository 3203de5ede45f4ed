// Package bidigraph provides the bidirectional directed-graph backend:
// the adjacency-list digraph plus a reverse adjacency index, so both
// successors and predecessors are O(degree) queries.
//
// What:
//
//   - Mutable / Immutable: the counterpart pair, as in package digraph,
//     with the core.Bidirectional extension (Predecessors, InEdges)
//     available on both forms.
//
// Why:
//   - Algorithms that walk edges backwards (dominator trees, reverse
//     reachability) need indexed in-edges; maintaining the reverse index
//     at insertion time costs O(1) per edge instead of an O(V+E) scan
//     per query.
//
// Same insertion semantics as digraph: parallel edges and self-loops
// permitted, out-of-range endpoints declined.
//
// Complexity: as digraph, plus Predecessors/InEdges O(in-degree).
package bidigraph
