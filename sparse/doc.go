// Package sparse provides the map-backed directed-graph backend: adjacency
// and endpoint tables are hash maps keyed by identifier rather than dense
// slices, the Go rendition of a radix/IntMap-backed graph store.
//
// What:
//
//   - Mutable / Immutable: the counterpart pair, as in package digraph.
//   - Edge uniqueness: at most one edge per ordered (from, to) pair.
//     A duplicate insertion is *declined* — (0, false, nil) — exactly like
//     an out-of-range endpoint; nothing is allocated.
//
// Why:
//   - Wide, mostly-empty identifier neighborhoods waste nothing here, and
//     HasEdge is O(1) instead of an adjacency scan.
//   - The uniqueness constraint makes this the reference backend for
//     exercising declined-edge handling in the labeling adapters.
//
// Identifier allocation stays dense and monotonic (0..n-1), matching
// every other backend; only the internal storage differs.
//
// Complexity:
//
//   - AddVertex/AddEdge/HasEdge: O(1) expected
//   - Successors/OutEdges: O(out-degree) (fresh slice, insertion order)
//   - Freeze/Thaw: O(V+E) deep copy
package sparse
