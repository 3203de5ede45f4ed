// Package label decorates any graph backend with per-vertex and per-edge
// labels, without touching the backend's own representation.
//
// What:
//
//   - Mutable[G, I, V, E]: wraps a mutable backend G, owning two growable
//     label stores kept in lockstep with the backend's identifier
//     allocation. AddVertex/AddEdge insert into the backend and record
//     the label at the freshly allocated identifier; every unlabeled
//     structural query forwards verbatim, so the adapter remains a
//     drop-in core.Graph.
//   - Immutable[I, G, V, E]: wraps a frozen backend I with two
//     exactly-sized read-only stores. Safe for unsynchronized concurrent
//     reads.
//   - Freeze/Thaw: each direction deep-copies both the structure
//     (delegated to the backend) and the label vectors, so a snapshot and
//     the builder it came from — or goes back to — never alias.
//
// Why:
//   - Labels live beside the graph, not inside it: any backend satisfying
//     the core contracts gains labeling for free, and algorithms consume
//     labels through two lookups plus the ordinary structural surface.
//
// Lookup semantics:
//
//	Lookups are bounds-checked against the wrapped graph's *current*
//	extent, not the store's physical capacity; an identifier at or beyond
//	the current count is absent — (zero, false) — even when over-allocated
//	slots physically exist. Absence is routine data, never an error.
//
// Growth policy:
//
//	After every accepted insertion the store's length must strictly
//	exceed the wrapped graph's new count; when it would not, the store
//	doubles (from 1 when starting empty). Insertion stays amortized O(1)
//	and over-allocation is bounded by 2×.
//
// Errors:
//
//   - ErrNegativeCapacity   capacity hint below zero at construction
//   - ErrVertexLabelCount   direct construction with a mis-sized vertex vector
//   - ErrEdgeLabelCount     direct construction with a mis-sized edge vector
//   - backend errors        propagated unchanged, with no store mutation
//
// Complexity: labeled insertion amortized O(1); lookups and forwarding
// O(1) plus the backend's own cost; Freeze/Thaw O(V+E).
package label
