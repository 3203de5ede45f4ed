// Package edgelist builds labeled graphs from (from, to, label) triples,
// the usual shape of edge data arriving from files or other systems.
//
// What:
//
//   - Triple[K, E]: one edge between endpoint values of any comparable
//     type K, carrying an edge label E.
//   - Build: interns distinct endpoint values as vertices in first-seen
//     order (From before To within a triple), using the endpoint value
//     itself as the vertex label, then inserts each edge with the
//     triple's label. Returns the labeled mutable adapter, the
//     endpoint→identifier assignment, and the count of declined edges.
//
// Why:
//   - Deterministic identifier assignment from external data: the same
//     triple sequence always yields the same identifiers, regardless of
//     backend.
//
// Declined insertions (duplicate pairs on a uniqueness-enforcing
// backend, for instance) are routine outcomes: the triple is skipped and
// counted, never an error. Backend failures abort the build.
//
// Complexity: O(T) triples with O(1) interning per endpoint.
package edgelist
