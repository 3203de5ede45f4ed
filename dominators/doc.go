// Package dominators computes immediate-dominator trees over any
// core.Bidirectional graph, typically a frozen control-flow snapshot.
//
// What:
//
//   - Tree(g, root): the dominator tree of the subgraph reachable from
//     root, using the Cooper–Harvey–Kennedy iterative algorithm over a
//     reverse-postorder numbering (a simple, engineered alternative to
//     Lengauer–Tarjan that converges in very few passes on real graphs).
//   - DomTree: IDom lookup, reachability, and ancestor (Dominates) queries.
//
// Why:
//   - Dominance is the backbone of flow analyses: placing joins, finding
//     natural loops, proving that one node gates another.
//
// Conventions:
//
//   - The root's immediate dominator is the root itself.
//   - Vertices unreachable from the root have no dominator; IDom reports
//     ok=false for them.
//
// Complexity:
//
//   - Time O(V·E) worst case, near O(V+E) in practice; Memory O(V).
//
// Errors:
//
//   - ErrGraphNil         graph is nil
//   - ErrRootOutOfRange   root identifier not allocated in g
package dominators
