// Package dfs implements depth-first search (single-source and forest)
// over any core.Graph — bare backends, frozen snapshots, and labeling
// adapters alike.
//
// What:
//
//   - DFS(g, root, opts...): traverse from a root, or the whole graph via
//     WithFullTraversal. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//
// Why:
//   - Reachability, ordering, and the reverse-postorder backbone that
//     package dominators builds on.
//   - One implementation for every backend: the walker sees only the
//     capability interface, never concrete storage.
//
// Key Types:
//
//   - Option: functional options for traversal behavior
//   - Options: holds Context, hooks, MaxDepth, FilterNeighbor, FullTraversal
//   - Result: pre-order Order, post-order PostOrder, Parent, Depth, Visited
//
// Complexity:
//
//   - Time O(V+E) plus hook and filter overhead; Memory O(V).
//
// Errors:
//
//   - ErrGraphNil         graph is nil
//   - ErrRootOutOfRange   root identifier not allocated in g
//   - context.Canceled    traversal canceled via context
//   - hook errors         propagated from OnVisit or OnExit
package dfs
