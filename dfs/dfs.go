// File: dfs.go
// Role: Recursive depth-first walker over the capability interface.
// Determinism:
//   - Successors are explored in the order the backend reports them
//     (edge insertion order on the shipped backends).

package dfs

import "github.com/katalvlaran/lvlgraph/core"

// walker carries traversal state across recursive calls.
type walker struct {
	graph core.Graph
	opts  Options
	res   *Result
}

// DFS performs a depth-first search on g. With WithFullTraversal it
// covers every component, restarting in ascending identifier order;
// otherwise it explores only the subgraph reachable from root.
// Returns the partial Result together with the error when a hook or the
// context aborts the traversal.
func DFS(g core.Graph, root core.VertexID, opts ...Option) (*Result, error) {
	// 1. Validate the input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify the root is allocated.
	n := g.VertexCount()
	if !o.FullTraversal && (root < 0 || int(root) >= n) {
		return nil, ErrRootOutOfRange
	}

	// 4. Initialize the result with capacity hints.
	res := &Result{
		Order:     make([]core.VertexID, 0, n),
		PostOrder: make([]core.VertexID, 0, n),
		Parent:    make(map[core.VertexID]core.VertexID, n),
		Depth:     make([]int, n),
		Visited:   make([]bool, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
	}

	w := &walker{graph: g, opts: o, res: res}

	// 5. Traverse: forest or single tree.
	if o.FullTraversal {
		for v := range n {
			if !res.Visited[v] {
				if err := w.traverse(core.VertexID(v), 0); err != nil {
					res.SkippedNeighbors = w.opts.SkippedNeighbors

					return res, err
				}
			}
		}
	} else if err := w.traverse(root, 0); err != nil {
		res.SkippedNeighbors = w.opts.SkippedNeighbors

		return res, err
	}

	// 6. Expose diagnostics.
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse visits v at the given depth and recurses into its successors,
// honoring cancellation, the depth limit, hooks, and filtering.
func (w *walker) traverse(v core.VertexID, depth int) error {
	// Cancellation check first, so deep recursions abort promptly.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return err
		}
	}

	// Depth limit: successors of v are beyond the allowed depth.
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return w.exit(v)
	}

	for _, next := range w.graph.Successors(v) {
		if w.res.Visited[next] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(next) {
			w.opts.SkippedNeighbors++

			continue
		}
		w.res.Parent[next] = v
		if err := w.traverse(next, depth+1); err != nil {
			return err
		}
	}

	return w.exit(v)
}

// exit runs the post-order hook and records v in PostOrder.
func (w *walker) exit(v core.VertexID) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return err
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, v)

	return nil
}
