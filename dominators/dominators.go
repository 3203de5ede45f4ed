// File: dominators.go
// Role: Iterative immediate-dominator computation and DomTree queries.
// Determinism:
//   - The fixed point is unique; iteration order only affects pass count.

package dominators

import (
	"errors"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/dfs"
)

var (
	// ErrGraphNil is returned when a nil core.Bidirectional is passed to Tree.
	ErrGraphNil = errors.New("dominators: graph is nil")

	// ErrRootOutOfRange indicates the root identifier is not allocated in
	// the graph.
	ErrRootOutOfRange = errors.New("dominators: root vertex out of range")
)

// none marks "no dominator yet" in the internal idom table. It never
// escapes through the public surface.
const none = core.VertexID(-1)

// DomTree is the immediate-dominator tree of the subgraph reachable from
// its root. Read-only after construction; safe for concurrent reads.
type DomTree struct {
	root core.VertexID
	idom []core.VertexID // idom[v], or none for unreachable v
}

// Tree computes the dominator tree of g rooted at root.
//
// Steps:
//  1. Number the reachable subgraph in postorder via a DFS from root.
//  2. Seed idom[root] = root.
//  3. Sweep reachable vertices in reverse postorder, recomputing each
//     vertex's idom as the intersection of its processed predecessors,
//     until a full pass changes nothing.
//
// Complexity: O(V·E) worst case, few passes in practice.
func Tree(g core.Bidirectional, root core.VertexID) (*DomTree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if root < 0 || int(root) >= n {
		return nil, ErrRootOutOfRange
	}

	// 1. Postorder numbering of the reachable subgraph.
	walk, err := dfs.DFS(g, root)
	if err != nil {
		return nil, err
	}
	post := walk.PostOrder
	poNum := make([]int, n)
	for i := range poNum {
		poNum[i] = -1
	}
	for i, v := range post {
		poNum[v] = i
	}

	// 2. Seed the fixed point.
	idom := make([]core.VertexID, n)
	for i := range idom {
		idom[i] = none
	}
	idom[root] = root

	// 3. Iterate to the fixed point.
	changed := true
	for changed {
		changed = false
		for i := len(post) - 1; i >= 0; i-- {
			b := post[i]
			if b == root {
				continue
			}
			newIdom := none
			for _, p := range g.Predecessors(b) {
				if poNum[p] < 0 || idom[p] == none {
					continue // unreachable or not yet processed
				}
				if newIdom == none {
					newIdom = p
				} else {
					newIdom = intersect(p, newIdom, idom, poNum)
				}
			}
			if newIdom != none && idom[b] != newIdom {
				idom[b] = newIdom
				changed = true
			}
		}
	}

	return &DomTree{root: root, idom: idom}, nil
}

// intersect walks two dominator-tree fingers up to their common ancestor,
// comparing postorder numbers (smaller number = deeper in reverse postorder).
func intersect(a, b core.VertexID, idom []core.VertexID, poNum []int) core.VertexID {
	for a != b {
		for poNum[a] < poNum[b] {
			a = idom[a]
		}
		for poNum[b] < poNum[a] {
			b = idom[b]
		}
	}

	return a
}

// Root reports the root the tree was computed from.
func (t *DomTree) Root() core.VertexID { return t.root }

// IDom reports the immediate dominator of v. The root's immediate
// dominator is the root itself; ok=false for out-of-range or unreachable
// vertices. O(1).
func (t *DomTree) IDom(v core.VertexID) (core.VertexID, bool) {
	if v < 0 || int(v) >= len(t.idom) || t.idom[v] == none {
		return 0, false
	}

	return t.idom[v], true
}

// Reachable reports whether v was reachable from the root. O(1).
func (t *DomTree) Reachable(v core.VertexID) bool {
	return v >= 0 && int(v) < len(t.idom) && t.idom[v] != none
}

// Dominates reports whether a dominates b: every path from the root to b
// passes through a. Every reachable vertex dominates itself.
// O(height of the dominator tree).
func (t *DomTree) Dominates(a, b core.VertexID) bool {
	if !t.Reachable(a) || !t.Reachable(b) {
		return false
	}
	for {
		if b == a {
			return true
		}
		if b == t.root {
			return false
		}
		b = t.idom[b]
	}
}
