// File: frozen.go
// Role: Immutable adjacency-list digraph: read-only queries, enumeration, Thaw.
// Determinism:
//   - Vertices/Edges enumerate identifiers in ascending order.
// Concurrency:
//   - No mutation after construction; safe for unsynchronized concurrent reads.

package digraph

import (
	"iter"

	"github.com/katalvlaran/lvlgraph/core"
)

// Immutable is a frozen adjacency-list digraph snapshot. Construct via
// (*Mutable).Freeze; never mutated afterwards.
type Immutable struct {
	out  [][]half
	arcs []arc
}

var _ core.ImmutableGraph[*Mutable] = (*Immutable)(nil)

// VertexCount reports the number of vertices in the snapshot. O(1).
func (g *Immutable) VertexCount() int { return len(g.out) }

// EdgeCount reports the number of edges in the snapshot. O(1).
func (g *Immutable) EdgeCount() int { return len(g.arcs) }

// Successors returns the targets of all out-edges of v in insertion
// order. Out-of-range v yields nil. O(out-degree); fresh slice.
func (g *Immutable) Successors(v core.VertexID) []core.VertexID {
	return successors(g.out, v)
}

// OutEdges returns the identifiers of all out-edges of v in insertion
// order. Out-of-range v yields nil. O(out-degree); fresh slice.
func (g *Immutable) OutEdges(v core.VertexID) []core.EdgeID {
	return outEdges(g.out, v)
}

// HasEdge reports whether at least one edge from→to exists. O(out-degree).
func (g *Immutable) HasEdge(from, to core.VertexID) bool {
	return hasEdge(g.out, from, to)
}

// Endpoints reports the endpoints of edge e. ok=false when e is not an
// allocated edge identifier. O(1).
func (g *Immutable) Endpoints(e core.EdgeID) (from, to core.VertexID, ok bool) {
	if e < 0 || int(e) >= len(g.arcs) {
		return 0, 0, false
	}
	a := g.arcs[e]

	return a.from, a.to, true
}

// Vertices enumerates all vertex identifiers in ascending order as a
// lazy, restartable sequence.
func (g *Immutable) Vertices() iter.Seq[core.VertexID] {
	return func(yield func(core.VertexID) bool) {
		for v := range len(g.out) {
			if !yield(core.VertexID(v)) {
				return
			}
		}
	}
}

// Edges enumerates all edge identifiers in ascending order as a lazy,
// restartable sequence.
func (g *Immutable) Edges() iter.Seq[core.EdgeID] {
	return func(yield func(core.EdgeID) bool) {
		for e := range len(g.arcs) {
			if !yield(core.EdgeID(e)) {
				return
			}
		}
	}
}

// MaxVertexID reports the largest allocated vertex identifier;
// ok=false when the snapshot is empty. O(1).
func (g *Immutable) MaxVertexID() (core.VertexID, bool) {
	if len(g.out) == 0 {
		return 0, false
	}

	return core.VertexID(len(g.out) - 1), true
}

// Empty reports whether the snapshot has no vertices. O(1).
func (g *Immutable) Empty() bool { return len(g.out) == 0 }

// Thaw produces a fresh, independent mutable copy of the snapshot.
// The snapshot stays valid; mutations of the copy never show through it.
// O(V+E).
func (g *Immutable) Thaw() *Mutable {
	return &Mutable{
		out:  cloneAdjacency(g.out),
		arcs: cloneArcs(g.arcs),
	}
}
