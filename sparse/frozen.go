// File: frozen.go
// Role: Immutable map-backed digraph snapshot.
// Concurrency:
//   - No mutation after construction; safe for unsynchronized concurrent reads.

package sparse

import (
	"iter"

	"github.com/katalvlaran/lvlgraph/core"
)

// Immutable is a frozen sparse digraph snapshot. Construct via
// (*Mutable).Freeze; never mutated afterwards.
type Immutable struct {
	vertices int

	out    map[core.VertexID][]link
	lookup map[core.VertexID]map[core.VertexID]core.EdgeID
	arcs   map[core.EdgeID]pair
}

var _ core.ImmutableGraph[*Mutable] = (*Immutable)(nil)

// VertexCount reports the number of vertices in the snapshot. O(1).
func (g *Immutable) VertexCount() int { return g.vertices }

// EdgeCount reports the number of edges in the snapshot. O(1).
func (g *Immutable) EdgeCount() int { return len(g.arcs) }

// Successors returns the targets of all out-edges of v in insertion
// order. Out-of-range v yields nil. O(out-degree); fresh slice.
func (g *Immutable) Successors(v core.VertexID) []core.VertexID {
	return rowTargets(g.out, v, g.vertices)
}

// OutEdges returns the identifiers of all out-edges of v in insertion
// order. Out-of-range v yields nil. O(out-degree); fresh slice.
func (g *Immutable) OutEdges(v core.VertexID) []core.EdgeID {
	return rowEdges(g.out, v, g.vertices)
}

// HasEdge reports whether the edge from→to exists. O(1) expected.
func (g *Immutable) HasEdge(from, to core.VertexID) bool {
	_, ok := g.lookup[from][to]

	return ok
}

// Endpoints reports the endpoints of edge e; ok=false when e is not an
// allocated edge identifier. O(1) expected.
func (g *Immutable) Endpoints(e core.EdgeID) (from, to core.VertexID, ok bool) {
	p, ok := g.arcs[e]
	if !ok {
		return 0, 0, false
	}

	return p.from, p.to, true
}

// Vertices enumerates all vertex identifiers in ascending order.
func (g *Immutable) Vertices() iter.Seq[core.VertexID] {
	return func(yield func(core.VertexID) bool) {
		for v := range g.vertices {
			if !yield(core.VertexID(v)) {
				return
			}
		}
	}
}

// Edges enumerates all edge identifiers in ascending order.
// Edge identifiers are dense even in the sparse backend, so the sequence
// is simply 0..EdgeCount-1.
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
	if g.vertices == 0 {
		return 0, false
	}

	return core.VertexID(g.vertices - 1), true
}

// Empty reports whether the snapshot has no vertices. O(1).
func (g *Immutable) Empty() bool { return g.vertices == 0 }

// Thaw produces a fresh, independent mutable copy of the snapshot. O(V+E).
func (g *Immutable) Thaw() *Mutable {
	return &Mutable{
		vertices: g.vertices,
		out:      cloneRows(g.out),
		lookup:   cloneLookup(g.lookup),
		arcs:     cloneArcs(g.arcs),
	}
}
