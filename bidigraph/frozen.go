// File: frozen.go
// Role: Immutable bidirectional digraph snapshot.
// Concurrency:
//   - No mutation after construction; safe for unsynchronized concurrent reads.

package bidigraph

import (
	"iter"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/digraph"
)

// Immutable is a frozen bidirectional digraph snapshot. Construct via
// (*Mutable).Freeze; never mutated afterwards.
type Immutable struct {
	fwd *digraph.Immutable
	in  [][]rhalf
}

var (
	_ core.ImmutableGraph[*Mutable] = (*Immutable)(nil)
	_ core.Bidirectional            = (*Immutable)(nil)
)

// VertexCount reports the number of vertices in the snapshot. O(1).
func (g *Immutable) VertexCount() int { return g.fwd.VertexCount() }

// EdgeCount reports the number of edges in the snapshot. O(1).
func (g *Immutable) EdgeCount() int { return g.fwd.EdgeCount() }

// Successors returns the targets of all out-edges of v. O(out-degree).
func (g *Immutable) Successors(v core.VertexID) []core.VertexID {
	return g.fwd.Successors(v)
}

// OutEdges returns the identifiers of all out-edges of v. O(out-degree).
func (g *Immutable) OutEdges(v core.VertexID) []core.EdgeID {
	return g.fwd.OutEdges(v)
}

// HasEdge reports whether at least one edge from→to exists. O(out-degree).
func (g *Immutable) HasEdge(from, to core.VertexID) bool {
	return g.fwd.HasEdge(from, to)
}

// Predecessors returns the sources of all in-edges of v. O(in-degree).
func (g *Immutable) Predecessors(v core.VertexID) []core.VertexID {
	return predecessors(g.in, v)
}

// InEdges returns the identifiers of all in-edges of v. O(in-degree).
func (g *Immutable) InEdges(v core.VertexID) []core.EdgeID {
	return inEdges(g.in, v)
}

// Endpoints reports the endpoints of edge e; ok=false when e is not an
// allocated edge identifier. O(1).
func (g *Immutable) Endpoints(e core.EdgeID) (from, to core.VertexID, ok bool) {
	return g.fwd.Endpoints(e)
}

// Vertices enumerates all vertex identifiers in ascending order.
func (g *Immutable) Vertices() iter.Seq[core.VertexID] { return g.fwd.Vertices() }

// Edges enumerates all edge identifiers in ascending order.
func (g *Immutable) Edges() iter.Seq[core.EdgeID] { return g.fwd.Edges() }

// MaxVertexID reports the largest allocated vertex identifier;
// ok=false when the snapshot is empty. O(1).
func (g *Immutable) MaxVertexID() (core.VertexID, bool) { return g.fwd.MaxVertexID() }

// Empty reports whether the snapshot has no vertices. O(1).
func (g *Immutable) Empty() bool { return g.fwd.Empty() }

// Thaw produces a fresh, independent mutable copy of the snapshot,
// reverse index included. O(V+E).
func (g *Immutable) Thaw() *Mutable {
	return &Mutable{
		fwd: g.fwd.Thaw(),
		in:  cloneReverse(g.in),
	}
}
