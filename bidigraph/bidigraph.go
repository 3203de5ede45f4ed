// File: bidigraph.go
// Role: Mutable bidirectional digraph: forward storage delegated to
//       digraph.Mutable, reverse adjacency maintained alongside.
// Determinism:
//   - Predecessors/InEdges follow edge insertion order, like Successors.
// Concurrency:
//   - Single-writer; no internal locking.

package bidigraph

import (
	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/digraph"
)

// rhalf is one reverse adjacency entry: the edge's source and identifier.
type rhalf struct {
	from core.VertexID
	id   core.EdgeID
}

// Mutable is an append-only bidirectional digraph. Forward topology lives
// in an embedded adjacency-list digraph; the reverse index is kept in
// lockstep with every accepted edge insertion.
//
// Construct with New or NewWithCapacity; the zero value is not ready.
type Mutable struct {
	fwd *digraph.Mutable
	in  [][]rhalf // in[v] = reverse adjacency of v
}

var (
	_ core.MutableGraph[*Immutable] = (*Mutable)(nil)
	_ core.Bidirectional            = (*Mutable)(nil)
)

// New returns an empty mutable bidirectional digraph.
func New() *Mutable { return NewWithCapacity(0, 0) }

// NewWithCapacity returns an empty graph pre-sized for about vertexHint
// vertices and edgeHint edges. Negative hints are treated as zero.
func NewWithCapacity(vertexHint, edgeHint int) *Mutable {
	if vertexHint < 0 {
		vertexHint = 0
	}

	return &Mutable{
		fwd: digraph.NewWithCapacity(vertexHint, edgeHint),
		in:  make([][]rhalf, 0, vertexHint),
	}
}

// VertexCount reports the number of allocated vertices. O(1).
func (g *Mutable) VertexCount() int { return g.fwd.VertexCount() }

// EdgeCount reports the number of allocated edges. O(1).
func (g *Mutable) EdgeCount() int { return g.fwd.EdgeCount() }

// AddVertex allocates the next vertex identifier. Never fails. O(1) amortized.
func (g *Mutable) AddVertex() (core.VertexID, error) {
	id, err := g.fwd.AddVertex()
	if err != nil {
		return 0, err
	}
	g.in = append(g.in, nil)

	return id, nil
}

// AddEdge allocates the next edge identifier for an edge from→to and
// records it in both directions. Out-of-range endpoints decline with
// (0, false, nil). O(1) amortized.
func (g *Mutable) AddEdge(from, to core.VertexID) (core.EdgeID, bool, error) {
	id, ok, err := g.fwd.AddEdge(from, to)
	if err != nil || !ok {
		return 0, false, err
	}
	g.in[to] = append(g.in[to], rhalf{from: from, id: id})

	return id, true, nil
}

// Successors returns the targets of all out-edges of v. O(out-degree).
func (g *Mutable) Successors(v core.VertexID) []core.VertexID {
	return g.fwd.Successors(v)
}

// OutEdges returns the identifiers of all out-edges of v. O(out-degree).
func (g *Mutable) OutEdges(v core.VertexID) []core.EdgeID {
	return g.fwd.OutEdges(v)
}

// HasEdge reports whether at least one edge from→to exists. O(out-degree).
func (g *Mutable) HasEdge(from, to core.VertexID) bool {
	return g.fwd.HasEdge(from, to)
}

// Predecessors returns the sources of all in-edges of v in insertion
// order, one entry per parallel edge. Out-of-range v yields nil.
// O(in-degree); fresh slice.
func (g *Mutable) Predecessors(v core.VertexID) []core.VertexID {
	return predecessors(g.in, v)
}

// InEdges returns the identifiers of all in-edges of v in insertion
// order. Out-of-range v yields nil. O(in-degree); fresh slice.
func (g *Mutable) InEdges(v core.VertexID) []core.EdgeID {
	return inEdges(g.in, v)
}

// Endpoints reports the endpoints of edge e; ok=false when e is not an
// allocated edge identifier. O(1).
func (g *Mutable) Endpoints(e core.EdgeID) (from, to core.VertexID, ok bool) {
	return g.fwd.Endpoints(e)
}

// Freeze produces an independent immutable snapshot of the current
// topology, reverse index included. O(V+E).
func (g *Mutable) Freeze() *Immutable {
	return &Immutable{
		fwd: g.fwd.Freeze(),
		in:  cloneReverse(g.in),
	}
}

// predecessors builds a fresh source slice from one reverse adjacency row.
func predecessors(in [][]rhalf, v core.VertexID) []core.VertexID {
	if v < 0 || int(v) >= len(in) {
		return nil
	}
	row := in[v]
	sources := make([]core.VertexID, len(row))
	for i, h := range row {
		sources[i] = h.from
	}

	return sources
}

// inEdges builds a fresh edge-identifier slice from one reverse adjacency row.
func inEdges(in [][]rhalf, v core.VertexID) []core.EdgeID {
	if v < 0 || int(v) >= len(in) {
		return nil
	}
	row := in[v]
	ids := make([]core.EdgeID, len(row))
	for i, h := range row {
		ids[i] = h.id
	}

	return ids
}

// cloneReverse deep-copies the reverse adjacency.
func cloneReverse(in [][]rhalf) [][]rhalf {
	cp := make([][]rhalf, len(in))
	for v, row := range in {
		if len(row) == 0 {
			continue
		}
		cp[v] = make([]rhalf, len(row))
		copy(cp[v], row)
	}

	return cp
}
