// File: digraph.go
// Role: Mutable adjacency-list digraph: construction, structural queries, Freeze.
// Determinism:
//   - Identifiers are allocated densely in insertion order.
//   - Successors/OutEdges follow edge insertion order.
// Concurrency:
//   - Single-writer; no internal locking.

package digraph

import "github.com/katalvlaran/lvlgraph/core"

// half is one forward adjacency entry: the edge's target and identifier.
type half struct {
	to core.VertexID
	id core.EdgeID
}

// arc records both endpoints of an edge, indexed by core.EdgeID.
type arc struct {
	from, to core.VertexID
}

// Mutable is an append-only adjacency-list digraph.
//
// The zero value is not ready for use; construct with New or
// NewWithCapacity.
type Mutable struct {
	out  [][]half // out[v] = forward adjacency of v
	arcs []arc    // arcs[e] = endpoints of edge e
}

// compile-time contract check: (*Mutable, *Immutable) is a counterpart pair.
var _ core.MutableGraph[*Immutable] = (*Mutable)(nil)

// New returns an empty mutable digraph.
func New() *Mutable { return NewWithCapacity(0, 0) }

// NewWithCapacity returns an empty mutable digraph with storage pre-sized
// for about vertexHint vertices and edgeHint edges. Negative hints are
// treated as zero. Hints affect only allocation, never observable state.
func NewWithCapacity(vertexHint, edgeHint int) *Mutable {
	if vertexHint < 0 {
		vertexHint = 0
	}
	if edgeHint < 0 {
		edgeHint = 0
	}

	return &Mutable{
		out:  make([][]half, 0, vertexHint),
		arcs: make([]arc, 0, edgeHint),
	}
}

// VertexCount reports the number of allocated vertices. O(1).
func (g *Mutable) VertexCount() int { return len(g.out) }

// EdgeCount reports the number of allocated edges. O(1).
func (g *Mutable) EdgeCount() int { return len(g.arcs) }

// AddVertex allocates the next vertex identifier. Never fails. O(1) amortized.
func (g *Mutable) AddVertex() (core.VertexID, error) {
	id := core.VertexID(len(g.out))
	g.out = append(g.out, nil)

	return id, nil
}

// AddEdge allocates the next edge identifier for an edge from→to.
// Out-of-range endpoints decline with (0, false, nil); parallel edges and
// self-loops are always accepted. O(1) amortized.
func (g *Mutable) AddEdge(from, to core.VertexID) (core.EdgeID, bool, error) {
	n := core.VertexID(len(g.out))
	if from < 0 || from >= n || to < 0 || to >= n {
		return 0, false, nil
	}

	id := core.EdgeID(len(g.arcs))
	g.arcs = append(g.arcs, arc{from: from, to: to})
	g.out[from] = append(g.out[from], half{to: to, id: id})

	return id, true, nil
}

// Successors returns the targets of all out-edges of v in insertion
// order, one entry per parallel edge. Out-of-range v yields nil.
// O(out-degree); the result is a fresh slice.
func (g *Mutable) Successors(v core.VertexID) []core.VertexID {
	return successors(g.out, v)
}

// OutEdges returns the identifiers of all out-edges of v in insertion
// order. Out-of-range v yields nil. O(out-degree); fresh slice.
func (g *Mutable) OutEdges(v core.VertexID) []core.EdgeID {
	return outEdges(g.out, v)
}

// HasEdge reports whether at least one edge from→to exists. O(out-degree).
func (g *Mutable) HasEdge(from, to core.VertexID) bool {
	return hasEdge(g.out, from, to)
}

// Endpoints reports the endpoints of edge e. ok=false when e is not an
// allocated edge identifier. O(1).
func (g *Mutable) Endpoints(e core.EdgeID) (from, to core.VertexID, ok bool) {
	if e < 0 || int(e) >= len(g.arcs) {
		return 0, 0, false
	}
	a := g.arcs[e]

	return a.from, a.to, true
}

// Freeze produces an independent immutable snapshot of the current
// topology. The receiver stays valid and mutable; neither side observes
// later changes to the other. O(V+E).
func (g *Mutable) Freeze() *Immutable {
	return &Immutable{
		out:  cloneAdjacency(g.out),
		arcs: cloneArcs(g.arcs),
	}
}

// successors builds a fresh target slice from one adjacency row.
func successors(out [][]half, v core.VertexID) []core.VertexID {
	if v < 0 || int(v) >= len(out) {
		return nil
	}
	row := out[v]
	targets := make([]core.VertexID, len(row))
	for i, h := range row {
		targets[i] = h.to
	}

	return targets
}

// outEdges builds a fresh edge-identifier slice from one adjacency row.
func outEdges(out [][]half, v core.VertexID) []core.EdgeID {
	if v < 0 || int(v) >= len(out) {
		return nil
	}
	row := out[v]
	ids := make([]core.EdgeID, len(row))
	for i, h := range row {
		ids[i] = h.id
	}

	return ids
}

// hasEdge scans one adjacency row for a target.
func hasEdge(out [][]half, from, to core.VertexID) bool {
	if from < 0 || int(from) >= len(out) {
		return false
	}
	for _, h := range out[from] {
		if h.to == to {
			return true
		}
	}

	return false
}

// cloneAdjacency deep-copies a slice-of-slices adjacency, so that
// appends on either side never alias the other.
func cloneAdjacency(out [][]half) [][]half {
	cp := make([][]half, len(out))
	for v, row := range out {
		if len(row) == 0 {
			continue
		}
		cp[v] = make([]half, len(row))
		copy(cp[v], row)
	}

	return cp
}

// cloneArcs copies the endpoint table.
func cloneArcs(arcs []arc) []arc {
	cp := make([]arc, len(arcs))
	copy(cp, arcs)

	return cp
}
