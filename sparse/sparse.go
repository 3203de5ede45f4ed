// File: sparse.go
// Role: Mutable map-backed digraph with per-pair edge uniqueness.
// Determinism:
//   - Successors/OutEdges follow edge insertion order (ordered rows are
//     kept as slices; only membership lookups use maps).
// Concurrency:
//   - Single-writer; no internal locking.

package sparse

import "github.com/katalvlaran/lvlgraph/core"

// link is one forward adjacency entry: target and edge identifier.
type link struct {
	to core.VertexID
	id core.EdgeID
}

// pair records the endpoints of one edge.
type pair struct {
	from, to core.VertexID
}

// Mutable is an append-only map-backed digraph. At most one edge exists
// per ordered (from, to) pair; duplicates are declined, not errors.
//
// Construct with New or NewWithCapacity; the zero value is not ready.
type Mutable struct {
	vertices int // dense allocation counter: vertices are 0..vertices-1

	// out holds the ordered forward rows; lookup is the (from,to)
	// membership index backing uniqueness and HasEdge; arcs maps each
	// edge to its endpoints.
	out    map[core.VertexID][]link
	lookup map[core.VertexID]map[core.VertexID]core.EdgeID
	arcs   map[core.EdgeID]pair
}

var _ core.MutableGraph[*Immutable] = (*Mutable)(nil)

// New returns an empty mutable sparse digraph.
func New() *Mutable { return NewWithCapacity(0, 0) }

// NewWithCapacity returns an empty graph with map storage pre-sized for
// about vertexHint vertices and edgeHint edges. Negative hints are
// treated as zero.
func NewWithCapacity(vertexHint, edgeHint int) *Mutable {
	if vertexHint < 0 {
		vertexHint = 0
	}
	if edgeHint < 0 {
		edgeHint = 0
	}

	return &Mutable{
		out:    make(map[core.VertexID][]link, vertexHint),
		lookup: make(map[core.VertexID]map[core.VertexID]core.EdgeID, vertexHint),
		arcs:   make(map[core.EdgeID]pair, edgeHint),
	}
}

// VertexCount reports the number of allocated vertices. O(1).
func (g *Mutable) VertexCount() int { return g.vertices }

// EdgeCount reports the number of allocated edges. O(1).
func (g *Mutable) EdgeCount() int { return len(g.arcs) }

// AddVertex allocates the next vertex identifier. Never fails; rows are
// materialized lazily on first edge touch. O(1).
func (g *Mutable) AddVertex() (core.VertexID, error) {
	id := core.VertexID(g.vertices)
	g.vertices++

	return id, nil
}

// AddEdge allocates the next edge identifier for an edge from→to.
// Declines with (0, false, nil) on out-of-range endpoints or when an edge
// for the (from, to) pair already exists. O(1) expected.
func (g *Mutable) AddEdge(from, to core.VertexID) (core.EdgeID, bool, error) {
	n := core.VertexID(g.vertices)
	if from < 0 || from >= n || to < 0 || to >= n {
		return 0, false, nil
	}
	if _, dup := g.lookup[from][to]; dup {
		return 0, false, nil
	}

	id := core.EdgeID(len(g.arcs))
	g.arcs[id] = pair{from: from, to: to}
	g.out[from] = append(g.out[from], link{to: to, id: id})
	if g.lookup[from] == nil {
		g.lookup[from] = make(map[core.VertexID]core.EdgeID)
	}
	g.lookup[from][to] = id

	return id, true, nil
}

// Successors returns the targets of all out-edges of v in insertion
// order. Out-of-range v yields nil. O(out-degree); fresh slice.
func (g *Mutable) Successors(v core.VertexID) []core.VertexID {
	return rowTargets(g.out, v, g.vertices)
}

// OutEdges returns the identifiers of all out-edges of v in insertion
// order. Out-of-range v yields nil. O(out-degree); fresh slice.
func (g *Mutable) OutEdges(v core.VertexID) []core.EdgeID {
	return rowEdges(g.out, v, g.vertices)
}

// HasEdge reports whether the edge from→to exists. O(1) expected.
func (g *Mutable) HasEdge(from, to core.VertexID) bool {
	_, ok := g.lookup[from][to]

	return ok
}

// Endpoints reports the endpoints of edge e; ok=false when e is not an
// allocated edge identifier. O(1) expected.
func (g *Mutable) Endpoints(e core.EdgeID) (from, to core.VertexID, ok bool) {
	p, ok := g.arcs[e]
	if !ok {
		return 0, 0, false
	}

	return p.from, p.to, true
}

// Freeze produces an independent immutable snapshot. O(V+E).
func (g *Mutable) Freeze() *Immutable {
	return &Immutable{
		vertices: g.vertices,
		out:      cloneRows(g.out),
		lookup:   cloneLookup(g.lookup),
		arcs:     cloneArcs(g.arcs),
	}
}

// rowTargets builds a fresh target slice from one ordered row.
func rowTargets(out map[core.VertexID][]link, v core.VertexID, n int) []core.VertexID {
	if v < 0 || int(v) >= n {
		return nil
	}
	row := out[v]
	targets := make([]core.VertexID, len(row))
	for i, l := range row {
		targets[i] = l.to
	}

	return targets
}

// rowEdges builds a fresh edge-identifier slice from one ordered row.
func rowEdges(out map[core.VertexID][]link, v core.VertexID, n int) []core.EdgeID {
	if v < 0 || int(v) >= n {
		return nil
	}
	row := out[v]
	ids := make([]core.EdgeID, len(row))
	for i, l := range row {
		ids[i] = l.id
	}

	return ids
}

// cloneRows deep-copies the ordered forward rows.
func cloneRows(out map[core.VertexID][]link) map[core.VertexID][]link {
	cp := make(map[core.VertexID][]link, len(out))
	for v, row := range out {
		r := make([]link, len(row))
		copy(r, row)
		cp[v] = r
	}

	return cp
}

// cloneLookup deep-copies the (from,to) membership index.
func cloneLookup(lookup map[core.VertexID]map[core.VertexID]core.EdgeID) map[core.VertexID]map[core.VertexID]core.EdgeID {
	cp := make(map[core.VertexID]map[core.VertexID]core.EdgeID, len(lookup))
	for v, row := range lookup {
		r := make(map[core.VertexID]core.EdgeID, len(row))
		for to, id := range row {
			r[to] = id
		}
		cp[v] = r
	}

	return cp
}

// cloneArcs copies the endpoint table.
func cloneArcs(arcs map[core.EdgeID]pair) map[core.EdgeID]pair {
	cp := make(map[core.EdgeID]pair, len(arcs))
	for e, p := range arcs {
		cp[e] = p
	}

	return cp
}
