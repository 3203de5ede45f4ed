// File: mutable.go
// Role: Mutable labeling adapter: labeled insertion, lookup, structural
//       forwarding, Freeze.
// Determinism:
//   - Identifiers are whatever the wrapped backend allocates; the adapter
//     never allocates identifiers itself.
// Concurrency:
//   - Single-writer: store growth swaps the underlying buffer and is not
//     synchronized.

package label

import "github.com/katalvlaran/lvlgraph/core"

// Mutable decorates a mutable graph backend G with growable per-vertex
// and per-edge label stores. G and I are the backend's counterpart pair;
// V and E are the vertex and edge label types.
//
// Construct with New or NewWithCapacity; the zero value is not ready.
type Mutable[G core.MutableGraph[I], I core.ImmutableGraph[G], V, E any] struct {
	g       G
	vlabels []V // len(vlabels) > g.VertexCount() after any labeled insertion
	elabels []E // same invariant over edges
}

// New wraps a fresh backend produced by newGraph with label stores of
// DefaultCapacity. It fails only if newGraph fails.
func New[G core.MutableGraph[I], I core.ImmutableGraph[G], V, E any](
	newGraph func() (G, error),
) (*Mutable[G, I, V, E], error) {
	g, err := newGraph()
	if err != nil {
		return nil, err
	}

	return &Mutable[G, I, V, E]{
		g:       g,
		vlabels: make([]V, DefaultCapacity),
		elabels: make([]E, DefaultCapacity),
	}, nil
}

// NewWithCapacity wraps a fresh backend produced by newGraph(vertexHint,
// edgeHint) with label stores pre-sized to the same hints, avoiding early
// growth. Hints must be non-negative (ErrNegativeCapacity); zero is legal
// and simply means the first insertion triggers a grow.
func NewWithCapacity[G core.MutableGraph[I], I core.ImmutableGraph[G], V, E any](
	newGraph func(vertexHint, edgeHint int) (G, error),
	vertexHint, edgeHint int,
) (*Mutable[G, I, V, E], error) {
	if vertexHint < 0 || edgeHint < 0 {
		return nil, ErrNegativeCapacity
	}
	g, err := newGraph(vertexHint, edgeHint)
	if err != nil {
		return nil, err
	}

	return &Mutable[G, I, V, E]{
		g:       g,
		vlabels: make([]V, vertexHint),
		elabels: make([]E, edgeHint),
	}, nil
}

// AddVertex inserts a new vertex into the wrapped graph and records lbl
// at the freshly allocated identifier. A backend failure propagates
// unchanged with no store mutation. Amortized O(1).
func (m *Mutable[G, I, V, E]) AddVertex(lbl V) (core.VertexID, error) {
	v, err := m.g.AddVertex()
	if err != nil {
		return 0, err
	}
	m.vlabels = grow(m.vlabels, m.g.VertexCount())
	m.vlabels[v] = lbl

	return v, nil
}

// AddEdge delegates edge creation to the wrapped graph and, on success,
// records lbl at the new edge identifier. A declined insertion —
// ok=false, nil error — leaves the edge store untouched: no orphaned
// label is ever written. Backend failures propagate unchanged.
// Amortized O(1).
func (m *Mutable[G, I, V, E]) AddEdge(from, to core.VertexID, lbl E) (core.EdgeID, bool, error) {
	e, ok, err := m.g.AddEdge(from, to)
	if err != nil || !ok {
		return 0, false, err
	}
	m.elabels = grow(m.elabels, m.g.EdgeCount())
	m.elabels[e] = lbl

	return e, true, nil
}

// VertexLabel returns the label recorded for v. Absent — (zero, false) —
// when v is not currently allocated in the wrapped graph, even if an
// over-allocated slot physically exists. O(1).
func (m *Mutable[G, I, V, E]) VertexLabel(v core.VertexID) (V, bool) {
	if v < 0 || int(v) >= m.g.VertexCount() {
		var zero V

		return zero, false
	}

	return m.vlabels[v], true
}

// EdgeLabel returns the label recorded for e; absent when e is not
// currently allocated in the wrapped graph. O(1).
func (m *Mutable[G, I, V, E]) EdgeLabel(e core.EdgeID) (E, bool) {
	if e < 0 || int(e) >= m.g.EdgeCount() {
		var zero E

		return zero, false
	}

	return m.elabels[e], true
}

// VertexCount forwards to the wrapped graph.
func (m *Mutable[G, I, V, E]) VertexCount() int { return m.g.VertexCount() }

// EdgeCount forwards to the wrapped graph.
func (m *Mutable[G, I, V, E]) EdgeCount() int { return m.g.EdgeCount() }

// Successors forwards to the wrapped graph.
func (m *Mutable[G, I, V, E]) Successors(v core.VertexID) []core.VertexID {
	return m.g.Successors(v)
}

// OutEdges forwards to the wrapped graph.
func (m *Mutable[G, I, V, E]) OutEdges(v core.VertexID) []core.EdgeID {
	return m.g.OutEdges(v)
}

// HasEdge forwards to the wrapped graph.
func (m *Mutable[G, I, V, E]) HasEdge(from, to core.VertexID) bool {
	return m.g.HasEdge(from, to)
}

// Predecessors forwards to the wrapped graph when it provides the
// core.Bidirectional extension; ok=false when it does not.
func (m *Mutable[G, I, V, E]) Predecessors(v core.VertexID) ([]core.VertexID, bool) {
	if b, bidi := any(m.g).(core.Bidirectional); bidi {
		return b.Predecessors(v), true
	}

	return nil, false
}

// InEdges forwards to the wrapped graph when it provides the
// core.Bidirectional extension; ok=false when it does not.
func (m *Mutable[G, I, V, E]) InEdges(v core.VertexID) ([]core.EdgeID, bool) {
	if b, bidi := any(m.g).(core.Bidirectional); bidi {
		return b.InEdges(v), true
	}

	return nil, false
}

// Unwrap exposes the wrapped backend for algorithms that accept the
// structural interfaces directly. Mutating it behind the adapter's back
// breaks the store invariants; treat it as read-only.
func (m *Mutable[G, I, V, E]) Unwrap() G { return m.g }

// Freeze freezes the wrapped graph and copies exactly VertexCount and
// EdgeCount entries from the live stores into new fixed-size stores. The
// result is fully independent of the receiver, which stays valid and
// mutable; no over-allocated slot leaks through. O(V+E).
func (m *Mutable[G, I, V, E]) Freeze() *Immutable[I, G, V, E] {
	frozen := m.g.Freeze()

	return &Immutable[I, G, V, E]{
		g:       frozen,
		vlabels: clipped(m.vlabels, m.g.VertexCount()),
		elabels: clipped(m.elabels, m.g.EdgeCount()),
	}
}
