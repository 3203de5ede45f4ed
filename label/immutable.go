// File: immutable.go
// Role: Immutable labeling adapter: fixed-size lookup, structural
//       forwarding, Thaw.
// Concurrency:
//   - No mutation after construction; safe for unsynchronized concurrent reads.

package label

import (
	"iter"

	"github.com/katalvlaran/lvlgraph/core"
)

// Immutable decorates a frozen graph backend I with two exactly-sized,
// read-only label stores. Construct via (*Mutable).Freeze or
// NewImmutable.
type Immutable[I core.ImmutableGraph[G], G core.MutableGraph[I], V, E any] struct {
	g       I
	vlabels []V // len == g.VertexCount(), always
	elabels []E // len == g.EdgeCount(), always
}

// NewImmutable wraps an existing snapshot together with exactly-sized
// label vectors. Both vectors are defensively copied; the caller's
// slices stay independent. Mis-sized vectors are rejected with
// ErrVertexLabelCount / ErrEdgeLabelCount.
func NewImmutable[I core.ImmutableGraph[G], G core.MutableGraph[I], V, E any](
	g I, vlabels []V, elabels []E,
) (*Immutable[I, G, V, E], error) {
	if len(vlabels) != g.VertexCount() {
		return nil, ErrVertexLabelCount
	}
	if len(elabels) != g.EdgeCount() {
		return nil, ErrEdgeLabelCount
	}

	return &Immutable[I, G, V, E]{
		g:       g,
		vlabels: clipped(vlabels, len(vlabels)),
		elabels: clipped(elabels, len(elabels)),
	}, nil
}

// VertexLabel returns the label recorded for v; absent — (zero, false) —
// outside [0, VertexCount). O(1).
func (im *Immutable[I, G, V, E]) VertexLabel(v core.VertexID) (V, bool) {
	if v < 0 || int(v) >= len(im.vlabels) {
		var zero V

		return zero, false
	}

	return im.vlabels[v], true
}

// EdgeLabel returns the label recorded for e; absent outside
// [0, EdgeCount). O(1).
func (im *Immutable[I, G, V, E]) EdgeLabel(e core.EdgeID) (E, bool) {
	if e < 0 || int(e) >= len(im.elabels) {
		var zero E

		return zero, false
	}

	return im.elabels[e], true
}

// VertexCount forwards to the wrapped snapshot.
func (im *Immutable[I, G, V, E]) VertexCount() int { return im.g.VertexCount() }

// EdgeCount forwards to the wrapped snapshot.
func (im *Immutable[I, G, V, E]) EdgeCount() int { return im.g.EdgeCount() }

// Successors forwards to the wrapped snapshot.
func (im *Immutable[I, G, V, E]) Successors(v core.VertexID) []core.VertexID {
	return im.g.Successors(v)
}

// OutEdges forwards to the wrapped snapshot.
func (im *Immutable[I, G, V, E]) OutEdges(v core.VertexID) []core.EdgeID {
	return im.g.OutEdges(v)
}

// HasEdge forwards to the wrapped snapshot.
func (im *Immutable[I, G, V, E]) HasEdge(from, to core.VertexID) bool {
	return im.g.HasEdge(from, to)
}

// Vertices enumerates all vertex identifiers, ascending, lazily.
func (im *Immutable[I, G, V, E]) Vertices() iter.Seq[core.VertexID] {
	return im.g.Vertices()
}

// Edges enumerates all edge identifiers, ascending, lazily.
func (im *Immutable[I, G, V, E]) Edges() iter.Seq[core.EdgeID] {
	return im.g.Edges()
}

// MaxVertexID forwards to the wrapped snapshot.
func (im *Immutable[I, G, V, E]) MaxVertexID() (core.VertexID, bool) {
	return im.g.MaxVertexID()
}

// Empty forwards to the wrapped snapshot.
func (im *Immutable[I, G, V, E]) Empty() bool { return im.g.Empty() }

// Predecessors forwards to the wrapped snapshot when it provides the
// core.Bidirectional extension; ok=false when it does not.
func (im *Immutable[I, G, V, E]) Predecessors(v core.VertexID) ([]core.VertexID, bool) {
	if b, bidi := any(im.g).(core.Bidirectional); bidi {
		return b.Predecessors(v), true
	}

	return nil, false
}

// InEdges forwards to the wrapped snapshot when it provides the
// core.Bidirectional extension; ok=false when it does not.
func (im *Immutable[I, G, V, E]) InEdges(v core.VertexID) ([]core.EdgeID, bool) {
	if b, bidi := any(im.g).(core.Bidirectional); bidi {
		return b.InEdges(v), true
	}

	return nil, false
}

// Unwrap exposes the wrapped snapshot for algorithms that accept the
// structural interfaces directly. The snapshot is read-only, so sharing
// it is harmless.
func (im *Immutable[I, G, V, E]) Unwrap() I { return im.g }

// Thaw thaws the wrapped snapshot into a fresh mutable structural copy
// and copies both label vectors into fresh growable stores sized exactly
// to the copied content. The new adapter and the receiver are fully
// independent: mutation of either is never observable through the other.
// O(V+E).
func (im *Immutable[I, G, V, E]) Thaw() *Mutable[G, I, V, E] {
	return &Mutable[G, I, V, E]{
		g:       im.g.Thaw(),
		vlabels: clipped(im.vlabels, len(im.vlabels)),
		elabels: clipped(im.elabels, len(im.elabels)),
	}
}
