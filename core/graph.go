// File: graph.go
// Role: Capability contracts shared by backends, adapters, and algorithms.
// Determinism:
//   - Successors/OutEdges enumerate in insertion order of the underlying edges.
//   - Vertices/Edges enumerate identifiers in ascending order.
// Concurrency:
//   - Mutable forms are single-writer; immutable forms are safe for
//     unsynchronized concurrent reads.

package core

import "iter"

// Graph is the read-only structural surface common to every graph form,
// mutable or immutable, labeled or bare. Adapters forward these queries
// verbatim, so a labeled graph remains a drop-in Graph.
type Graph interface {
	// VertexCount reports the number of vertices currently allocated.
	VertexCount() int

	// EdgeCount reports the number of edges currently allocated.
	EdgeCount() int

	// Successors returns the targets of all out-edges of v, in edge
	// insertion order, with one entry per parallel edge. Out-of-range v
	// yields nil.
	Successors(v VertexID) []VertexID

	// OutEdges returns the identifiers of all out-edges of v, in
	// insertion order. Out-of-range v yields nil.
	OutEdges(v VertexID) []EdgeID

	// HasEdge reports whether at least one edge from 'from' to 'to'
	// exists. Out-of-range endpoints yield false.
	HasEdge(from, to VertexID) bool
}

// Bidirectional is the optional reverse-adjacency extension. Backends
// that also index incoming edges provide it; adapters forward it only
// when the wrapped backend does.
type Bidirectional interface {
	Graph

	// Predecessors returns the sources of all in-edges of v, in edge
	// insertion order. Out-of-range v yields nil.
	Predecessors(v VertexID) []VertexID

	// InEdges returns the identifiers of all in-edges of v, in
	// insertion order. Out-of-range v yields nil.
	InEdges(v VertexID) []EdgeID
}

// MutableGraph is the append-only construction capability. The type
// parameter I names the immutable counterpart produced by Freeze, so the
// freeze/thaw duality is visible in the types: a backend ships a pair
// (G, I) with G = MutableGraph[I] and I = ImmutableGraph[G].
type MutableGraph[I any] interface {
	Graph

	// AddVertex allocates the next vertex identifier. The identifier
	// equals the vertex count before the call. A non-nil error means the
	// backend could not complete the insertion at all.
	AddVertex() (VertexID, error)

	// AddEdge allocates the next edge identifier for an edge from→to.
	// ok=false with a nil error means the backend declined (out-of-range
	// endpoint, or a backend-specific uniqueness/capacity constraint);
	// nothing was allocated. A non-nil error is a backend failure.
	AddEdge(from, to VertexID) (id EdgeID, ok bool, err error)

	// Freeze produces an independent immutable snapshot of the current
	// topology. The receiver remains valid and mutable afterwards;
	// neither side observes later changes to the other. O(V+E).
	Freeze() I
}

// ImmutableGraph is the frozen snapshot capability. The type parameter M
// names the mutable counterpart produced by Thaw.
type ImmutableGraph[M any] interface {
	Graph

	// Vertices enumerates all vertex identifiers in ascending order as a
	// lazy, restartable, finite sequence.
	Vertices() iter.Seq[VertexID]

	// Edges enumerates all edge identifiers in ascending order as a
	// lazy, restartable, finite sequence.
	Edges() iter.Seq[EdgeID]

	// MaxVertexID reports the largest allocated vertex identifier.
	// ok=false when the graph is empty.
	MaxVertexID() (VertexID, bool)

	// Empty reports whether the graph has no vertices.
	Empty() bool

	// Thaw produces a fresh, independent mutable copy of the snapshot.
	// The receiver remains valid afterwards; mutations of the copy are
	// never observable through the snapshot, and vice versa. O(V+E).
	Thaw() M
}
