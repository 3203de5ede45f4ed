// Package core identifier types.
//
// This file declares VertexID and EdgeID, the dense integer identifiers
// every backend allocates and every store indexes by.
package core

// VertexID identifies a vertex within one graph instance.
//
// Identifiers are dense: a graph with n vertices has exactly the
// identifiers 0..n-1. They are allocated by the backend in strictly
// increasing order and never reused within one mutable instance's
// lifetime, so they are directly usable as storage indices.
type VertexID int

// EdgeID identifies an edge within one graph instance.
//
// Same density and monotonicity guarantees as VertexID, over the edge
// identifier space.
type EdgeID int

// Valid reports whether v is a plausible identifier (non-negative).
// It does not consult any graph; range checks against a live instance
// belong to the lookup operations themselves.
func (v VertexID) Valid() bool { return v >= 0 }

// Valid reports whether e is a plausible identifier (non-negative).
func (e EdgeID) Valid() bool { return e >= 0 }
