// Package label sentinel errors and tuning constants.
package label

import "errors"

// DefaultCapacity is the initial label-store length used by New when the
// caller gives no sizing hints.
const DefaultCapacity = 128

// Sentinel errors for labeling-adapter construction.
var (
	// ErrNegativeCapacity indicates a capacity hint below zero.
	ErrNegativeCapacity = errors.New("label: capacity hint must be non-negative")

	// ErrVertexLabelCount indicates a vertex-label vector whose length does
	// not equal the wrapped snapshot's vertex count.
	ErrVertexLabelCount = errors.New("label: vertex label vector length must equal vertex count")

	// ErrEdgeLabelCount indicates an edge-label vector whose length does
	// not equal the wrapped snapshot's edge count.
	ErrEdgeLabelCount = errors.New("label: edge label vector length must equal edge count")
)
