// File: edgelist.go
// Role: Edge-list construction of labeled graphs over any backend pair.
// Determinism:
//   - Identifier assignment is a pure function of the triple sequence.

package edgelist

import (
	"errors"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/label"
)

// ErrNilFactory is returned when Build is given a nil graph factory.
var ErrNilFactory = errors.New("edgelist: graph factory is nil")

// Triple is one labeled edge between endpoint values of type K.
type Triple[K comparable, E any] struct {
	From  K
	To    K
	Label E
}

// Build constructs a labeled mutable graph from triples over the backend
// pair (G, I).
//
// Steps:
//  1. Scan triples in order; intern each distinct endpoint value on
//     first sight (From before To), inserting a vertex labeled with the
//     value itself.
//  2. Insert each triple's edge with its label. Declined insertions are
//     skipped and counted in declined; backend failures abort.
//
// Returns the adapter, the endpoint→identifier assignment, and the
// declined count.
func Build[K comparable, E any, G core.MutableGraph[I], I core.ImmutableGraph[G]](
	newGraph func() (G, error),
	triples []Triple[K, E],
) (adapter *label.Mutable[G, I, K, E], index map[K]core.VertexID, declined int, err error) {
	if newGraph == nil {
		return nil, nil, 0, ErrNilFactory
	}
	adapter, err = label.New[G, I, K, E](newGraph)
	if err != nil {
		return nil, nil, 0, err
	}

	index = make(map[K]core.VertexID, len(triples))
	intern := func(key K) (core.VertexID, error) {
		if v, seen := index[key]; seen {
			return v, nil
		}
		v, verr := adapter.AddVertex(key)
		if verr != nil {
			return 0, verr
		}
		index[key] = v

		return v, nil
	}

	for _, t := range triples {
		from, ierr := intern(t.From)
		if ierr != nil {
			return nil, nil, declined, ierr
		}
		to, ierr := intern(t.To)
		if ierr != nil {
			return nil, nil, declined, ierr
		}
		_, ok, eerr := adapter.AddEdge(from, to, t.Label)
		if eerr != nil {
			return nil, nil, declined, eerr
		}
		if !ok {
			declined++
		}
	}

	return adapter, index, declined, nil
}
