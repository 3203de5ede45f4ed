package label_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/digraph"
	"github.com/katalvlaran/lvlgraph/label"
	"github.com/katalvlaran/lvlgraph/sparse"
)

// builder is the adapter shape used throughout: string vertex labels,
// int64 edge labels, over the adjacency-list backend.
type builder = label.Mutable[*digraph.Mutable, *digraph.Immutable, string, int64]

// newBuilder wraps a fresh digraph with default-capacity stores.
func newBuilder(t *testing.T) *builder {
	t.Helper()
	m, err := label.New[*digraph.Mutable, *digraph.Immutable, string, int64](
		func() (*digraph.Mutable, error) { return digraph.New(), nil },
	)
	require.NoError(t, err)

	return m
}

// newSizedBuilder wraps a fresh digraph with hint-sized stores.
func newSizedBuilder(t *testing.T, vhint, ehint int) *builder {
	t.Helper()
	m, err := label.NewWithCapacity[*digraph.Mutable, *digraph.Immutable, string, int64](
		func(vh, eh int) (*digraph.Mutable, error) { return digraph.NewWithCapacity(vh, eh), nil },
		vhint, ehint,
	)
	require.NoError(t, err)

	return m
}

func TestNewWithCapacity_NegativeHints(t *testing.T) {
	_, err := label.NewWithCapacity[*digraph.Mutable, *digraph.Immutable, string, int64](
		func(vh, eh int) (*digraph.Mutable, error) { return digraph.NewWithCapacity(vh, eh), nil },
		-1, 0,
	)
	assert.ErrorIs(t, err, label.ErrNegativeCapacity)

	_, err = label.NewWithCapacity[*digraph.Mutable, *digraph.Immutable, string, int64](
		func(vh, eh int) (*digraph.Mutable, error) { return digraph.NewWithCapacity(vh, eh), nil },
		0, -7,
	)
	assert.ErrorIs(t, err, label.ErrNegativeCapacity)
}

func TestAddVertex_LabelRoundTrip(t *testing.T) {
	m := newBuilder(t)

	a, err := m.AddVertex("a")
	require.NoError(t, err)
	b, err := m.AddVertex("b")
	require.NoError(t, err)

	assert.Equal(t, core.VertexID(0), a)
	assert.Equal(t, core.VertexID(1), b)

	got, ok := m.VertexLabel(a)
	assert.True(t, ok)
	assert.Equal(t, "a", got)
	got, ok = m.VertexLabel(b)
	assert.True(t, ok)
	assert.Equal(t, "b", got)
}

func TestAddEdge_LabelRoundTrip(t *testing.T) {
	m := newBuilder(t)
	a, _ := m.AddVertex("a")
	b, _ := m.AddVertex("b")

	e, ok, err := m.AddEdge(a, b, 42)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, core.EdgeID(0), e)

	got, ok := m.EdgeLabel(e)
	assert.True(t, ok)
	assert.Equal(t, int64(42), got)
}

func TestLookup_BoundsConsistency(t *testing.T) {
	m := newBuilder(t)
	_, _ = m.AddVertex("a")
	_, _ = m.AddVertex("b")

	// Identifiers at or beyond the current count are absent, even though
	// the default-capacity store physically has those slots.
	for _, v := range []core.VertexID{2, 3, 64, 127, 128, 1 << 20, -1} {
		_, ok := m.VertexLabel(v)
		assert.False(t, ok, "vertex %d must be absent", v)
	}

	_, ok := m.EdgeLabel(0)
	assert.False(t, ok, "no edges inserted yet")
	_, ok = m.EdgeLabel(-1)
	assert.False(t, ok)
}

func TestAddEdge_DeclinedOutOfRange(t *testing.T) {
	m := newBuilder(t)
	a, _ := m.AddVertex("a")

	// Endpoint beyond the vertex count: declined, no error, no label.
	_, ok, err := m.AddEdge(a, 99, 7)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, m.EdgeCount())
	_, present := m.EdgeLabel(0)
	assert.False(t, present, "declined edge must not consume a label slot")
}

func TestAddEdge_DeclinedDuplicate_StoreUntouched(t *testing.T) {
	// The sparse backend declines duplicate (from,to) pairs; the adapter
	// must skip the label write and consume no edge identifier.
	m, err := label.New[*sparse.Mutable, *sparse.Immutable, string, int64](
		func() (*sparse.Mutable, error) { return sparse.New(), nil },
	)
	require.NoError(t, err)

	a, _ := m.AddVertex("a")
	b, _ := m.AddVertex("b")

	first, ok, err := m.AddEdge(a, b, 10)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = m.AddEdge(a, b, 999)
	require.NoError(t, err)
	assert.False(t, ok, "duplicate pair must be declined")

	assert.Equal(t, 1, m.EdgeCount())
	got, present := m.EdgeLabel(first)
	assert.True(t, present)
	assert.Equal(t, int64(10), got, "declined insertion must not overwrite the existing label")
	_, present = m.EdgeLabel(first + 1)
	assert.False(t, present, "no identifier consumed by the declined insertion")
}

func TestGrowth_Transparency(t *testing.T) {
	const n = 200 // exceeds the default capacity of 128

	run := func(t *testing.T, m *builder) {
		ids := make([]core.VertexID, n)
		for i := 0; i < n; i++ {
			v, err := m.AddVertex("v" + strconv.Itoa(i))
			require.NoError(t, err)
			ids[i] = v
		}
		// Chain edges to force edge-store growth too.
		for i := 0; i+1 < n; i++ {
			_, ok, err := m.AddEdge(ids[i], ids[i+1], int64(i))
			require.NoError(t, err)
			require.True(t, ok)
		}

		assert.Equal(t, n, m.VertexCount())
		assert.Equal(t, n-1, m.EdgeCount())
		for i := 0; i < n; i++ {
			got, ok := m.VertexLabel(ids[i])
			require.True(t, ok, "vertex %d", i)
			assert.Equal(t, "v"+strconv.Itoa(i), got)
		}
		for e := 0; e+1 < n; e++ {
			got, ok := m.EdgeLabel(core.EdgeID(e))
			require.True(t, ok, "edge %d", e)
			assert.Equal(t, int64(e), got)
		}
		assert.Equal(t, []core.VertexID{1}, m.Successors(0))
	}

	t.Run("DefaultCapacity", func(t *testing.T) { run(t, newBuilder(t)) })
	t.Run("ZeroHints", func(t *testing.T) { run(t, newSizedBuilder(t, 0, 0)) })
	t.Run("ExactHints", func(t *testing.T) { run(t, newSizedBuilder(t, n, n)) })
}

func TestStructuralForwarding(t *testing.T) {
	m := newBuilder(t)
	a, _ := m.AddVertex("a")
	b, _ := m.AddVertex("b")
	c, _ := m.AddVertex("c")
	ab, _, _ := m.AddEdge(a, b, 1)
	ac, _, _ := m.AddEdge(a, c, 2)

	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 2, m.EdgeCount())
	assert.Equal(t, []core.VertexID{b, c}, m.Successors(a))
	assert.Equal(t, []core.EdgeID{ab, ac}, m.OutEdges(a))
	assert.True(t, m.HasEdge(a, b))
	assert.False(t, m.HasEdge(b, a))

	// The digraph backend has no reverse index: forwarding reports
	// the missing capability, not an empty answer.
	_, ok := m.Predecessors(b)
	assert.False(t, ok)
	_, ok = m.InEdges(b)
	assert.False(t, ok)
}

func TestNewImmutable_SizeValidation(t *testing.T) {
	m := newBuilder(t)
	a, _ := m.AddVertex("a")
	b, _ := m.AddVertex("b")
	_, _, _ = m.AddEdge(a, b, 5)
	g := m.Unwrap().Freeze()

	_, err := label.NewImmutable[*digraph.Immutable, *digraph.Mutable, string, int64](
		g, []string{"a"}, []int64{5},
	)
	assert.ErrorIs(t, err, label.ErrVertexLabelCount)

	_, err = label.NewImmutable[*digraph.Immutable, *digraph.Mutable, string, int64](
		g, []string{"a", "b"}, nil,
	)
	assert.ErrorIs(t, err, label.ErrEdgeLabelCount)

	im, err := label.NewImmutable[*digraph.Immutable, *digraph.Mutable, string, int64](
		g, []string{"a", "b"}, []int64{5},
	)
	require.NoError(t, err)
	got, ok := im.VertexLabel(b)
	assert.True(t, ok)
	assert.Equal(t, "b", got)
}

func TestNewImmutable_DefensiveCopy(t *testing.T) {
	m := newBuilder(t)
	a, _ := m.AddVertex("a")
	b, _ := m.AddVertex("b")
	_, _, _ = m.AddEdge(a, b, 5)
	g := m.Unwrap().Freeze()

	vlabels := []string{"a", "b"}
	elabels := []int64{5}
	im, err := label.NewImmutable[*digraph.Immutable, *digraph.Mutable, string, int64](g, vlabels, elabels)
	require.NoError(t, err)

	vlabels[0] = "mutated"
	elabels[0] = -1

	got, _ := im.VertexLabel(a)
	assert.Equal(t, "a", got, "caller's slice must not alias the store")
	lbl, _ := im.EdgeLabel(0)
	assert.Equal(t, int64(5), lbl)
}
