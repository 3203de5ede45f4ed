package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/digraph"
)

// triangle builds a→b→c→a and returns the graph with its vertex ids.
func triangle(t *testing.T) (*digraph.Mutable, [3]core.VertexID) {
	t.Helper()
	g := digraph.New()
	var ids [3]core.VertexID
	for i := range ids {
		v, err := g.AddVertex()
		require.NoError(t, err)
		ids[i] = v
	}
	for i := range ids {
		_, ok, err := g.AddEdge(ids[i], ids[(i+1)%3])
		require.NoError(t, err)
		require.True(t, ok)
	}

	return g, ids
}

func TestAddVertex_DenseIdentifiers(t *testing.T) {
	g := digraph.New()
	for want := 0; want < 5; want++ {
		v, err := g.AddVertex()
		require.NoError(t, err)
		assert.Equal(t, core.VertexID(want), v)
	}
	assert.Equal(t, 5, g.VertexCount())
}

func TestAddEdge_OutOfRangeDeclined(t *testing.T) {
	g := digraph.New()
	a, _ := g.AddVertex()

	for _, bad := range [][2]core.VertexID{{a, 5}, {5, a}, {a, -1}, {-1, a}} {
		_, ok, err := g.AddEdge(bad[0], bad[1])
		require.NoError(t, err)
		assert.False(t, ok, "endpoints %v must decline", bad)
	}
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_ParallelAndLoops(t *testing.T) {
	g := digraph.New()
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()

	e0, ok, _ := g.AddEdge(a, b)
	require.True(t, ok)
	e1, ok, _ := g.AddEdge(a, b) // parallel edge accepted
	require.True(t, ok)
	e2, ok, _ := g.AddEdge(a, a) // self-loop accepted
	require.True(t, ok)

	assert.Equal(t, []core.EdgeID{0, 1, 2}, []core.EdgeID{e0, e1, e2})
	assert.Equal(t, []core.VertexID{b, b, a}, g.Successors(a))
	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(a, a))
}

func TestQueries_OutOfRange(t *testing.T) {
	g, _ := triangle(t)

	assert.Nil(t, g.Successors(-1))
	assert.Nil(t, g.Successors(3))
	assert.Nil(t, g.OutEdges(99))
	assert.False(t, g.HasEdge(-1, 0))
	_, _, ok := g.Endpoints(3)
	assert.False(t, ok)
	_, _, ok = g.Endpoints(-1)
	assert.False(t, ok)
}

func TestEndpoints(t *testing.T) {
	g, ids := triangle(t)
	from, to, ok := g.Endpoints(0)
	require.True(t, ok)
	assert.Equal(t, ids[0], from)
	assert.Equal(t, ids[1], to)
}

func TestFreeze_IndependentSnapshot(t *testing.T) {
	g, ids := triangle(t)
	im := g.Freeze()

	// Grow the source; the snapshot keeps its extent.
	d, _ := g.AddVertex()
	_, ok, _ := g.AddEdge(ids[0], d)
	require.True(t, ok)

	assert.Equal(t, 3, im.VertexCount())
	assert.Equal(t, 3, im.EdgeCount())
	assert.Equal(t, []core.VertexID{ids[1]}, im.Successors(ids[0]))
	assert.Nil(t, im.Successors(d))
}

func TestThaw_IndependentCopy(t *testing.T) {
	g, ids := triangle(t)
	im := g.Freeze()
	th := im.Thaw()

	d, err := th.AddVertex()
	require.NoError(t, err)
	_, ok, err := th.AddEdge(ids[2], d)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 4, th.VertexCount())
	assert.Equal(t, 3, im.VertexCount())
	assert.False(t, im.HasEdge(ids[2], d))
	// Adjacency rows must not alias: the thawed append is invisible here.
	assert.Equal(t, []core.VertexID{ids[0]}, im.Successors(ids[2]))
}

func TestImmutable_EnumerationAndExtent(t *testing.T) {
	g, _ := triangle(t)
	im := g.Freeze()

	var vs []core.VertexID
	for v := range im.Vertices() {
		vs = append(vs, v)
	}
	assert.Equal(t, []core.VertexID{0, 1, 2}, vs)

	var es []core.EdgeID
	for e := range im.Edges() {
		es = append(es, e)
	}
	assert.Equal(t, []core.EdgeID{0, 1, 2}, es)

	max, ok := im.MaxVertexID()
	require.True(t, ok)
	assert.Equal(t, core.VertexID(2), max)
	assert.False(t, im.Empty())

	empty := digraph.New().Freeze()
	assert.True(t, empty.Empty())
	_, ok = empty.MaxVertexID()
	assert.False(t, ok)
}

func TestEnumeration_EarlyStop(t *testing.T) {
	g, _ := triangle(t)
	im := g.Freeze()

	// Breaking out of the sequence must not panic or misbehave.
	var first core.VertexID = -1
	for v := range im.Vertices() {
		first = v

		break
	}
	assert.Equal(t, core.VertexID(0), first)
}

func TestNewWithCapacity_HintsInvisible(t *testing.T) {
	g := digraph.NewWithCapacity(64, 256)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())

	clamped := digraph.NewWithCapacity(-3, -9)
	assert.Equal(t, 0, clamped.VertexCount())
}
