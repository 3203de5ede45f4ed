package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/dfs"
	"github.com/katalvlaran/lvlgraph/digraph"
)

// buildChain creates a directed chain 0→1→2→…→n-1.
func buildChain(t *testing.T, n int) *digraph.Mutable {
	t.Helper()
	g := digraph.New()
	for i := 0; i < n; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	for i := 0; i+1 < n; i++ {
		_, ok, err := g.AddEdge(core.VertexID(i), core.VertexID(i+1))
		require.NoError(t, err)
		require.True(t, ok)
	}

	return g
}

// buildDiamond creates 0→1, 0→2, 1→3, 2→3.
func buildDiamond(t *testing.T) *digraph.Mutable {
	t.Helper()
	g := digraph.New()
	for i := 0; i < 4; i++ {
		_, _ = g.AddVertex()
	}
	for _, arc := range [][2]core.VertexID{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		_, ok, err := g.AddEdge(arc[0], arc[1])
		require.NoError(t, err)
		require.True(t, ok)
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_RootOutOfRange(t *testing.T) {
	g := digraph.New()
	_, _ = g.AddVertex()

	for _, root := range []core.VertexID{-1, 1, 7} {
		res, err := dfs.DFS(g, root)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, dfs.ErrRootOutOfRange, "root %d", root)
	}
}

func TestDFS_SingleVertex(t *testing.T) {
	g := digraph.New()
	v, _ := g.AddVertex()

	res, err := dfs.DFS(g, v)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{v}, res.Order)
	assert.Equal(t, []core.VertexID{v}, res.PostOrder)
	assert.True(t, res.Visited[v])
	assert.Equal(t, 0, res.Depth[v])
	_, hasParent := res.Parent[v]
	assert.False(t, hasParent, "root has no parent")
}

func TestDFS_SelfLoop(t *testing.T) {
	g := digraph.New()
	a, _ := g.AddVertex()
	_, ok, _ := g.AddEdge(a, a)
	require.True(t, ok)

	res, err := dfs.DFS(g, a)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{a}, res.Order)
}

func TestDFS_ChainDepthAndParent(t *testing.T) {
	const n = 8
	g := buildChain(t, n)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	for i := 0; i < n; i++ {
		v := core.VertexID(i)
		assert.Equal(t, v, res.Order[i])
		assert.Equal(t, i, res.Depth[v])
		if i > 0 {
			assert.Equal(t, core.VertexID(i-1), res.Parent[v])
		}
	}
	// Chain postorder is the reverse of the discovery order.
	assert.Equal(t, core.VertexID(n-1), res.PostOrder[0])
	assert.Equal(t, core.VertexID(0), res.PostOrder[n-1])
}

func TestDFS_DiamondVisitsShareOnce(t *testing.T) {
	g := buildDiamond(t)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []core.VertexID{3, 1, 2, 0}, res.PostOrder)
	assert.Equal(t, core.VertexID(1), res.Parent[3], "3 discovered via 1, not revisited via 2")
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(t, 10)

	res, err := dfs.DFS(g, 0, dfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Len(t, res.Order, 4) // depths 0..3
	assert.False(t, res.Visited[4])

	res, err = dfs.DFS(g, 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{0}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := buildDiamond(t)

	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(v core.VertexID) bool {
		return v != 1
	}))
	require.NoError(t, err)
	assert.False(t, res.Visited[1])
	assert.True(t, res.Visited[3], "3 still reachable via 2")
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	// Two disconnected chains: 0→1 and 2→3.
	g := digraph.New()
	for i := 0; i < 4; i++ {
		_, _ = g.AddVertex()
	}
	_, _, _ = g.AddEdge(0, 1)
	_, _, _ = g.AddEdge(2, 3)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.False(t, res.Visited[2])

	res, err = dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{0, 1, 2, 3}, res.Order)
	assert.Equal(t, 0, res.Depth[2], "2 is a restart root")
}

func TestDFS_HookAbort(t *testing.T) {
	g := buildChain(t, 5)
	boom := errors.New("boom")

	res, err := dfs.DFS(g, 0, dfs.WithOnVisit(func(v core.VertexID) error {
		if v == 2 {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, res)
	assert.Equal(t, []core.VertexID{0, 1, 2}, res.Order, "partial result up to the abort")
}

func TestDFS_OnExitOrder(t *testing.T) {
	g := buildDiamond(t)

	var exits []core.VertexID
	res, err := dfs.DFS(g, 0, dfs.WithOnExit(func(v core.VertexID) error {
		exits = append(exits, v)

		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, res.PostOrder, exits)
}

func TestDFS_ContextCancellation(t *testing.T) {
	g := buildChain(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_DepthOfUnvisited(t *testing.T) {
	g := buildChain(t, 3)
	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, res.Depth[0], "unreached vertices keep depth -1")
	assert.Equal(t, 0, res.Depth[1])
}
