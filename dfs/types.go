// Package dfs types, options, and sentinel errors for depth-first
// traversal over the capability interface.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvlgraph/core"
)

var (
	// ErrGraphNil is returned when a nil core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrRootOutOfRange indicates the root identifier is not allocated in
	// the graph (negative, or at/beyond the vertex count).
	ErrRootOutOfRange = errors.New("dfs: root vertex out of range")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, root, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity stays O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs on vertex discovery (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v core.VertexID) error

	// OnExit, if non-nil, runs after a vertex's descendants are fully
	// explored (post-order), before the vertex is appended to PostOrder.
	// Returning an error aborts traversal.
	OnExit func(v core.VertexID) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// Depth 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted for each successor before
	// recursing. Return false to skip it.
	FilterNeighbor func(v core.VertexID) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex in
	// ascending identifier order, covering disconnected components.
	FullTraversal bool

	// SkippedNeighbors counts successors skipped by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns Options with background context, no hooks, no
// depth limit, no filtering, single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// Result collects the outcome of one traversal.
type Result struct {
	// Order lists vertices in discovery (pre-) order.
	Order []core.VertexID

	// PostOrder lists vertices in finish (post-) order; its reverse is a
	// reverse postorder suitable for dataflow-style iteration.
	PostOrder []core.VertexID

	// Parent maps each discovered non-root vertex to the vertex it was
	// discovered from. Roots have no entry.
	Parent map[core.VertexID]core.VertexID

	// Depth[v] is the discovery depth of v, or -1 when v was not visited.
	Depth []int

	// Visited[v] reports whether v was discovered.
	Visited []bool

	// SkippedNeighbors counts successors skipped by FilterNeighbor.
	SkippedNeighbors int
}

// WithContext sets the context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(v core.VertexID) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(v core.VertexID) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the root.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor installs a successor filter; return false to skip.
func WithFilterNeighbor(fn func(v core.VertexID) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers all components, restarting from every
// unvisited vertex in ascending identifier order.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}
