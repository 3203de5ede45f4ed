// Package lvlgraph is your in-memory playground for labeled graphs —
// a small, fully polymorphic labeling layer over pluggable graph backends,
// with a strict mutable↔immutable freeze/thaw duality.
//
// 🚀 What is lvlgraph?
//
//	A modern, generics-based library that brings together:
//		• Capability interfaces: one small contract any backend can satisfy
//		• Labeling adapters: per-vertex and per-edge labels over any backend
//		• Freeze/thaw: mutable builders ↔ immutable, share-safe snapshots
//		• Backends: adjacency-list digraph, bidirectional digraph, sparse map
//		• Traversals: DFS with hooks and cancellation
//		• Dominators: immediate-dominator trees over bidirectional graphs
//
// ✨ Why choose lvlgraph?
//
//   - Backend-agnostic – algorithms see interfaces, never concrete storage
//   - Value-based errors – absent labels and declined edges are data, not panics
//   - Pure Go – no cgo, a deliberately tiny dependency surface
//   - Predictable cost – amortized O(1) labeled insertion, O(V+E) freeze/thaw
//
// Under the hood, everything is organized under flat subpackages:
//
//	core/       — identifier types and the capability contracts
//	label/      — the mutable and immutable labeling adapters
//	digraph/    — adjacency-list digraph (mutable + frozen forms)
//	bidigraph/  — bidirectional digraph with reverse adjacency
//	sparse/     — map-backed digraph enforcing edge uniqueness
//	dfs/        — depth-first traversal over any core.Graph
//	dominators/ — immediate-dominator trees (Cooper–Harvey–Kennedy)
//	edgelist/   — build a labeled graph from (from, to, label) triples
//
// Quick ASCII example:
//
//	    a ──10──▶ b ──20──▶ c
//
//	three labeled vertices, two labeled edges; freeze it and the snapshot
//	keeps answering with "b" and 20 no matter what the builder does next.
//
// Dive into the per-package docs for full examples and complexity notes.
//
//	go get github.com/katalvlaran/lvlgraph
package lvlgraph
