// Package core provides the in-memory Graph storage that graphview's report
// views read through.
//
// The Graph G = (V,E) supports:
//
//   - Undirected vs. directed edges (WithDirected)
//   - Simple graphs vs. multigraphs with integer parallel-edge keys (WithMultiEdges)
//   - Self-loops, always permitted
//   - Arbitrary comparable node identifiers via generics: Graph[int], Graph[string], ...
//   - Live attribute maps (Attrs) on every node and every edge
//   - Insertion-ordered nodes and adjacency:
//     succ[u] = ordered{ v -> ordered{ key -> Attrs } }
//
// Why use core.Graph?
//
//   - Deterministic iteration - Nodes(), Adjacency(), EdgeBundle() follow insertion order.
//   - Zero-copy reads - every accessor hands out live maps or lazy iter.Seq sequences,
//     which is exactly what a read-through view layer needs.
//   - One type for four variants - undirected/directed x simple/multi.
//
// Configuration Options (GraphOption):
//
//	– WithDirected()
//	    Edges are one-way. Successor and predecessor adjacency are kept separately.
//	    Undirected graphs alias both to a single symmetric adjacency.
//
//	– WithMultiEdges()
//	    AddEdge always inserts a new parallel edge keyed by the smallest unused
//	    non-negative integer for that pair. Simple graphs keep exactly one edge
//	    per pair (key 0) and AddEdge merges attributes into it.
//
//	– WithLogger(*golog.Logger)
//	    Receives debug events for removals. Silent by default.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n N, attrs ...Attrs)          // O(1)
//	HasNode(n N) bool                     // O(1)
//	NodeAttrs(n N) (Attrs, error)         // O(1), live map
//	RemoveNode(n N) error                 // O(deg)
//
//	// Edge lifecycle
//	AddEdge(u, v N, attrs ...Attrs) int              // returns key
//	AddEdgeKey(u, v N, key int, attrs ...Attrs) error // multigraph only
//	RemoveEdge(u, v N) error / RemoveEdgeKey(u, v N, key int) error
//	HasEdge(u, v N) bool / HasEdgeKey(u, v N, key int) bool
//
//	// Read-through surface consumed by package view
//	Nodes() iter.Seq[N]
//	Adjacency(n N, dir Direction) iter.Seq[Adjacent[N]]
//	EdgeBundle(u, v N) iter.Seq2[int, Attrs]
//
//	// Cloning
//	Clone() *Graph[N]      // equivalent graph with a fresh ID()
//	CloneEmpty() *Graph[N] // nodes + flags only
//
// Errors:
//
//	ErrNodeNotFound     – missing node
//	ErrEdgeNotFound     – missing edge or key
//	ErrKeysNotSupported – explicit key on a simple graph
//
// Graph is not safe for concurrent mutation; callers serialize access.
package core
