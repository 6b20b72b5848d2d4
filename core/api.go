// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing mode flags and a stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// Directed reports whether edges are one-way.
//
// Implementation:
//   - Stage 1: Return the immutable construction-time flag.
//
// Notes:
//   - Undirected graphs alias predecessor and successor adjacency, so
//     Adjacency(n, DirIn) and Adjacency(n, DirOut) agree.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[N]) Directed() bool {
	return g.directed
}

// Multigraph reports whether parallel edges are permitted.
//
// Notes:
//   - Simple graphs still expose key 0 on every edge so that readers can
//     treat both modes uniformly.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[N]) Multigraph() bool {
	return g.multigraph
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed   bool
	Multigraph bool
	NodeCount  int
	EdgeCount  int
	SelfLoops  int
}

// Stats produces a snapshot of flags and counts.
//
// Implementation:
//   - Stage 1: Copy flags and node count.
//   - Stage 2: Scan successor rows once for edge and self-loop counts.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph[N]) Stats() *GraphStats {
	stats := GraphStats{
		Directed:   g.directed,
		Multigraph: g.multigraph,
		NodeCount:  g.nodes.len(),
		EdgeCount:  g.EdgeCount(),
	}
	for n := range g.nodes.all() {
		if b, ok := g.succ[n].get(n); ok {
			stats.SelfLoops += b.len()
		}
	}

	return &stats
}
