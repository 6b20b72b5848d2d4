// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for graphview/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep sequence draining in one place so tests read as contracts.

package core_test

import (
	"iter"

	"github.com/katalvlaran/graphview/core"
)

// Common attribute keys and values used across core tests.
const (
	AttrColor  = "color"
	AttrWeight = "weight"

	ColorRed  = "red"
	ColorBlue = "blue"
)

// newPath returns a graph holding the path 0-1-...-(n-1) built with opts.
func newPath(n int, opts ...core.GraphOption) *core.Graph[int] {
	g := core.NewGraph[int](opts...)
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i)
	}

	return g
}

// collect drains a sequence into a slice.
func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}

	return out
}

// neighborsOf lists Adjacency neighbors in yield order (parallel edges repeated).
func neighborsOf(g *core.Graph[int], n int, dir core.Direction) []int {
	var out []int
	for adj := range g.Adjacency(n, dir) {
		out = append(out, adj.Neighbor)
	}

	return out
}

// keysOf lists the parallel-edge keys between u and v in yield order.
func keysOf(g *core.Graph[int], u, v int) []int {
	var out []int
	for k := range g.EdgeBundle(u, v) {
		out = append(out, k)
	}

	return out
}
