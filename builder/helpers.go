// SPDX-License-Identifier: MIT
// Package: graphview/builder
//
// helpers.go - shared validation and emission helpers for constructors.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap sentinels with builderErrorf for uniform reporting.
//   - Every edge goes through addEdge so weight stamping is uniform.

package builder

import (
	"math"
	"strconv"

	"github.com/katalvlaran/graphview/core"
)

// validateMin returns ErrTooFewVertices when n < min.
func validateMin(method string, n, min int) error {
	if n < min {
		return builderErrorf(ErrTooFewVertices, method, "n=%d < min=%d", n, min)
	}

	return nil
}

// validateProbability returns ErrInvalidProbability when p lies outside [0,1].
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return builderErrorf(ErrInvalidProbability, method, "p=%g not in [%g,%g]", p, MinProbability, MaxProbability)
	}

	return nil
}

// addNodesWithIDFn adds nodes idFn(0..n-1) and returns their IDs in order.
// Re-adding an existing node is a no-op in core.Graph.
//
// Complexity: O(n) time and space.
func addNodesWithIDFn(g *core.Graph[string], n int, idFn IDFn) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		g.AddNode(ids[i])
	}

	return ids
}

// addEdge emits u-v stamped with cfg's generated weight, if any, and returns
// the key core assigned.
func addEdge(g *core.Graph[string], cfg builderConfig, u, v string) int {
	return g.AddEdge(u, v, cfg.edgeAttrs()...)
}

// addCompleteEdges connects every unordered pair in ids.
// For directed graphs, mirrors each edge in the opposite direction.
//
// Complexity: O(m²) time where m = len(ids).
func addCompleteEdges(g *core.Graph[string], cfg builderConfig, ids []string) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			addEdge(g, cfg, ids[i], ids[j])
			if g.Directed() {
				addEdge(g, cfg, ids[j], ids[i])
			}
		}
	}
}

// makeIDs generates n node IDs by concatenating prefix and index.
// Example: makeIDs("L", 3) → {"L0","L1","L2"}.
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}
