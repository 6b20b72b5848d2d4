// SPDX-License-Identifier: MIT
// Package: graphview/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub node with fixed ID "Center" first, then leaves idFn(1..n-1).
//   - Emits spokes in stable order Center → leaf[i]. For directed graphs,
//     also emits leaf[i] → Center.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges (undirected) or O(2n-2) (directed).

package builder

import (
	"github.com/katalvlaran/graphview/core"
)

// Star returns a Constructor that builds a star topology with n nodes:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		g.AddNode(CenterNodeID)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			g.AddNode(leaf)
			addEdge(g, cfg, CenterNodeID, leaf)
			if g.Directed() {
				addEdge(g, cfg, leaf, CenterNodeID)
			}
		}

		return nil
	}
}
