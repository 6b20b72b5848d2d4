// SPDX-License-Identifier: MIT
// Package: graphview/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated node.
//   • Emits i→j for i<j in lexicographic index order and mirrors to j→i
//     only if g.Directed() is true.
//
// Complexity:
//   • Time: O(n²) edges.

package builder

import (
	"github.com/katalvlaran/graphview/core"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		addCompleteEdges(g, cfg, addNodesWithIDFn(g, n, cfg.idFn))

		return nil
	}
}
