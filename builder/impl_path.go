// SPDX-License-Identifier: MIT
// Package: graphview/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Edges carry cfg's generated weight when WithWeightAttr is set.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
//   - Space: O(n) for the ID slice.

package builder

import (
	"github.com/katalvlaran/graphview/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		ids := addNodesWithIDFn(g, n, cfg.idFn)
		for i := 1; i < n; i++ {
			addEdge(g, cfg, ids[i-1], ids[i])
		}

		return nil
	}
}
