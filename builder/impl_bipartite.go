// SPDX-License-Identifier: MIT
// Package: graphview/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs are "{leftPrefix}{i}", right IDs "{rightPrefix}{j}".
//   • Emits every cross-pair L_i → R_j; mirrors R_j → L_i only if g.Directed().
//
// Complexity:
//   • Time: O(n1 + n2) nodes + O(n1·n2) edges.

package builder

import (
	"github.com/katalvlaran/graphview/core"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return builderErrorf(ErrTooFewVertices, MethodCompleteBipartite,
				"n1=%d, n2=%d (each must be >= %d)", n1, n2, MinPartition)
		}

		left := makeIDs(cfg.leftPrefix, n1)
		right := makeIDs(cfg.rightPrefix, n2)
		for _, id := range left {
			g.AddNode(id)
		}
		for _, id := range right {
			g.AddNode(id)
		}

		for _, u := range left {
			for _, v := range right {
				addEdge(g, cfg, u, v)
				if g.Directed() {
					addEdge(g, cfg, v, u)
				}
			}
		}

		return nil
	}
}
