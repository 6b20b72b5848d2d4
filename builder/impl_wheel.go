// SPDX-License-Identifier: MIT
// Package: graphview/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • Wₙ = Cₙ₋₁ + "Center", i.e. a rim of size (n-1) plus a hub node.
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim nodes are idFn(0..n-2); rim edges come first, then spokes
//     Center → rim in index order, mirrored when g.Directed().

package builder

import (
	"github.com/katalvlaran/graphview/core"
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		rim := addNodesWithIDFn(g, n-1, cfg.idFn)
		addRing(g, cfg, rim)

		g.AddNode(CenterNodeID)
		for _, r := range rim {
			addEdge(g, cfg, CenterNodeID, r)
			if g.Directed() {
				addEdge(g, cfg, r, CenterNodeID)
			}
		}

		return nil
	}
}
