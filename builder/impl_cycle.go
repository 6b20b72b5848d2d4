// SPDX-License-Identifier: MIT
// Package: graphview/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits i → (i+1) mod n for i=0..n-1; the closing edge comes last.

package builder

import (
	"github.com/katalvlaran/graphview/core"
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		addRing(g, cfg, addNodesWithIDFn(g, n, cfg.idFn))

		return nil
	}
}

// addRing closes ids into a cycle in index order.
func addRing(g *core.Graph[string], cfg builderConfig, ids []string) {
	for i := range ids {
		addEdge(g, cfg, ids[i], ids[(i+1)%len(ids)])
	}
}
