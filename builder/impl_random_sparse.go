// SPDX-License-Identifier: MIT
// Package: graphview/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i != j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc. Fixed seed gives a fixed graph.

package builder

import (
	"github.com/katalvlaran/graphview/core"
)

const minRandomSparseNodes = 1

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, minRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(ErrNeedRandSource, MethodRandomSparse, "p=%g", p)
		}

		ids := addNodesWithIDFn(g, n, cfg.idFn)
		include := func() bool {
			if cfg.rng == nil {
				return p == MaxProbability
			}

			return cfg.rng.Float64() < p
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if include() {
					addEdge(g, cfg, ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
