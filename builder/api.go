// SPDX-License-Identifier: MIT
// Package: graphview/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs/options/seed and constructor order give identical graphs,
//     including node order and parallel-edge keys.
//   - Constructors never panic; they return sentinel errors wrapped with context.
//
// AI-Hints:
//   - Compose constructors to assemble fixtures: Path(6) followed by Chord(1, 3, ...) twice
//     yields the weighted-degree fixture (one edge on simple graphs, two on multigraphs).
//   - Use WithSeed(...) to freeze RandomSparse.
//   - Use WithWeightAttr(name) to stamp every emitted edge with a generated weight.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphview/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect the graph's directed/multigraph mode.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: sum of each constructor's cost.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, resolving bopts once.
// It is the incremental counterpart of BuildGraph.
func Apply(g *core.Graph[string], bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add nodes via cfg.idFn (except the fixed hub "Center").
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; never panic at runtime.
//
// Path(n)                  P_n, n >= 2.
// Cycle(n)                 C_n, n >= 3.
// Star(n)                  hub "Center" plus n-1 leaves, n >= 2.
// Wheel(n)                 C_{n-1} plus hub "Center", n >= 4.
// Complete(n)              K_n, n >= 1.
// CompleteBipartite(a, b)  K_{a,b} with cfg.leftPrefix/cfg.rightPrefix IDs.
// RandomSparse(n, p)       Erdős–Rényi G(n, p); needs an RNG for 0 < p < 1.
// Chord(i, j, attrs)       one extra edge idFn(i)-idFn(j) carrying attrs.
