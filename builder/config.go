// SPDX-License-Identifier: MIT
// Package: graphview/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn    (constant DefaultEdgeWeight)
//   • weightAttr  = ""                 (edges carry no generated weight)
//   • left/right  = "L" / "R"

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphview/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Weight generator, consulted only when weightAttr is set.
	weightFn WeightFn
	// Edge attribute receiving generated weights.
	weightAttr string

	// Bipartite ID prefixes. Empty resolves to defaults.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// edgeAttrs returns the attributes stamped on a freshly emitted edge:
// the generated weight when weightAttr is set, otherwise nil.
func (cfg builderConfig) edgeAttrs() []core.Attrs {
	if cfg.weightAttr == "" {
		return nil
	}

	return []core.Attrs{{cfg.weightAttr: cfg.weightFn(cfg.rng)}}
}
