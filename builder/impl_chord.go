// SPDX-License-Identifier: MIT
// Package: graphview/builder
//
// impl_chord.go - implementation of Chord(i, j, attrs) constructor.
//
// Contract:
//   • i ≥ 0 and j ≥ 0 (else ErrConstructFailed).
//   • Adds one edge idFn(i) → idFn(j), creating missing endpoints.
//   • attrs are merged over cfg's generated weight, so an explicit value wins.
//   • On a simple graph a repeated Chord updates the existing edge; on a
//     multigraph it adds a parallel edge under the lowest free key.

package builder

import (
	"github.com/katalvlaran/graphview/core"
)

// Chord returns a Constructor that adds a single extra edge between the
// nodes at indices i and j.
func Chord(i, j int, attrs core.Attrs) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if i < 0 || j < 0 {
			return builderErrorf(ErrConstructFailed, MethodChord, "negative index (%d, %d)", i, j)
		}

		merged := make(core.Attrs, len(attrs)+1)
		for _, a := range cfg.edgeAttrs() {
			for k, v := range a {
				merged[k] = v
			}
		}
		for k, v := range attrs {
			merged[k] = v
		}
		g.AddEdge(cfg.idFn(i), cfg.idFn(j), merged)

		return nil
	}
}
