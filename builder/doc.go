// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph[string] fixtures from
// composable constructors configured with functional options.
//
// The package offers:
//
//   - Orchestration: BuildGraph creates a graph and runs constructors in
//     order; Apply runs them against an existing graph.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite,
//     RandomSparse, and Chord for adding one extra (possibly parallel) edge.
//   - Node-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A","Z","AA",…), PrefixedIDFn ("v0","v1",…).
//   - Edge-weight generators (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntegerWeightFn, NormalWeightFn. Weights are stamped
//     only when WithWeightAttr names the receiving attribute.
//
// Guarantees:
//
//   - Same options, seed and constructor order give identical graphs,
//     including node order and parallel-edge keys.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) and never panic.
//
// Example: the weighted-degree fixture used throughout the view tests.
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithMultiEdges()}, nil,
//		builder.Path(6),
//		builder.Chord(1, 3, core.Attrs{"foo": 2}),
//		builder.Chord(1, 3, core.Attrs{"foo": 3}),
//	)
package builder
