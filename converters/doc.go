// SPDX-License-Identifier: MIT

// Package converters reads and writes graph documents, a small YAML or JSON
// format describing a core.Graph[string]:
//
//	directed: false
//	multigraph: true
//	nodes:
//	  - id: a
//	    attrs: {color: red}
//	edges:
//	  - {u: a, v: b, key: 2, attrs: {weight: 3}}
//
// Node and edge order in the document is the insertion order of the built
// graph, and therefore the iteration order of every view over it.
package converters
