// SPDX-License-Identifier: MIT
//
// File: policy.go
// Role: Traversal policy shared by the edge and degree view families.
// AI-HINT (file):
//   - A policy is (orientation x multiplicity); it fixes the debug name and
//     which adjacency side a view reads. Everything else is configuration.
//   - orientTotal is degree-only: it reads both sides of a directed graph.

package view

import "github.com/katalvlaran/graphview/core"

type orientation uint8

const (
	orientBoth  orientation = iota // undirected: both orientations, reported once
	orientOut                      // directed successors
	orientIn                       // directed predecessors
	orientTotal                    // directed successors + predecessors
)

type policy struct {
	orient orientation
	multi  bool
}

// policyFor picks the default policy of an adapter: undirected, or the
// given directed side when the adapter is directed.
func policyFor[N comparable](g Adapter[N], directedSide orientation) policy {
	p := policy{orient: orientBoth, multi: g.Multigraph()}
	if g.Directed() {
		p.orient = directedSide
	}

	return p
}

func (p policy) prefix() string {
	var s string
	switch p.orient {
	case orientOut:
		s = "Out"
	case orientIn:
		s = "In"
	case orientTotal:
		s = "Di"
	}
	if p.multi {
		s += "Multi"
	}

	return s
}

// fits reports whether the policy can read an adapter of the given shape.
func (p policy) fits(directed, multi bool) bool {
	return p.multi == multi && (p.orient == orientBoth) == !directed
}

// side maps a single-sided orientation to the adjacency direction it reads.
func (p policy) side() core.Direction {
	if p.orient == orientIn {
		return core.DirIn
	}

	return core.DirOut
}

var (
	edgePolicies = []policy{
		{orientBoth, false}, {orientOut, false}, {orientIn, false},
		{orientBoth, true}, {orientOut, true}, {orientIn, true},
	}
	degreePolicies = []policy{
		{orientBoth, false}, {orientTotal, false}, {orientOut, false}, {orientIn, false},
		{orientBoth, true}, {orientTotal, true}, {orientOut, true}, {orientIn, true},
	}
)

// parsePolicy resolves a serialized view kind such as "OutMultiEdgeView".
func parsePolicy(kind, suffix string, candidates []policy) (policy, bool) {
	for _, p := range candidates {
		if p.prefix()+suffix == kind {
			return p, true
		}
	}

	return policy{}, false
}
