// SPDX-License-Identifier: MIT

// Package view provides read-through report views over a mutable graph:
// nodes, edges and degrees exposed as set-like and mapping-like collections
// that never copy adjacency.
//
// Every view borrows an Adapter (core.Graph implements it) and re-reads it on
// each call, so a view built once keeps reflecting later mutations:
//
//	g := core.NewGraph[int]()
//	edges := view.NewEdgeView[int](g)
//	g.AddEdge(0, 1)
//	edges.Len() // 1
//
// Families:
//
//	NodeView, NodeDataView
//	    Nodes, optionally paired with their attribute map (AllData) or one
//	    attribute (Attr) with a default.
//
//	EdgeView
//	    One generic type, six members picked by the adapter's shape:
//	    EdgeView, OutEdgeView, InEdgeView and their Multi variants. Members
//	    configured with a subset, a data selector or a non-default Keys flag
//	    report themselves as ...EdgeDataView.
//
//	DegreeView
//	    Eight members: DegreeView, DiDegreeView, InDegreeView, OutDegreeView
//	    and their Multi variants. Degree(n) returns a scalar; Call and the
//	    With* builders return re-parameterized views.
//
// Call identity:
//
//	ev.Call(view.EdgeConfig[int]{}) == ev            // simple graph, no-op
//	ev.Call(view.EdgeConfig[int]{Data: view.AllData()}) != ev
//	ev.Data(view.NoData(), nil, false) != ev         // Data always allocates
//
// Set algebra is provided by free functions over SetLike and iter.Seq:
// Intersection, Union, Difference, DifferenceFrom, SymmetricDifference.
// Containment decides membership, so undirected edge views match both
// orientations of a pair.
//
// Errors: ErrNotFound, ErrUnhashable, ErrInvalidArgument. All are wrapped
// with github.com/pkg/errors; test with errors.Is.
//
// Specs: Spec() on any view returns a plain struct that EncodeSpec/DecodeSpec
// turn into YAML; Restore*View rebuilds an equal view on an equivalent graph.
package view
