// SPDX-License-Identifier: MIT
//
// File: edges.go
// Role: EdgeView, one generic type covering the six direction x multiplicity
//       members and their data-bearing counterparts.
// Determinism:
//   - Sources follow the node subset order (deduplicated), or adapter node order.
//   - Neighbors and parallel edges follow adapter insertion order.
// AI-HINT (file):
//   - Call returns the receiver when the normalized configuration is unchanged;
//     Data always allocates.
//   - Undirected views report each pair once, from the first source that reaches it.
//   - Keys are only reported (and only compared) when the view has Keys set.

package view

import (
	"iter"
	"reflect"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphview/core"
)

// Edge is one element of an EdgeView. Key is 0 unless the view reports
// keys; Data is nil unless the view carries a data selector.
type Edge[N comparable] struct {
	U, V N
	Key  int
	Data any
}

// EdgeConfig parameterizes an edge view.
type EdgeConfig[N comparable] struct {
	// Nbunch restricts the view to edges touching these nodes (sources for
	// out views, targets for in views). nil means every node; an empty,
	// non-nil slice selects nothing.
	Nbunch []N

	// Data selects the payload appended to each edge.
	Data Selector

	// Default is reported by Attr selectors when the attribute is absent.
	Default any

	// Keys appends parallel-edge keys. Ignored on simple graphs.
	Keys bool
}

// EdgeView is a read-through set of edges.
type EdgeView[N comparable] struct {
	g      Adapter[N]
	pol    policy
	cfg    EdgeConfig[N]
	subset Set[N]
}

var (
	_ SetLike[Edge[int]] = (*EdgeView[int])(nil)
	_ EdgeReader[int]    = (*EdgeView[int])(nil)
)

// EdgeReader is the read surface shared by every edge view member.
type EdgeReader[N comparable] interface {
	SetLike[Edge[N]]
	Has(u, v N) bool
	HasKey(u, v N, key int) bool
	Get(u, v N) (core.Attrs, error)
	GetKey(u, v N, key int) (core.Attrs, error)
}

// NewEdgeView returns the bare edge view of g: EdgeView or MultiEdgeView for
// undirected graphs, OutEdgeView or OutMultiEdgeView for directed ones.
// Bare multigraph views report keys.
func NewEdgeView[N comparable](g Adapter[N]) *EdgeView[N] {
	return newEdgeView(g, policyFor(g, orientOut), EdgeConfig[N]{Keys: g.Multigraph()})
}

// NewOutEdgeView is NewEdgeView; it exists for symmetry with NewInEdgeView.
func NewOutEdgeView[N comparable](g Adapter[N]) *EdgeView[N] {
	return NewEdgeView(g)
}

// NewInEdgeView returns the incoming-edge view of a directed g. For an
// undirected g it is the same as NewEdgeView.
func NewInEdgeView[N comparable](g Adapter[N]) *EdgeView[N] {
	return newEdgeView(g, policyFor(g, orientIn), EdgeConfig[N]{Keys: g.Multigraph()})
}

func newEdgeView[N comparable](g Adapter[N], pol policy, cfg EdgeConfig[N]) *EdgeView[N] {
	ev := &EdgeView[N]{g: g, pol: pol, cfg: normalizeEdgeConfig(pol, cfg)}
	if ev.cfg.Nbunch != nil {
		ev.subset = make(Set[N], len(ev.cfg.Nbunch))
		for _, n := range ev.cfg.Nbunch {
			// Unhashable subset members cannot be nodes.
			_ = ev.subset.Add(n)
		}
	}

	return ev
}

func normalizeEdgeConfig[N comparable](pol policy, cfg EdgeConfig[N]) EdgeConfig[N] {
	if cfg.Keys && !pol.multi {
		logger.Debugf("keys requested on simple %sEdgeView; ignoring", pol.prefix())
		cfg.Keys = false
	}
	if cfg.Data.IsNone() {
		cfg.Default = nil
	}
	if cfg.Nbunch != nil {
		cfg.Nbunch = append(make([]N, 0, len(cfg.Nbunch)), cfg.Nbunch...)
	}

	return cfg
}

// Config returns a copy of the view's configuration.
func (ev *EdgeView[N]) Config() EdgeConfig[N] {
	cfg := ev.cfg
	if cfg.Nbunch != nil {
		cfg.Nbunch = append(make([]N, 0, len(cfg.Nbunch)), cfg.Nbunch...)
	}

	return cfg
}

// Name returns the member name, e.g. "InMultiEdgeView" or "EdgeDataView".
func (ev *EdgeView[N]) Name() string {
	if ev.isBare() {
		return ev.pol.prefix() + "EdgeView"
	}

	return ev.pol.prefix() + "EdgeDataView"
}

func (ev *EdgeView[N]) isBare() bool {
	return ev.cfg.Nbunch == nil && ev.cfg.Data.IsNone() && ev.cfg.Keys == ev.pol.multi
}

// Call re-parameterizes the view. The receiver itself is returned when cfg
// resolves to the receiver's configuration with no node subset.
func (ev *EdgeView[N]) Call(cfg EdgeConfig[N]) *EdgeView[N] {
	cfg = normalizeEdgeConfig(ev.pol, cfg)
	if cfg.Nbunch == nil && ev.cfg.Nbunch == nil &&
		cfg.Data == ev.cfg.Data && cfg.Keys == ev.cfg.Keys &&
		reflect.DeepEqual(cfg.Default, ev.cfg.Default) {
		return ev
	}

	return newEdgeView(ev.g, ev.pol, cfg)
}

// Data returns a fresh data view over the same subset, even for NoData().
func (ev *EdgeView[N]) Data(sel Selector, def any, keys bool) *EdgeView[N] {
	return newEdgeView(ev.g, ev.pol, EdgeConfig[N]{Nbunch: ev.cfg.Nbunch, Data: sel, Default: def, Keys: keys})
}

// WithNodeSubset restricts the view to edges touching nodes.
func (ev *EdgeView[N]) WithNodeSubset(nodes ...N) *EdgeView[N] {
	cfg := ev.cfg
	cfg.Nbunch = append(make([]N, 0, len(nodes)), nodes...)

	return ev.Call(cfg)
}

// WithData changes the payload selector.
func (ev *EdgeView[N]) WithData(sel Selector, def any) *EdgeView[N] {
	cfg := ev.cfg
	cfg.Data, cfg.Default = sel, def

	return ev.Call(cfg)
}

// WithKeys toggles parallel-edge keys.
func (ev *EdgeView[N]) WithKeys(keys bool) *EdgeView[N] {
	cfg := ev.cfg
	cfg.Keys = keys

	return ev.Call(cfg)
}

// All yields the edges of the view.
func (ev *EdgeView[N]) All() iter.Seq[Edge[N]] {
	return func(yield func(Edge[N]) bool) {
		if ev.pol.orient == orientBoth {
			seen := make(map[N]struct{})
			for n := range ev.sources() {
				for adj := range ev.g.Adjacency(n, core.DirOut) {
					if _, ok := seen[adj.Neighbor]; ok {
						continue
					}
					if !yield(ev.edge(n, adj.Neighbor, adj.Key, adj.Attrs)) {
						return
					}
				}
				seen[n] = struct{}{}
			}
			return
		}

		dir := ev.pol.side()
		for n := range ev.sources() {
			for adj := range ev.g.Adjacency(n, dir) {
				u, v := n, adj.Neighbor
				if dir == core.DirIn {
					u, v = v, u
				}
				if !yield(ev.edge(u, v, adj.Key, adj.Attrs)) {
					return
				}
			}
		}
	}
}

// Len counts edges in the view; k parallel edges count k, a self-loop once.
func (ev *EdgeView[N]) Len() int {
	n := 0
	for range ev.All() {
		n++
	}

	return n
}

// Contains reports whether e is an element of the view. Undirected views
// accept either orientation. Key and Data are compared only when the view
// reports them.
func (ev *EdgeView[N]) Contains(e Edge[N]) bool {
	if !ev.covers(e.U, e.V) {
		return false
	}
	if ev.cfg.Keys {
		a, ok := ev.bundleAttrs(e.U, e.V, e.Key)
		return ok && ev.payloadMatches(a, e.Data)
	}
	for _, a := range ev.g.EdgeBundle(e.U, e.V) {
		if ev.payloadMatches(a, e.Data) {
			return true
		}
	}

	return false
}

// Has reports whether any edge u-v is in the view, regardless of key.
func (ev *EdgeView[N]) Has(u, v N) bool {
	return ev.covers(u, v) && ev.g.HasEdge(u, v)
}

// HasKey reports whether the parallel edge (u, v, key) is in the view.
func (ev *EdgeView[N]) HasKey(u, v N, key int) bool {
	return ev.covers(u, v) && ev.g.HasEdgeKey(u, v, key)
}

// Get returns the live attributes of edge u-v; on multigraphs, those of
// the first parallel edge.
func (ev *EdgeView[N]) Get(u, v N) (core.Attrs, error) {
	if ev.covers(u, v) {
		for _, a := range ev.g.EdgeBundle(u, v) {
			return a, nil
		}
	}

	return nil, errors.Wrapf(ErrNotFound, "edge (%v, %v)", u, v)
}

// GetKey returns the live attributes of the parallel edge (u, v, key).
func (ev *EdgeView[N]) GetKey(u, v N, key int) (core.Attrs, error) {
	if ev.covers(u, v) {
		if a, ok := ev.bundleAttrs(u, v, key); ok {
			return a, nil
		}
	}

	return nil, errors.Wrapf(ErrNotFound, "edge (%v, %v, %d)", u, v, key)
}

// Equal reports set equality with o under the view's containment rules.
func (ev *EdgeView[N]) Equal(o SetLike[Edge[N]]) bool { return setEqual[Edge[N]](ev, o) }

// Set materializes the view. Full attribute payloads, and any non-comparable
// projected value, yield ErrUnhashable.
func (ev *EdgeView[N]) Set() (Set[Edge[N]], error) { return Collect(ev.All()) }

// String renders the elements as a list literal, e.g. [(0, 1), (1, 2)].
func (ev *EdgeView[N]) String() string {
	items := make([]string, 0)
	for e := range ev.All() {
		items = append(items, ev.render(e))
	}

	return listOf(items)
}

// GoString renders the debug form, e.g. EdgeView([(0, 1), (1, 2)]).
func (ev *EdgeView[N]) GoString() string {
	return ev.Name() + "(" + ev.String() + ")"
}

func (ev *EdgeView[N]) render(e Edge[N]) string {
	parts := []any{e.U, e.V}
	if ev.cfg.Keys {
		parts = append(parts, e.Key)
	}
	if !ev.cfg.Data.IsNone() {
		parts = append(parts, e.Data)
	}

	return formatTuple(parts...)
}

// edge shapes one adjacency record into an element of the view.
func (ev *EdgeView[N]) edge(u, v N, key int, a core.Attrs) Edge[N] {
	e := Edge[N]{U: u, V: v}
	if ev.cfg.Keys {
		e.Key = key
	}
	e.Data = ev.cfg.Data.project(a, ev.cfg.Default)

	return e
}

// sources yields the nodes whose adjacency the view reads: the subset,
// deduplicated and filtered to current nodes, or every node.
func (ev *EdgeView[N]) sources() iter.Seq[N] {
	if ev.cfg.Nbunch == nil {
		return ev.g.Nodes()
	}

	return subsetNodes(ev.g, ev.cfg.Nbunch)
}

// covers reports whether the subset admits the pair u-v.
func (ev *EdgeView[N]) covers(u, v N) bool {
	if ev.subset == nil {
		return true
	}
	switch ev.pol.orient {
	case orientIn:
		return ev.subset.Contains(v)
	case orientOut:
		return ev.subset.Contains(u)
	default:
		return ev.subset.Contains(u) || ev.subset.Contains(v)
	}
}

func (ev *EdgeView[N]) bundleAttrs(u, v N, key int) (core.Attrs, bool) {
	for k, a := range ev.g.EdgeBundle(u, v) {
		if k == key {
			return a, true
		}
	}

	return nil, false
}

func (ev *EdgeView[N]) payloadMatches(a core.Attrs, data any) bool {
	if ev.cfg.Data.IsNone() {
		return true
	}

	return dataEqual(ev.cfg.Data.project(a, ev.cfg.Default), data)
}

// subsetNodes yields the members of nbunch that are current nodes of g,
// in order and without repeats.
func subsetNodes[N comparable](g Adapter[N], nbunch []N) iter.Seq[N] {
	return func(yield func(N) bool) {
		seen := make(Set[N], len(nbunch))
		for _, n := range nbunch {
			if !hashable(n) || seen.Contains(n) || !g.HasNode(n) {
				continue
			}
			seen[n] = struct{}{}
			if !yield(n) {
				return
			}
		}
	}
}
