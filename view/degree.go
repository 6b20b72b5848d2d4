// SPDX-License-Identifier: MIT
//
// File: degree.go
// Role: DegreeView, one generic type covering the eight degree members.
// Semantics:
//   - Undirected: every incident edge counts once, a self-loop twice.
//   - Di (total): successors + predecessors, so a directed self-loop counts twice.
//   - In / Out: one side only.
//   - Multi members sum every parallel edge; multiplicity only changes the name.
// AI-HINT (file):
//   - Degree(n) is the scalar accessor and ignores the node subset.
//   - Weights go through cast.ToFloat64E; unconvertible values fall back to
//     the default weight with a warning.

package view

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/katalvlaran/graphview/core"
)

// DegreeConfig parameterizes a degree view.
type DegreeConfig[N comparable] struct {
	// Nbunch restricts which nodes the view reports. nil means every node.
	Nbunch []N

	// Weight names the edge attribute to sum. Empty counts edges.
	Weight string

	// Default is the per-edge weight used when Weight is absent on an edge.
	// nil means 1.
	Default *float64
}

// DegreeView is a read-through mapping node -> degree.
type DegreeView[N comparable] struct {
	g   Adapter[N]
	pol policy
	cfg DegreeConfig[N]
}

var _ MappingLike[int, float64] = (*DegreeView[int])(nil)

// NewDegreeView returns DegreeView/MultiDegreeView for undirected graphs and
// DiDegreeView/DiMultiDegreeView (in + out) for directed ones.
func NewDegreeView[N comparable](g Adapter[N]) *DegreeView[N] {
	return &DegreeView[N]{g: g, pol: policyFor(g, orientTotal)}
}

// NewInDegreeView returns the in-degree view of a directed g, or
// NewDegreeView(g) for an undirected one.
func NewInDegreeView[N comparable](g Adapter[N]) *DegreeView[N] {
	return &DegreeView[N]{g: g, pol: policyFor(g, orientIn)}
}

// NewOutDegreeView returns the out-degree view of a directed g, or
// NewDegreeView(g) for an undirected one.
func NewOutDegreeView[N comparable](g Adapter[N]) *DegreeView[N] {
	return &DegreeView[N]{g: g, pol: policyFor(g, orientOut)}
}

// Name returns the member name, e.g. "InMultiDegreeView".
func (dv *DegreeView[N]) Name() string { return dv.pol.prefix() + "DegreeView" }

// Config returns a copy of the view's configuration.
func (dv *DegreeView[N]) Config() DegreeConfig[N] {
	cfg := dv.cfg
	if cfg.Nbunch != nil {
		cfg.Nbunch = append(make([]N, 0, len(cfg.Nbunch)), cfg.Nbunch...)
	}
	if cfg.Default != nil {
		d := *cfg.Default
		cfg.Default = &d
	}

	return cfg
}

// Call returns a view restricted to cfg.Nbunch and weighted by cfg.Weight.
// The receiver is returned when nothing changes.
func (dv *DegreeView[N]) Call(cfg DegreeConfig[N]) *DegreeView[N] {
	if cfg.Nbunch == nil && dv.cfg.Nbunch == nil && cfg.Weight == dv.cfg.Weight &&
		sameWeight(cfg.Default, dv.cfg.Default) {
		return dv
	}
	if cfg.Nbunch != nil {
		cfg.Nbunch = append(make([]N, 0, len(cfg.Nbunch)), cfg.Nbunch...)
	}
	if cfg.Default != nil {
		d := *cfg.Default
		cfg.Default = &d
	}

	return &DegreeView[N]{g: dv.g, pol: dv.pol, cfg: cfg}
}

// WithNodeSubset restricts the view to nodes.
func (dv *DegreeView[N]) WithNodeSubset(nodes ...N) *DegreeView[N] {
	cfg := dv.cfg
	cfg.Nbunch = append(make([]N, 0, len(nodes)), nodes...)

	return dv.Call(cfg)
}

// WithWeight sums the named edge attribute instead of counting edges.
func (dv *DegreeView[N]) WithWeight(attr string) *DegreeView[N] {
	cfg := dv.cfg
	cfg.Weight = attr

	return dv.Call(cfg)
}

// WithDefaultWeight sets the per-edge weight used when the attribute is absent.
func (dv *DegreeView[N]) WithDefaultWeight(w float64) *DegreeView[N] {
	cfg := dv.cfg
	cfg.Default = &w

	return dv.Call(cfg)
}

// Degree returns the (weighted) degree of n, or ErrNotFound.
func (dv *DegreeView[N]) Degree(n N) (float64, error) {
	if !hashable(n) || !dv.g.HasNode(n) {
		return 0, errors.Wrapf(ErrNotFound, "node %v", n)
	}

	var d float64
	switch dv.pol.orient {
	case orientBoth:
		for adj := range dv.g.Adjacency(n, core.DirOut) {
			w := dv.weigh(adj.Attrs)
			d += w
			if adj.Neighbor == n {
				d += w
			}
		}
	case orientTotal:
		d = dv.sum(n, core.DirOut) + dv.sum(n, core.DirIn)
	default:
		d = dv.sum(n, dv.pol.side())
	}

	return d, nil
}

// Get is Degree under the MappingLike name.
func (dv *DegreeView[N]) Get(n N) (float64, error) { return dv.Degree(n) }

// Contains reports whether n is a node reported by the view.
func (dv *DegreeView[N]) Contains(n N) bool {
	if dv.cfg.Nbunch == nil {
		return hashable(n) && dv.g.HasNode(n)
	}
	for m := range dv.Nodes() {
		if m == n {
			return true
		}
	}

	return false
}

// Nodes yields the nodes reported by the view.
func (dv *DegreeView[N]) Nodes() iter.Seq[N] {
	if dv.cfg.Nbunch == nil {
		return dv.g.Nodes()
	}

	return subsetNodes(dv.g, dv.cfg.Nbunch)
}

// All yields (node, degree) pairs in subset or adapter order.
func (dv *DegreeView[N]) All() iter.Seq2[N, float64] {
	return func(yield func(N, float64) bool) {
		for n := range dv.Nodes() {
			d, err := dv.Degree(n)
			if err != nil {
				continue
			}
			if !yield(n, d) {
				return
			}
		}
	}
}

// Items is All under the MappingLike name.
func (dv *DegreeView[N]) Items() iter.Seq2[N, float64] { return dv.All() }

// Len counts the nodes reported by the view.
func (dv *DegreeView[N]) Len() int {
	if dv.cfg.Nbunch == nil {
		return dv.g.NodeCount()
	}
	n := 0
	for range dv.Nodes() {
		n++
	}

	return n
}

// Equal reports mapping equality with o.
func (dv *DegreeView[N]) Equal(o MappingLike[N, float64]) bool {
	if dv.Len() != o.Len() {
		return false
	}
	for n, d := range o.Items() {
		if !dv.Contains(n) {
			return false
		}
		mine, err := dv.Degree(n)
		if err != nil || mine != d {
			return false
		}
	}

	return true
}

// String renders [(n, d), ...].
func (dv *DegreeView[N]) String() string {
	items := make([]string, 0)
	for n, d := range dv.All() {
		items = append(items, formatTuple(n, d))
	}

	return listOf(items)
}

// GoString renders Name({n: d, ...}).
func (dv *DegreeView[N]) GoString() string {
	var keys, vals []string
	for n, d := range dv.All() {
		keys = append(keys, formatValue(n))
		vals = append(vals, formatValue(d))
	}

	return dv.Name() + "(" + mappingOf(keys, vals) + ")"
}

func (dv *DegreeView[N]) sum(n N, dir core.Direction) float64 {
	var d float64
	for adj := range dv.g.Adjacency(n, dir) {
		d += dv.weigh(adj.Attrs)
	}

	return d
}

// weigh returns the contribution of one edge.
func (dv *DegreeView[N]) weigh(a core.Attrs) float64 {
	if dv.cfg.Weight == "" {
		return 1
	}
	def := 1.0
	if dv.cfg.Default != nil {
		def = *dv.cfg.Default
	}
	raw, ok := a[dv.cfg.Weight]
	if !ok {
		return def
	}
	w, err := cast.ToFloat64E(raw)
	if err != nil {
		logger.Warnf("edge weight %q=%v is not numeric, using %v: %v", dv.cfg.Weight, raw, def, err)
		return def
	}

	return w
}

func sameWeight(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
