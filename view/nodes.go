// SPDX-License-Identifier: MIT
//
// File: nodes.go
// Role: NodeView and NodeDataView, the set/mapping projections of the node collection.
// Determinism:
//   - Iteration follows the adapter's node order on every pass.
// AI-HINT (file):
//   - NodeView.Call with NoData() returns the receiver; any other selector
//     allocates a NodeDataView.
//   - NodeDataView with AllData() is never hashable; Set() reports ErrUnhashable.

package view

import (
	"iter"
	"reflect"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphview/core"
)

// NodeConfig selects the payload of a node report.
type NodeConfig struct {
	Data    Selector
	Default any
}

// NodeReport is what NodeView.Call returns: the NodeView itself or a
// NodeDataView. Both report membership, size and node order.
type NodeReport[N comparable] interface {
	Len() int
	Nodes() iter.Seq[N]
	HasNode(n N) bool
	String() string
	GoString() string
}

// NodeView is a set-like and mapping-like projection of the node collection.
type NodeView[N comparable] struct {
	g Adapter[N]
}

var (
	_ SetLike[int]                 = (*NodeView[int])(nil)
	_ MappingLike[int, core.Attrs] = (*NodeView[int])(nil)
	_ NodeReport[int]              = (*NodeView[int])(nil)
	_ NodeReport[int]              = (*NodeDataView[int])(nil)
	_ MappingLike[int, any]        = (*NodeDataView[int])(nil)
)

// NewNodeView returns a node view reading through g.
func NewNodeView[N comparable](g Adapter[N]) *NodeView[N] {
	return &NodeView[N]{g: g}
}

// Contains reports whether n is currently a node.
func (nv *NodeView[N]) Contains(n N) bool { return nv.g.HasNode(n) }

// HasNode is Contains under the NodeReport name.
func (nv *NodeView[N]) HasNode(n N) bool { return nv.g.HasNode(n) }

// All yields the nodes in adapter order.
func (nv *NodeView[N]) All() iter.Seq[N] { return nv.g.Nodes() }

// Nodes is All under the NodeReport name.
func (nv *NodeView[N]) Nodes() iter.Seq[N] { return nv.g.Nodes() }

// Items yields every node with its live attribute map.
func (nv *NodeView[N]) Items() iter.Seq2[N, core.Attrs] {
	return func(yield func(N, core.Attrs) bool) {
		for n := range nv.g.Nodes() {
			a, err := nv.g.NodeAttrs(n)
			if err != nil {
				continue
			}
			if !yield(n, a) {
				return
			}
		}
	}
}

// Get returns the live attribute map of n, or ErrNotFound.
func (nv *NodeView[N]) Get(n N) (core.Attrs, error) {
	a, err := nv.g.NodeAttrs(n)
	if err != nil {
		return nil, errors.Wrapf(ErrNotFound, "node %v", n)
	}

	return a, nil
}

// Len returns the current node count.
func (nv *NodeView[N]) Len() int { return nv.g.NodeCount() }

// Call re-parameterizes the view. NoData() returns nv itself; any other
// selector returns a new NodeDataView.
func (nv *NodeView[N]) Call(cfg NodeConfig) NodeReport[N] {
	if cfg.Data.IsNone() {
		return nv
	}

	return nv.WithData(cfg.Data, cfg.Default)
}

// Data is the explicit projection entry point; it dispatches like Call.
func (nv *NodeView[N]) Data(sel Selector, def any) NodeReport[N] {
	return nv.Call(NodeConfig{Data: sel, Default: def})
}

// WithData always returns a NodeDataView, even for NoData().
func (nv *NodeView[N]) WithData(sel Selector, def any) *NodeDataView[N] {
	if sel.IsNone() {
		def = nil
	}

	return &NodeDataView[N]{g: nv.g, sel: sel, def: def}
}

// Equal reports set equality with o.
func (nv *NodeView[N]) Equal(o SetLike[N]) bool { return setEqual[N](nv, o) }

// Set materializes the view.
func (nv *NodeView[N]) Set() (Set[N], error) { return Collect(nv.All()) }

// String renders the nodes as a list literal, e.g. [0, 1, 2].
func (nv *NodeView[N]) String() string { return listOf(nv.rendered()) }

// GoString renders the debug form, e.g. NodeView((0, 1, 2)).
func (nv *NodeView[N]) GoString() string { return "NodeView(" + tupleOf(nv.rendered()) + ")" }

func (nv *NodeView[N]) rendered() []string {
	out := make([]string, 0, nv.g.NodeCount())
	for n := range nv.g.Nodes() {
		out = append(out, formatValue(n))
	}

	return out
}

// NodeData is one element of a NodeDataView.
type NodeData[N comparable] struct {
	Node N
	Data any
}

// NodeDataView pairs each node with a projection of its attributes.
type NodeDataView[N comparable] struct {
	g   Adapter[N]
	sel Selector
	def any
}

// NewNodeDataView returns a data view over g's nodes.
func NewNodeDataView[N comparable](g Adapter[N], sel Selector, def any) *NodeDataView[N] {
	return NewNodeView(g).WithData(sel, def)
}

// Selector returns the configured data selector.
func (dv *NodeDataView[N]) Selector() Selector { return dv.sel }

// Default returns the value reported when an Attr selector misses.
func (dv *NodeDataView[N]) Default() any { return dv.def }

// HasNode reports whether n is currently a node.
func (dv *NodeDataView[N]) HasNode(n N) bool { return dv.g.HasNode(n) }

// Nodes yields the bare node identities.
func (dv *NodeDataView[N]) Nodes() iter.Seq[N] { return dv.g.Nodes() }

// Len returns the current node count.
func (dv *NodeDataView[N]) Len() int { return dv.g.NodeCount() }

// Contains reports whether x.Node is a node whose projected data equals x.Data.
func (dv *NodeDataView[N]) Contains(x NodeData[N]) bool {
	a, err := dv.g.NodeAttrs(x.Node)
	if err != nil {
		return false
	}

	return dataEqual(dv.sel.project(a, dv.def), x.Data)
}

// All yields (node, data) pairs in adapter order.
func (dv *NodeDataView[N]) All() iter.Seq[NodeData[N]] {
	return func(yield func(NodeData[N]) bool) {
		for n, d := range dv.Items() {
			if !yield(NodeData[N]{Node: n, Data: d}) {
				return
			}
		}
	}
}

// Items yields node -> projected data.
func (dv *NodeDataView[N]) Items() iter.Seq2[N, any] {
	return func(yield func(N, any) bool) {
		for n := range dv.g.Nodes() {
			a, err := dv.g.NodeAttrs(n)
			if err != nil {
				continue
			}
			if !yield(n, dv.sel.project(a, dv.def)) {
				return
			}
		}
	}
}

// Get returns the projected data of n, or ErrNotFound.
func (dv *NodeDataView[N]) Get(n N) (any, error) {
	a, err := dv.g.NodeAttrs(n)
	if err != nil {
		return nil, errors.Wrapf(ErrNotFound, "node %v", n)
	}

	return dv.sel.project(a, dv.def), nil
}

// Equal reports mapping equality with o.
func (dv *NodeDataView[N]) Equal(o MappingLike[N, any]) bool {
	if dv.Len() != o.Len() {
		return false
	}
	for n, d := range o.Items() {
		mine, err := dv.Get(n)
		if err != nil || !dataEqual(mine, d) {
			return false
		}
	}

	return true
}

// Set hashes the (node, data) pairs. Full attribute maps, and any
// non-comparable projected value, yield ErrUnhashable.
func (dv *NodeDataView[N]) Set() (Set[NodeData[N]], error) {
	if dv.sel.Kind() == SelectAll {
		return nil, errors.Wrap(ErrUnhashable, "node data view over full attribute maps")
	}

	return Collect(dv.All())
}

// String renders [(n, data), ...], or the plain node list under NoData().
func (dv *NodeDataView[N]) String() string {
	items := make([]string, 0, dv.g.NodeCount())
	for n, d := range dv.Items() {
		if dv.sel.IsNone() {
			items = append(items, formatValue(n))
			continue
		}
		items = append(items, formatTuple(n, d))
	}

	return listOf(items)
}

// GoString renders NodeDataView({n: data, ...}), with the selector appended
// for Attr selectors.
func (dv *NodeDataView[N]) GoString() string {
	keys := make([]string, 0, dv.g.NodeCount())
	vals := make([]string, 0, dv.g.NodeCount())
	for n, a := range NewNodeView(dv.g).Items() {
		keys = append(keys, formatValue(n))
		if dv.sel.Kind() == SelectAttr {
			vals = append(vals, formatValue(dv.sel.project(a, dv.def)))
			continue
		}
		vals = append(vals, formatValue(a))
	}
	out := "NodeDataView(" + mappingOf(keys, vals)
	if dv.sel.Kind() == SelectAttr {
		out += ", data=" + dv.sel.String()
	}

	return out + ")"
}

// setEqual reports whether a and b hold the same elements, using a's
// containment rules.
func setEqual[T comparable](a, b SetLike[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for x := range b.All() {
		if !a.Contains(x) {
			return false
		}
	}

	return true
}

// dataEqual compares projected payloads. Attribute maps compare by content
// whether they arrive as core.Attrs or map[string]any.
func dataEqual(a, b any) bool {
	if m, ok := b.(map[string]any); ok {
		b = core.Attrs(m)
	}
	if m, ok := a.(map[string]any); ok {
		a = core.Attrs(m)
	}
	if am, ok := a.(core.Attrs); ok {
		bm, ok := b.(core.Attrs)
		if !ok || len(am) != len(bm) {
			return false
		}
		for k, v := range am {
			w, ok := bm[k]
			if !ok || !reflect.DeepEqual(v, w) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(a, b)
}
