// SPDX-License-Identifier: MIT
// Package: graphview/converters
//
// document.go - the on-disk graph document and its mapping onto core.Graph.
//
// Contract:
//   • Nodes are inserted first, in document order; edges follow in document order.
//   • Edge endpoints missing from the node list are created implicitly.
//   • An explicit edge key is honoured on multigraphs only; on a simple graph
//     any key other than 0 is ErrBadDocument.
//   • FromGraph lists edges the way an edge view with full data reports them,
//     so Document -> Graph -> Document is stable.

package converters

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphview/core"
	"github.com/katalvlaran/graphview/view"
)

// Document is the serialized form of a core.Graph[string].
type Document struct {
	Directed   bool      `yaml:"directed" json:"directed"`
	Multigraph bool      `yaml:"multigraph" json:"multigraph"`
	Nodes      []NodeDoc `yaml:"nodes,omitempty" json:"nodes,omitempty"`
	Edges      []EdgeDoc `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// NodeDoc is one node entry.
type NodeDoc struct {
	ID    string     `yaml:"id" json:"id"`
	Attrs core.Attrs `yaml:"attrs,omitempty" json:"attrs,omitempty"`
}

// EdgeDoc is one edge entry. Key is nil when the document leaves key
// allocation to the graph.
type EdgeDoc struct {
	U     string     `yaml:"u" json:"u"`
	V     string     `yaml:"v" json:"v"`
	Key   *int       `yaml:"key,omitempty" json:"key,omitempty"`
	Attrs core.Attrs `yaml:"attrs,omitempty" json:"attrs,omitempty"`
}

// Validate checks structural constraints without building a graph.
func (d *Document) Validate() error {
	for i, n := range d.Nodes {
		if n.ID == "" {
			return errors.Wrapf(ErrBadDocument, "nodes[%d]: empty id", i)
		}
	}
	for i, e := range d.Edges {
		if e.U == "" || e.V == "" {
			return errors.Wrapf(ErrBadDocument, "edges[%d]: empty endpoint", i)
		}
		if e.Key == nil {
			continue
		}
		if *e.Key < 0 {
			return errors.Wrapf(ErrBadDocument, "edges[%d]: negative key %d", i, *e.Key)
		}
		if !d.Multigraph && *e.Key != 0 {
			return errors.Wrapf(ErrBadDocument, "edges[%d]: key %d on a simple graph", i, *e.Key)
		}
	}

	return nil
}

// Graph builds a fresh core.Graph[string] from the document. The document's
// directed/multigraph flags decide the graph mode; extra options (a logger,
// for instance) are appended.
func (d *Document) Graph(opts ...core.GraphOption) (*core.Graph[string], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var gopts []core.GraphOption
	if d.Directed {
		gopts = append(gopts, core.WithDirected())
	}
	if d.Multigraph {
		gopts = append(gopts, core.WithMultiEdges())
	}
	g := core.NewGraph[string](append(gopts, opts...)...)

	for _, n := range d.Nodes {
		g.AddNode(n.ID, cloneAttrs(n.Attrs))
	}
	for i, e := range d.Edges {
		if e.Key == nil || !d.Multigraph {
			g.AddEdge(e.U, e.V, cloneAttrs(e.Attrs))
			continue
		}
		if err := g.AddEdgeKey(e.U, e.V, *e.Key, cloneAttrs(e.Attrs)); err != nil {
			return nil, errors.Wrapf(ErrBadDocument, "edges[%d]: %v", i, err)
		}
	}

	return g, nil
}

// FromGraph snapshots g into a Document. Attribute maps are copied, so later
// mutations of g do not leak into the document.
func FromGraph(g *core.Graph[string]) *Document {
	d := &Document{Directed: g.Directed(), Multigraph: g.Multigraph()}

	nodes := view.NewNodeView[string](g)
	for n, attrs := range nodes.Items() {
		d.Nodes = append(d.Nodes, NodeDoc{ID: n, Attrs: cloneAttrs(attrs)})
	}

	edges := view.NewEdgeView[string](g).Data(view.AllData(), nil, g.Multigraph())
	for e := range edges.All() {
		ed := EdgeDoc{U: e.U, V: e.V}
		if attrs, ok := e.Data.(core.Attrs); ok {
			ed.Attrs = cloneAttrs(attrs)
		}
		if g.Multigraph() {
			key := e.Key
			ed.Key = &key
		}
		d.Edges = append(d.Edges, ed)
	}

	return d
}

// cloneAttrs returns nil for empty input so omitempty keeps documents terse.
func cloneAttrs(a core.Attrs) core.Attrs {
	if len(a) == 0 {
		return nil
	}
	out := make(core.Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}
