// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone replays nodes and edges in insertion order, so the clone enumerates identically.
// AI-HINT (file):
//   - A clone receives a fresh ID(); it is an equivalent adapter, not the same one.
//   - Attribute maps are copied one level deep; nested values are shared.
//   - Clear() preserves flags but resets catalogs.

package core

import "github.com/google/uuid"

// CloneEmpty returns a new Graph with identical configuration and nodes
// (attributes copied one level deep), but no edges.
//
// Complexity: O(V).
func (g *Graph[N]) CloneEmpty() *Graph[N] {
	clone := NewGraph[N](g.options()...)
	for n, a := range g.nodes.all() {
		clone.AddNode(n, a)
	}

	return clone
}

// Clone returns a copy of the Graph: configuration, nodes, edges, keys and
// attributes (one level deep). The source graph is not mutated.
//
// Complexity: O(V + E).
func (g *Graph[N]) Clone() *Graph[N] {
	clone := g.CloneEmpty()
	// Walk successors in node order so mirrored rows are rebuilt in the same order.
	for u := range g.nodes.all() {
		for v, b := range g.succ[u].all() {
			if _, done := clone.lookup(u, v); done {
				continue
			}
			nb := clone.bundleFor(u, v)
			for key, a := range b.all() {
				cp := make(Attrs, len(a))
				for k, val := range a {
					cp[k] = val
				}
				nb.set(key, cp)
			}
		}
	}

	return clone
}

// Clear resets the graph to an empty state but preserves flags and identity.
func (g *Graph[N]) Clear() {
	g.nodes = newOrdered[N, Attrs]()
	g.succ = make(map[N]*ordered[N, *bundle])
	if g.directed {
		g.pred = make(map[N]*ordered[N, *bundle])
	} else {
		g.pred = g.succ
	}
}

// options reconstructs the GraphOption list that produced g.
func (g *Graph[N]) options() []GraphOption {
	opts := []GraphOption{WithLogger(g.log)}
	if g.directed {
		opts = append(opts, WithDirected())
	}
	if g.multigraph {
		opts = append(opts, WithMultiEdges())
	}

	return opts
}

// ID returns the unique identity assigned to this graph instance at construction.
func (g *Graph[N]) ID() uuid.UUID {
	return g.id
}
