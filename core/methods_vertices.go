// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() yields IDs in first-insertion order.
//
// AI-Hints (file):
//   - NodeAttrs returns the live attribute map; mutate it to annotate a node in place.
//   - RemoveNode drops every incident edge in both adjacency directions.
package core

import (
	"fmt"
	"iter"
)

// AddNode inserts n if missing (idempotent) and merges attrs into its attribute map.
//
// Implementation:
//   - Stage 1: If n is new, allocate an empty Attrs and register adjacency rows.
//   - Stage 2: Merge every supplied attribute map, later maps winning.
//
// Complexity:
//   - Time O(1) amortized plus O(|attrs|), Space O(1) amortized.
func (g *Graph[N]) AddNode(n N, attrs ...Attrs) {
	a, ok := g.nodes.get(n)
	if !ok {
		a = make(Attrs)
		g.nodes.set(n, a)
		g.succ[n] = newOrdered[N, *bundle]()
		if g.directed {
			g.pred[n] = newOrdered[N, *bundle]()
		}
	}
	for _, m := range attrs {
		for k, v := range m {
			a[k] = v
		}
	}
}

// HasNode reports whether n is a node of the graph.
// Complexity: O(1).
func (g *Graph[N]) HasNode(n N) bool {
	return g.nodes.has(n)
}

// NodeAttrs returns the live attribute map of n.
// Returns ErrNodeNotFound when n is absent.
// Complexity: O(1).
func (g *Graph[N]) NodeAttrs(n N) (Attrs, error) {
	a, ok := g.nodes.get(n)
	if !ok {
		return nil, fmt.Errorf("NodeAttrs(%v): %w", n, ErrNodeNotFound)
	}

	return a, nil
}

// SetNodeAttr sets one attribute on an existing node.
func (g *Graph[N]) SetNodeAttr(n N, key string, value any) error {
	a, err := g.NodeAttrs(n)
	if err != nil {
		return err
	}
	a[key] = value

	return nil
}

// NodeCount returns the current number of nodes. O(1).
func (g *Graph[N]) NodeCount() int {
	return g.nodes.len()
}

// Nodes yields node IDs in insertion order. The sequence is lazy and
// restartable; each call to the returned function starts from the beginning.
func (g *Graph[N]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		for n := range g.nodes.all() {
			if !yield(n) {
				return
			}
		}
	}
}

// RemoveNode deletes n and all incident edges.
// Returns ErrNodeNotFound when n is absent.
// Complexity: O(deg(n) · d) where d is the mean row length of n's neighbors.
func (g *Graph[N]) RemoveNode(n N) error {
	if !g.nodes.has(n) {
		return fmt.Errorf("RemoveNode(%v): %w", n, ErrNodeNotFound)
	}

	// Unlink n from every successor's predecessor row and vice versa.
	for v := range g.succ[n].all() {
		if v != n {
			g.pred[v].remove(n)
		}
	}
	if g.directed {
		for u := range g.pred[n].all() {
			if u != n {
				g.succ[u].remove(n)
			}
		}
		delete(g.pred, n)
	}
	delete(g.succ, n)
	g.nodes.remove(n)
	g.log.Debugf("removed node %v", n)

	return nil
}
