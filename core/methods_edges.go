// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Parallel-edge keys are the smallest non-negative integer not already
//     used between the pair at insertion time.
//   - Bundles iterate keys in insertion order.
//
// AI-Hints (file):
//   - On a simple graph AddEdge(u,v,...) twice updates the single edge's attributes.
//   - On a multigraph AddEdge always inserts a new parallel edge; use AddEdgeKey to update.
package core

import "fmt"

// AddEdge inserts the edge u->v (or u-v when undirected), creating missing
// endpoints, and returns the key of the affected edge.
//
// Implementation:
//   - Stage 1: Ensure both endpoints exist (idempotent).
//   - Stage 2: Simple graph: reuse the existing bundle's key 0 and merge attrs.
//   - Stage 3: Multigraph: allocate the lowest free key and store a fresh Attrs.
//
// Complexity:
//   - Time O(1) amortized for simple graphs; O(k) for multigraphs with k parallel edges.
func (g *Graph[N]) AddEdge(u, v N, attrs ...Attrs) int {
	g.AddNode(u)
	g.AddNode(v)

	b := g.bundleFor(u, v)
	key := 0
	if g.multigraph {
		key = lowestFreeKey(b)
	}
	a, ok := b.get(key)
	if !ok {
		a = make(Attrs)
		b.set(key, a)
	}
	for _, m := range attrs {
		for k, val := range m {
			a[k] = val
		}
	}

	return key
}

// AddEdgeKey inserts or updates the parallel edge (u, v, key) on a multigraph.
// Returns ErrKeysNotSupported on simple graphs.
func (g *Graph[N]) AddEdgeKey(u, v N, key int, attrs ...Attrs) error {
	if !g.multigraph {
		return fmt.Errorf("AddEdgeKey(%v,%v,%d): %w", u, v, key, ErrKeysNotSupported)
	}
	g.AddNode(u)
	g.AddNode(v)

	b := g.bundleFor(u, v)
	a, ok := b.get(key)
	if !ok {
		a = make(Attrs)
		b.set(key, a)
	}
	for _, m := range attrs {
		for k, val := range m {
			a[k] = val
		}
	}

	return nil
}

// RemoveEdge deletes the edge between u and v. On a multigraph the most
// recently inserted parallel edge is removed.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph[N]) RemoveEdge(u, v N) error {
	b, ok := g.lookup(u, v)
	if !ok {
		return fmt.Errorf("RemoveEdge(%v,%v): %w", u, v, ErrEdgeNotFound)
	}
	key, _ := b.last()

	return g.RemoveEdgeKey(u, v, key)
}

// RemoveEdgeKey deletes the parallel edge (u, v, key).
// Returns ErrEdgeNotFound when the key is not present between u and v.
func (g *Graph[N]) RemoveEdgeKey(u, v N, key int) error {
	b, ok := g.lookup(u, v)
	if !ok || !b.remove(key) {
		return fmt.Errorf("RemoveEdgeKey(%v,%v,%d): %w", u, v, key, ErrEdgeNotFound)
	}
	if b.len() == 0 {
		g.succ[u].remove(v)
		g.pred[v].remove(u)
	}
	g.log.Debugf("removed edge (%v, %v, %d)", u, v, key)

	return nil
}

// HasEdge reports whether at least one edge u->v exists (either orientation
// for undirected graphs). Unknown endpoints report false. O(1).
func (g *Graph[N]) HasEdge(u, v N) bool {
	_, ok := g.lookup(u, v)
	return ok
}

// HasEdgeKey reports whether the parallel edge (u, v, key) exists.
// Simple graphs only ever hold key 0.
func (g *Graph[N]) HasEdgeKey(u, v N, key int) bool {
	b, ok := g.lookup(u, v)
	return ok && b.has(key)
}

// EdgeAttrs returns the live attribute map of the edge u->v. On a
// multigraph it returns the first parallel edge in key insertion order.
func (g *Graph[N]) EdgeAttrs(u, v N) (Attrs, error) {
	b, ok := g.lookup(u, v)
	if !ok {
		return nil, fmt.Errorf("EdgeAttrs(%v,%v): %w", u, v, ErrEdgeNotFound)
	}
	for _, a := range b.all() {
		return a, nil
	}

	return nil, fmt.Errorf("EdgeAttrs(%v,%v): %w", u, v, ErrEdgeNotFound)
}

// EdgeKeyAttrs returns the live attribute map of the parallel edge (u, v, key).
func (g *Graph[N]) EdgeKeyAttrs(u, v N, key int) (Attrs, error) {
	b, ok := g.lookup(u, v)
	if !ok {
		return nil, fmt.Errorf("EdgeKeyAttrs(%v,%v,%d): %w", u, v, key, ErrEdgeNotFound)
	}
	a, ok := b.get(key)
	if !ok {
		return nil, fmt.Errorf("EdgeKeyAttrs(%v,%v,%d): %w", u, v, key, ErrEdgeNotFound)
	}

	return a, nil
}

// EdgeCount returns the number of edges, counting every parallel edge and
// counting an undirected self-loop once. O(V + E).
func (g *Graph[N]) EdgeCount() int {
	total, loops := 0, 0
	for u, row := range g.succ {
		for v, b := range row.all() {
			total += b.len()
			if u == v {
				loops += b.len()
			}
		}
	}
	if g.directed {
		return total
	}

	// Each non-loop edge sits in two rows; loops sit in one.
	return (total-loops)/2 + loops
}

// Internal helper methods:
////////////////////

// lookup returns the bundle for u->v if one exists.
func (g *Graph[N]) lookup(u, v N) (*bundle, bool) {
	row, ok := g.succ[u]
	if !ok {
		return nil, false
	}

	return row.get(v)
}

// bundleFor returns the bundle for u->v, creating and linking it (and its
// mirror or predecessor entry) when missing. Both endpoints must exist.
func (g *Graph[N]) bundleFor(u, v N) *bundle {
	if b, ok := g.succ[u].get(v); ok {
		return b
	}
	b := newOrdered[int, Attrs]()
	g.succ[u].set(v, b)
	// For undirected graphs pred == succ, so this writes the mirror row.
	g.pred[v].set(u, b)

	return b
}

// lowestFreeKey returns the smallest non-negative integer not used in b.
func lowestFreeKey(b *bundle) int {
	key := 0
	for b.has(key) {
		key++
	}

	return key
}
