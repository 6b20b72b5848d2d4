// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs read by the view layer (Adjacency, EdgeBundle, Neighbors).
// Determinism:
//   - Neighbors follow first-insertion order of the edge between the pair.
//   - Parallel edges follow key insertion order.
// AI-HINT (file):
//   - Adjacency(n, DirIn) on an undirected graph is identical to DirOut.
//   - Sequences are lazy: they read live buckets, never copies.

package core

import "iter"

// Adjacency yields one Adjacent record per edge incident to n on the chosen
// side: successors for DirOut, predecessors for DirIn. Parallel edges are
// yielded individually; an unknown n yields nothing.
//
// Complexity:
//   - Time O(deg(n)) for a full drain, Space O(1).
func (g *Graph[N]) Adjacency(n N, dir Direction) iter.Seq[Adjacent[N]] {
	return func(yield func(Adjacent[N]) bool) {
		row, ok := g.row(n, dir)
		if !ok {
			return
		}
		for nbr, b := range row.all() {
			for key, a := range b.all() {
				if !yield(Adjacent[N]{Neighbor: nbr, Key: key, Attrs: a}) {
					return
				}
			}
		}
	}
}

// EdgeBundle yields (key, attrs) for every parallel edge u->v in key
// insertion order. Simple graphs yield at most one record with key 0.
func (g *Graph[N]) EdgeBundle(u, v N) iter.Seq2[int, Attrs] {
	return func(yield func(int, Attrs) bool) {
		b, ok := g.lookup(u, v)
		if !ok {
			return
		}
		for key, a := range b.all() {
			if !yield(key, a) {
				return
			}
		}
	}
}

// Neighbors yields the distinct neighbors of n on the chosen side.
func (g *Graph[N]) Neighbors(n N, dir Direction) iter.Seq[N] {
	return func(yield func(N) bool) {
		row, ok := g.row(n, dir)
		if !ok {
			return
		}
		for nbr := range row.all() {
			if !yield(nbr) {
				return
			}
		}
	}
}

func (g *Graph[N]) row(n N, dir Direction) (*ordered[N, *bundle], bool) {
	if dir == DirIn {
		row, ok := g.pred[n]
		return row, ok
	}
	row, ok := g.succ[n]

	return row, ok
}
