// SPDX-License-Identifier: MIT
//
// File: ordered.go
// Role: Insertion-ordered map used for nodes, adjacency rows and edge bundles.
// Determinism:
//   - Iteration follows first-insertion order; re-setting a key keeps its slot.
//   - Deleting a key compacts the order slice (O(n)), keeping reads O(1).

package core

import "iter"

type ordered[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

func newOrdered[K comparable, V any]() *ordered[K, V] {
	return &ordered[K, V]{vals: make(map[K]V)}
}

func (o *ordered[K, V]) get(k K) (V, bool) {
	v, ok := o.vals[k]
	return v, ok
}

func (o *ordered[K, V]) has(k K) bool {
	_, ok := o.vals[k]
	return ok
}

func (o *ordered[K, V]) set(k K, v V) {
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

func (o *ordered[K, V]) remove(k K) bool {
	if _, ok := o.vals[k]; !ok {
		return false
	}
	delete(o.vals, k)
	for i, key := range o.keys {
		if key == k {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}

	return true
}

func (o *ordered[K, V]) len() int { return len(o.keys) }

// last returns the most recently inserted key still present.
func (o *ordered[K, V]) last() (K, bool) {
	var zero K
	if len(o.keys) == 0 {
		return zero, false
	}

	return o.keys[len(o.keys)-1], true
}

// all yields entries in insertion order. Keys removed mid-iteration by the
// consumer are skipped rather than reported stale.
func (o *ordered[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < len(o.keys); i++ {
			k := o.keys[i]
			v, ok := o.vals[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}
