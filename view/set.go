// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: Set/Mapping protocols shared by every view and the free set-algebra functions.
// Semantics:
//   - Intersection keeps the elements of `other` that the SetLike contains, so a
//     view's own containment rules (orientation-insensitive undirected edges,
//     deep-equal data payloads) decide membership.
//   - Union/Difference/SymmetricDifference hash both operands; unhashable
//     elements surface ErrUnhashable at that point.
// AI-HINT (file):
//   - Pass the view as the SetLike operand; plain collections go in as iter.Seq.
//   - For "collection minus view" use DifferenceFrom(other, view).

package view

import (
	"iter"
	"reflect"

	"github.com/pkg/errors"
)

// SetLike is the set protocol implemented by NodeView, NodeDataView,
// EdgeView and Set.
type SetLike[T comparable] interface {
	Contains(x T) bool
	All() iter.Seq[T]
	Len() int
}

// MappingLike is the mapping protocol implemented by NodeView,
// NodeDataView and DegreeView.
type MappingLike[K comparable, V any] interface {
	Get(k K) (V, error)
	Items() iter.Seq2[K, V]
	Len() int
}

// Set is a materialized, hashed collection. Build one with Collect so that
// unhashable elements are reported instead of panicking.
type Set[T comparable] map[T]struct{}

var _ SetLike[int] = Set[int](nil)

// NewSet builds a Set from comparable literals.
// It panics on unhashable elements; use Collect for untrusted input.
func NewSet[T comparable](xs ...T) Set[T] {
	s := make(Set[T], len(xs))
	for _, x := range xs {
		if err := s.Add(x); err != nil {
			panic(err)
		}
	}

	return s
}

// Collect hashes every element of seq into a new Set.
// Returns ErrUnhashable on the first element whose dynamic value is not comparable.
func Collect[T comparable](seq iter.Seq[T]) (Set[T], error) {
	s := make(Set[T])
	for x := range seq {
		if err := s.Add(x); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Add inserts x, rejecting values that would panic as a map key.
func (s Set[T]) Add(x T) error {
	if !hashable(x) {
		return errors.Wrapf(ErrUnhashable, "%T", x)
	}
	s[x] = struct{}{}

	return nil
}

// Contains reports membership.
func (s Set[T]) Contains(x T) bool {
	if !hashable(x) {
		return false
	}
	_, ok := s[x]

	return ok
}

// All yields the elements in unspecified order.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s {
			if !yield(x) {
				return
			}
		}
	}
}

// Len returns the number of elements.
func (s Set[T]) Len() int { return len(s) }

// Equal reports whether both sets hold the same elements.
func (s Set[T]) Equal(o SetLike[T]) bool { return setEqual[T](s, o) }

// Intersection returns every element of other that s contains.
func Intersection[T comparable](s SetLike[T], other iter.Seq[T]) (Set[T], error) {
	out := make(Set[T])
	for x := range other {
		if !s.Contains(x) {
			continue
		}
		if err := out.Add(x); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Union returns the elements of s together with the elements of other.
func Union[T comparable](s SetLike[T], other iter.Seq[T]) (Set[T], error) {
	out, err := Collect(s.All())
	if err != nil {
		return nil, err
	}
	for x := range other {
		if err = out.Add(x); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Difference returns the elements of s that do not occur in other.
func Difference[T comparable](s SetLike[T], other iter.Seq[T]) (Set[T], error) {
	drop, err := Collect(other)
	if err != nil {
		return nil, err
	}
	out := make(Set[T])
	for x := range s.All() {
		if drop.Contains(x) {
			continue
		}
		if err = out.Add(x); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// DifferenceFrom returns the elements of other that s does not contain,
// i.e. the view as the right-hand operand of "-".
func DifferenceFrom[T comparable](other iter.Seq[T], s SetLike[T]) (Set[T], error) {
	out := make(Set[T])
	for x := range other {
		if s.Contains(x) {
			continue
		}
		if err := out.Add(x); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SymmetricDifference returns the elements found in exactly one operand,
// computed as Difference(s, other) ∪ DifferenceFrom(other, s).
func SymmetricDifference[T comparable](s SetLike[T], other iter.Seq[T]) (Set[T], error) {
	left, err := Difference(s, other)
	if err != nil {
		return nil, err
	}
	right, err := DifferenceFrom(other, s)
	if err != nil {
		return nil, err
	}
	for x := range right {
		left[x] = struct{}{}
	}

	return left, nil
}

// hashable reports whether x can be used as a map key without panicking.
func hashable(x any) bool {
	v := reflect.ValueOf(x)
	if !v.IsValid() {
		return true
	}

	return v.Comparable()
}
