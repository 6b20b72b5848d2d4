// SPDX-License-Identifier: MIT
// Package: graphview/view
//
// errors.go - sentinel errors for the view package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context with errors.Wrapf, never by redefining sentinels.
//   • Nothing is recovered internally: every error reaches the immediate caller.

package view

import "github.com/pkg/errors"

// ErrNotFound indicates that a node, edge or parallel-edge key was indexed
// but does not exist in the adapter (or lies outside the view's node subset).
var ErrNotFound = errors.New("view: not found")

// ErrUnhashable indicates a hash-based operation (building a Set, set
// algebra) over data that is not uniformly comparable: full attribute maps,
// or attribute values such as slices and maps. It surfaces at the point of
// hashing, never at view construction.
var ErrUnhashable = errors.New("view: unhashable element")

// ErrInvalidArgument indicates a malformed configuration, e.g. a spec whose
// kind is unknown or does not match the adapter's directedness/multiplicity.
var ErrInvalidArgument = errors.New("view: invalid argument")
