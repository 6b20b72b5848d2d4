// SPDX-License-Identifier: MIT
// Package: graphview/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf, which keeps the
//     sentinel reachable through pkg/errors wrapping.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"github.com/pkg/errors"
)

// ErrTooFewVertices indicates that a numeric parameter (n, a, b) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not apply a mutation, such as
// a nil constructor or a Chord referencing a negative index.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps a sentinel with method context. The result prints as
// "<Method>: <formatted message>: <sentinel>".
func builderErrorf(sentinel error, method, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, method+": "+format, args...)
}

// Priority when several validations fail:
//   • ErrTooFewVertices       - size/domain checks first.
//   • ErrInvalidProbability   - then probability ranges.
//   • ErrNeedRandSource       - then RNG presence for stochastic builders.
//   • ErrConstructFailed      - last.
