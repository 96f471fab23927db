// SPDX-License-Identifier: MIT
// Package: lvlath-planar/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Implementations attach context with "%s: ...: %w" (method first).
//   - Constructors never panic; option constructors panic on nil inputs.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, a side of
// a bipartition) is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed, such as
// a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid parameter domain, such as an
// unknown Platonic solid.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrUnknownFixture indicates a name not recognised by Fixture.
var ErrUnknownFixture = errors.New("builder: unknown fixture")
