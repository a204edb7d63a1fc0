// SPDX-License-Identifier: MIT
// Package: labelcsr/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "<Method>: <detail>: %w".

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error during composition (e.g. nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadGraph6 indicates an invalid graph6 string.
var ErrBadGraph6 = errors.New("builder: invalid graph6 encoding")
