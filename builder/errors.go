// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("<Method>: <details>: %w").
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidAmount indicates a negative supply amount.
var ErrInvalidAmount = errors.New("builder: amount must be non-negative")

// ErrConstructFailed indicates a construction that could not proceed, such as
// a nil constructor passed to BuildNetwork.
var ErrConstructFailed = errors.New("builder: construction failed")
