// SPDX-License-Identifier: MIT
// Package: pathcost/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w,
// e.g. "RandomSparse: p=1.500000 not in [0.0,1.0]: builder: probability out of range".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeightRange indicates a weight interval that is negative or inverted.
// UniformWeightFn and ConstantWeightFn panic with its message.
var ErrInvalidWeightRange = errors.New("builder: weight range must satisfy 0 ≤ min ≤ max")

// ErrConstructFailed indicates a construction that could not proceed (nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
