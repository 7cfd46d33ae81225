// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w through builderErrorf.
//   • Priority when several checks fail: size → RNG.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a node count below the minimum of the builder.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a negative edge count.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates that a stochastic builder ran without an RNG
// (set one with WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilGraph indicates Populate or Generate received a nil *core.Graph.
var ErrNilGraph = errors.New("builder: nil graph")

// builderErrorf wraps err with the method name and a formatted detail:
// "<Method>: <detail>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
