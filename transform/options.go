// SPDX-License-Identifier: MIT
package transform

import (
	"fmt"
	"runtime"
)

// Direction selects the sign of the exponent in the transform kernel.
type Direction int

const (
	// Forward uses exp(+2πi·j·k/N), the quantum Fourier transform convention.
	Forward Direction = iota
	// Inverse uses exp(−2πi·j·k/N), the classical DFT convention.
	Inverse
)

// Sign returns +1 for Forward and −1 for Inverse.
func (d Direction) Sign() float64 {
	if d == Inverse {
		return -1
	}

	return 1
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Inverse {
		return Forward
	}

	return Inverse
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Normalization selects the scale factor applied to every matrix entry.
type Normalization int

const (
	// NormUnitary scales by 1/√N; the resulting matrix is unitary.
	NormUnitary Normalization = iota
	// NormNone leaves entries unscaled (classical DFT).
	NormNone
	// NormByN scales by 1/N (inverse of an unscaled DFT).
	NormByN
)

func (n Normalization) String() string {
	switch n {
	case NormUnitary:
		return "unitary"
	case NormNone:
		return "none"
	case NormByN:
		return "1/N"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// Defaults describe the quantum Fourier transform.
const (
	DefaultDirection     = Forward
	DefaultNormalization = NormUnitary
)

const (
	panicDirectionInvalid     = "transform: WithDirection: unknown direction"
	panicNormalizationInvalid = "transform: WithNormalization: unknown normalization"
)

// Option configures matrix construction and evaluation.
type Option func(*options)

type options struct {
	direction     Direction
	normalization Normalization
	workers       int // <= 0 means GOMAXPROCS
}

// WithDirection selects the exponent sign. Panics on unknown values.
func WithDirection(d Direction) Option {
	if d != Forward && d != Inverse {
		panic(panicDirectionInvalid)
	}

	return func(o *options) { o.direction = d }
}

// WithNormalization selects the entry scale. Panics on unknown values.
func WithNormalization(n Normalization) Option {
	if n < NormUnitary || n > NormByN {
		panic(panicNormalizationInvalid)
	}

	return func(o *options) { o.normalization = n }
}

// WithWorkers bounds the goroutines used by ApplyParallel.
// Non-positive values select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// gatherOptions resolves setters on top of the defaults, last writer wins.
func gatherOptions(user ...Option) options {
	o := options{
		direction:     DefaultDirection,
		normalization: DefaultNormalization,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
