// SPDX-License-Identifier: MIT

package factor

import (
	"math"
	"math/bits"
	"sort"

	"github.com/katalvlaran/qft/transform"
)

const (
	// MaxRegisterQubits bounds the simulated register: 2^t ≥ n² must hold
	// with t ≤ MaxRegisterQubits, so FindOrderSpectral accepts n ≤ 1024.
	MaxRegisterQubits = 20

	// DirectLimitQubits is the largest register transformed with the dense
	// QFT matrix; larger registers use transform.FastTransform.
	DirectLimitQubits = 8

	// maxPeaks caps how many spectral peaks are examined.
	maxPeaks = 64

	// maxMultiple bounds the multiples of a convergent denominator tried
	// when the peak s/r was not in lowest terms.
	maxMultiple = 16
)

// MaxSpectralModulus is the largest n FindOrderSpectral accepts.
const MaxSpectralModulus = uint64(1) << (MaxRegisterQubits / 2)

// registerCache holds the dense QFT matrices for small registers.
var registerCache = transform.NewCache()

// FindOrderSpectral finds the order of a modulo n the way Shor's algorithm
// does, on a simulated register:
//
//  1. choose t with 2^t ≥ n² and build the state (1/√m)·Σ|x⟩ over the
//     x < 2^t with a^x ≡ 1 (mod n), which is what measuring the work
//     register in state 1 leaves behind;
//  2. apply the QFT (dense matrix up to DirectLimitQubits, FFT above);
//  3. for the strongest peaks y, expand y/2^t in continued fractions and
//     test the convergent denominators (and small multiples of them);
//  4. reduce the first verified exponent to the exact order.
//
// Errors: ErrInvalidModulus if n < 2; ErrNotCoprime; transform.ErrOutOfRange
// if n > MaxSpectralModulus; ErrOrderNotFound if no peak yields the order.
func FindOrderSpectral(a, n uint64) (uint64, error) {
	if n < 2 {
		return 0, factorErrorf(opFindOrderSpectral, ErrInvalidModulus, "a=%d, n=%d", a, n)
	}
	if n > MaxSpectralModulus {
		return 0, factorErrorf(opFindOrderSpectral, transform.ErrOutOfRange, "n=%d > %d", n, MaxSpectralModulus)
	}
	base := a % n
	if GCD(base, n) != 1 {
		return 0, factorErrorf(opFindOrderSpectral, ErrNotCoprime, "a=%d, n=%d", a, n)
	}
	if base == 1 {
		return 1, nil
	}

	t := bits.Len64(n*n - 1) // smallest t with 2^t ≥ n²
	q := 1 << t
	state := periodicState(base, n, q)

	spectrum, err := qft(t, state)
	if err != nil {
		return 0, factorErrorf(opFindOrderSpectral, err, "a=%d, n=%d", a, n)
	}

	for _, peak := range strongest(spectrum) {
		for _, d := range convergentDenominators(uint64(peak.Index), uint64(q), n) {
			multiples := uint64(maxMultiple)
			if d == 1 {
				multiples = 1
			}
			for m := uint64(1); m <= multiples && d*m < n; m++ {
				if ModPow(base, d*m, n) == 1 {
					return reduceOrder(base, d*m, n), nil
				}
			}
		}
	}

	return 0, factorErrorf(opFindOrderSpectral, ErrOrderNotFound, "a=%d, n=%d", a, n)
}

// periodicState returns the normalized uniform superposition over the
// x in [0, q) with base^x ≡ 1 (mod n).
func periodicState(base, n uint64, q int) transform.Vector {
	v := make(transform.Vector, q)
	count := 0
	y := uint64(1)
	for x := 0; x < q; x++ {
		if y == 1 {
			v[x] = 1
			count++
		}
		y = MulMod(y, base, n)
	}
	amp := complex(1/math.Sqrt(float64(count)), 0)
	for x := range v {
		if v[x] != 0 {
			v[x] = amp
		}
	}

	return v
}

// qft applies the forward unitary transform on t qubits.
func qft(t int, state transform.Vector) (transform.Vector, error) {
	if t <= DirectLimitQubits {
		return registerCache.Transform(t, state)
	}

	return transform.FastTransform(state)
}

// strongest returns the non-zero peaks above transform.DefaultThreshold,
// strongest first (ties by index), at most maxPeaks of them.
func strongest(spectrum transform.Vector) []transform.Amplitude {
	peaks := transform.AmplitudesAboveThreshold(spectrum, transform.DefaultThreshold)
	out := peaks[:0]
	for _, p := range peaks {
		if p.Index != 0 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Probability() > out[j].Probability() })
	if len(out) > maxPeaks {
		out = out[:maxPeaks]
	}

	return out
}

// convergentDenominators returns the denominators k_i of the continued
// fraction convergents of y/q that are below limit, in order.
func convergentDenominators(y, q, limit uint64) []uint64 {
	var out []uint64
	// k_{-2} = 1, k_{-1} = 0.
	kPrev, k := uint64(1), uint64(0)
	num, den := y, q
	for den != 0 {
		term := num / den
		num, den = den, num%den
		kPrev, k = k, term*k+kPrev
		if k >= limit {
			break
		}
		if k > 0 {
			out = append(out, k)
		}
	}

	return out
}
