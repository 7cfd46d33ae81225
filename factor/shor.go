// SPDX-License-Identifier: MIT

package factor

import (
	"errors"

	"github.com/katalvlaran/qft/transform"
)

// Factor splits n into two non-trivial factors with the simplified Shor
// loop:
//
//   - even n returns (2, n/2);
//   - otherwise a random base a in [2, n) is drawn; gcd(a, n) > 1 is already
//     a factor;
//   - else the order r of a is found; when r is even and a^(r/2) ≢ −1,
//     gcd(a^(r/2) ± 1, n) contains a factor.
//
// The result satisfies p·q == n and 1 < p ≤ q < n.
//
// Errors: ErrInvalidModulus if n < 4; transform.ErrOutOfRange as soon as
// the order finder rejects n as too large (FindOrderSpectral above
// MaxSpectralModulus); ErrFactorNotFound when every attempt fails (always
// the case for prime n).
func Factor(n uint64, opts ...Option) (p, q uint64, err error) {
	if n < 4 {
		return 0, 0, factorErrorf(opFactor, ErrInvalidModulus, "n=%d", n)
	}
	if n%2 == 0 {
		return ordered(2, n/2)
	}
	cfg := newConfig(opts...)

	for i := 0; i < cfg.attempts; i++ {
		a := 2 + cfg.rng.Uint64()%(n-2)

		if g := GCD(a, n); g != 1 {
			return ordered(g, n/g)
		}

		r, ferr := cfg.finder(a, n)
		if errors.Is(ferr, transform.ErrOutOfRange) {
			return 0, 0, factorErrorf(opFactor, ferr, "n=%d", n)
		}
		if ferr != nil || r%2 != 0 {
			continue
		}
		h := ModPow(a, r/2, n)
		if h == n-1 {
			continue
		}
		for _, f := range [2]uint64{GCD(h+1, n), GCD(h-1, n)} {
			if f > 1 && f < n {
				return ordered(f, n/f)
			}
		}
	}

	return 0, 0, factorErrorf(opFactor, ErrFactorNotFound, "n=%d, attempts=%d", n, cfg.attempts)
}

// ordered returns (a, b) sorted ascending.
func ordered(a, b uint64) (uint64, uint64, error) {
	if a > b {
		a, b = b, a
	}

	return a, b, nil
}
