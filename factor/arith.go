// SPDX-License-Identifier: MIT

package factor

import "math/bits"

// GCD returns the greatest common divisor of a and b (Euclid).
// GCD(0, 0) is 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// MulMod returns a·b mod m without overflow. m must be non-zero.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)

	return bits.Rem64(hi, lo, m)
}

// ModPow returns base^exp mod m by square-and-multiply.
// ModPow(x, 0, m) is 1 % m; a zero modulus yields 0.
// Complexity: O(log exp) modular products.
func ModPow(base, exp, m uint64) uint64 {
	if m == 0 {
		return 0
	}
	result := 1 % m
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = MulMod(result, base, m)
		}
		base = MulMod(base, base, m)
		exp >>= 1
	}

	return result
}

// reduceOrder shrinks a known exponent d with a^d ≡ 1 (mod n) to the
// multiplicative order of a, by stripping prime factors of d while the
// congruence still holds.
func reduceOrder(a, d, n uint64) uint64 {
	rest := d
	for p := uint64(2); p*p <= rest; p++ {
		if rest%p != 0 {
			continue
		}
		for rest%p == 0 {
			rest /= p
		}
		for d%p == 0 && ModPow(a, d/p, n) == 1 {
			d /= p
		}
	}
	if rest > 1 && d%rest == 0 && ModPow(a, d/rest, n) == 1 {
		d /= rest
	}

	return d
}
