// SPDX-License-Identifier: MIT

package factor

// FindOrder returns the smallest r > 0 with a^r ≡ 1 (mod n) by stepping
// through the powers of a.
//
// Errors: ErrInvalidModulus if n < 2; ErrNotCoprime if gcd(a, n) != 1;
// ErrOrderNotFound if no order is reached within n steps (cannot happen for
// coprime inputs, kept as a hard bound).
// Complexity: O(r) modular products, r < n.
func FindOrder(a, n uint64) (uint64, error) {
	if n < 2 {
		return 0, factorErrorf(opFindOrder, ErrInvalidModulus, "a=%d, n=%d", a, n)
	}
	if GCD(a%n, n) != 1 {
		return 0, factorErrorf(opFindOrder, ErrNotCoprime, "a=%d, n=%d", a, n)
	}

	base := a % n
	x := base
	for r := uint64(1); r <= n; r++ {
		if x == 1 {
			return r, nil
		}
		x = MulMod(x, base, n)
	}

	return 0, factorErrorf(opFindOrder, ErrOrderNotFound, "a=%d, n=%d", a, n)
}
