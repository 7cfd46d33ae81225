// SPDX-License-Identifier: MIT

package factor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModulus indicates a modulus too small for the operation
	// (n < 2 for order finding, n < 4 for factoring).
	ErrInvalidModulus = errors.New("factor: invalid modulus")

	// ErrNotCoprime indicates gcd(a, n) != 1, so a has no multiplicative order.
	ErrNotCoprime = errors.New("factor: base and modulus are not coprime")

	// ErrOrderNotFound indicates the order finder gave up.
	ErrOrderNotFound = errors.New("factor: order not found")

	// ErrFactorNotFound indicates every attempt produced only trivial factors
	// (n is prime, or the attempt budget ran out).
	ErrFactorNotFound = errors.New("factor: no non-trivial factor found")
)

const (
	opFindOrder         = "FindOrder"
	opFindOrderSpectral = "FindOrderSpectral"
	opFactor            = "Factor"
)

// factorErrorf wraps err as "<op>(<detail>): err".
func factorErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", op, fmt.Sprintf(format, args...), err)
}
