// Package factor implements order finding and a simplified Shor factoring
// loop.
//
// The quantum part of Shor's algorithm is the order finder: given a and n
// coprime, find the smallest r > 0 with a^r ≡ 1 (mod n). Two finders are
// provided:
//
//   - FindOrder walks the powers of a classically (O(r) modular products).
//   - FindOrderSpectral prepares the periodic register state a measurement
//     of the modular exponentiation would leave behind, applies the quantum
//     Fourier transform from package transform, and recovers r from the
//     peaks with continued fractions.
//
// Factor drives either finder (WithOrderFinder) with random bases until a
// non-trivial split p·q = n is found.
//
// All arithmetic is on uint64 with overflow-safe modular multiplication.
package factor
