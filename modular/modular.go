// Package modular implements arithmetic on residues modulo the prime Mod.
//
// All functions are pure. Arguments are expected to be reduced residues
// unless stated otherwise; results are always in [0, Mod).
package modular

// Mod is the prime modulus every count is reduced by.
const Mod = 1_000_000_007

// Add returns (x + y) mod Mod.
func Add(x, y uint64) uint64 {
	return (x + y) % Mod
}

// Mul returns (x * y) mod Mod.
// Both operands are below Mod, so the product fits in 64 bits.
func Mul(x, y uint64) uint64 {
	return (x % Mod) * (y % Mod) % Mod
}

// Power returns x^y mod Mod by repeated squaring.
func Power(x, y uint64) uint64 {
	result := uint64(1)
	product := x % Mod
	for y != 0 {
		if y&1 == 1 {
			result = result * product % Mod
		}
		y >>= 1
		product = product * product % Mod
	}
	return result
}

// Inverse returns the multiplicative inverse of n.
// By Fermat's little theorem this is n^(Mod-2). The result is meaningless
// when n is a multiple of Mod; callers never divide by such a value.
func Inverse(n uint64) uint64 {
	return Power(n, Mod-2)
}

// Divide returns x / y mod Mod.
func Divide(x, y uint64) uint64 {
	return Mul(x, Inverse(y))
}

// Factorial returns n! mod Mod. It is 1 for n <= 1.
func Factorial(n int) uint64 {
	result := uint64(1)
	for i := n; i > 1; i-- {
		result = result * uint64(i) % Mod
	}
	return result
}

// Combination returns the binomial coefficient C(n, r) mod Mod.
//
// The numerator n·(n-1)·…·(r+1) is accumulated first and then divided
// term by term by (n-r)…2, so no factorial table up to n is needed.
// C(n, 0) is 1 for every n; otherwise it returns 0 when r is negative
// or larger than n.
func Combination(n, r int) uint64 {
	if r == 0 {
		return 1
	}
	if r < 0 || r > n {
		return 0
	}
	result := uint64(1)
	for i := n; i > r; i-- {
		result = result * uint64(i) % Mod
	}
	for i := n - r; i > 1; i-- {
		result = Divide(result, uint64(i))
	}
	return result
}

// CombinationWithRepetition returns the number of multisets of size r
// drawn from n kinds, C(n+r-1, r) mod Mod.
func CombinationWithRepetition(n, r int) uint64 {
	return Combination(n+r-1, r)
}
