// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package u64 provides modular arithmetic for the uint64 type that never
// overflows.
package u64

import "math/bits"

// MulMod computes x*y mod m. The full 128-bit product is reduced, so the
// result is exact for all arguments. The function panics if m is zero.
func MulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	// Rem64 doesn't panic for hi >= m.
	return bits.Rem64(hi, lo, m)
}

// AddMod computes x+y mod m. Both x and y must be less than m.
func AddMod(x, y, m uint64) uint64 {
	z, carry := bits.Add64(x, y, 0)
	if carry != 0 || z >= m {
		z -= m
	}
	return z
}

// SubMod computes x-y mod m. Both x and y must be less than m.
func SubMod(x, y, m uint64) uint64 {
	if x >= y {
		return x - y
	}
	return x + (m - y)
}

// PowMod computes x^e mod m using square-and-multiply.
func PowMod(x, e, m uint64) uint64 {
	z := 1 % m
	x %= m
	for e > 0 {
		if e&1 != 0 {
			z = MulMod(z, x, m)
		}
		x = MulMod(x, x, m)
		e >>= 1
	}
	return z
}
