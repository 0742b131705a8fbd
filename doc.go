// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package rhash provides a polynomial rolling hash over byte sequences.

A RollingHash is computed once for a byte slice in linear time. Afterwards the
hash of every substring p[l:r] is available in constant time. The hash of the
sequence x_0, ..., x_{k-1} is

	(x_0+1)*base^(k-1) + (x_1+1)*base^(k-2) + ... + (x_{k-1}+1)  mod modulo.

Every byte is offset by one, so runs of zero bytes of different length
have different hashes.

All products are computed with 128-bit intermediates. Any uint64 base and any
positive uint64 modulo can be used; the modulo should be a large prime.

The package doesn't resolve collisions. Callers that need more robustness
against adversarial input may use two RollingHash values with independent
parameters and compare both hashes.

A RollingHash is immutable and can be used by multiple goroutines
concurrently.
*/
package rhash
