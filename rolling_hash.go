// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package rhash

import (
	"fmt"
	"math"

	"github.com/ulikunitz/rhash/basics/u64"
	"github.com/ulikunitz/rhash/xlog"
)

// DefaultBase is the base used by NewRollingHash. It is a random prime.
const DefaultBase = 252097800623

// DefaultModulo is the modulo used by NewRollingHash. It is the Mersenne
// prime 2^61-1.
const DefaultModulo = 1<<61 - 1

// Invalid is returned by Get for an inverted range. Hash values are always
// less than the modulo and can never be Invalid.
const Invalid uint64 = math.MaxUint64

// RollingHash provides the hashes of all substrings of a byte sequence.
type RollingHash struct {
	base   uint64
	modulo uint64
	// pow[i] = base^i mod modulo
	pow []uint64
	// hash[i] is the hash of the first i bytes
	hash []uint64
}

// NewRollingHash computes the rolling hash for p using DefaultBase and
// DefaultModulo.
func NewRollingHash(p []byte) *RollingHash {
	return NewRollingHashConst(p, DefaultBase, DefaultModulo)
}

// NewRollingHashConst computes the rolling hash for p using the given base
// and modulo. The slice p is not retained. The function panics if modulo is
// zero.
func NewRollingHashConst(p []byte, base, modulo uint64) *RollingHash {
	if modulo == 0 {
		panic("rhash: modulo must be positive")
	}
	hash := make([]uint64, 1, len(p)+1)
	pow := make([]uint64, 1, len(p)+1)
	h, q := uint64(0), 1%modulo
	hash[0], pow[0] = h, q
	for _, c := range p {
		h = u64.MulMod(h, base, modulo)
		h = u64.AddMod(h, (uint64(c)+1)%modulo, modulo)
		q = u64.MulMod(q, base, modulo)
		hash = append(hash, h)
		pow = append(pow, q)
	}
	xlog.Printf(debug, "table len %d base %d modulo %d sum %#x",
		len(hash), base, modulo, h)
	return &RollingHash{
		base:   base,
		modulo: modulo,
		pow:    pow,
		hash:   hash,
	}
}

// Len returns the length of the hashed sequence.
func (rh *RollingHash) Len() int { return len(rh.hash) - 1 }

// Base returns the polynomial base.
func (rh *RollingHash) Base() uint64 { return rh.base }

// Modulo returns the modulo. All hash values are less than it.
func (rh *RollingHash) Modulo() uint64 { return rh.modulo }

// Sum returns the hash of the complete sequence.
func (rh *RollingHash) Sum() uint64 { return rh.hash[len(rh.hash)-1] }

// Get returns the hash of the substring p[l:r]. If r < l the value Invalid
// is returned. Indexes exceeding Len cause a panic; use Hash for checked
// access.
func (rh *RollingHash) Get(l, r int) uint64 {
	if r < l {
		return Invalid
	}
	x := u64.MulMod(rh.hash[l], rh.pow[r-l], rh.modulo)
	return u64.SubMod(rh.hash[r], x, rh.modulo)
}

// Hash returns the hash of the substring p[l:r]. Unlike Get it reports
// inverted ranges with ErrInvertedRange and indexes outside [0, Len()] with
// an error wrapping ErrOutOfBounds.
func (rh *RollingHash) Hash(l, r int) (h uint64, err error) {
	n := rh.Len()
	if !(0 <= l && l <= n) || !(0 <= r && r <= n) {
		return 0, fmt.Errorf("%w: range [%d,%d) for length %d",
			ErrOutOfBounds, l, r, n)
	}
	if r < l {
		return 0, ErrInvertedRange
	}
	return rh.Get(l, r), nil
}

// Roller returns a Roller for windows of length n that computes the same
// hash values as rh. The function panics if n is not positive.
func (rh *RollingHash) Roller(n int) *PolyRoller {
	return NewPolyRoller(n, rh.base, rh.modulo)
}
