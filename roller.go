// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package rhash

import "github.com/ulikunitz/rhash/basics/u64"

// Roller defines an interface provided by a rolling hash over windows of a
// fixed length.
//
// The method Len provides the length of the byte sequences for which the
// rolling hash will be computed.
//
// The method AddYoung adds a new byte to the provided hash, whereby the hash
// value will be shifted or multiplied accordingly.
//
// The method RemoveOldest removes the provided oldest byte from the hash. The
// hash value will not be shifted or multiplied.
type Roller interface {
	Len() int
	AddYoung(h uint64, b byte) uint64
	RemoveOldest(h uint64, b byte) uint64
}

// ComputeHashes computes all hashes for the windows of the byte slice p
// using the rolling hash provided by r. The hash with index i is the hash of
// p[i:i+r.Len()]. If p is shorter than r.Len(), nil is returned.
func ComputeHashes(r Roller, p []byte) []uint64 {
	m, n := len(p), r.Len()
	if m < n {
		return nil
	}
	h := make([]uint64, m-n+1)
	for i := 0; i < n; i++ {
		h[0] = r.AddYoung(h[0], p[i])
	}
	for i := 1; i < len(h); i++ {
		h[i] = r.RemoveOldest(h[i-1], p[i-1])
		h[i] = r.AddYoung(h[i], p[n-1+i])
	}
	return h
}

// PolyRoller is the sliding window variant of RollingHash. Window hashes
// are identical to the values returned by RollingHash.Get for the same base
// and modulo.
type PolyRoller struct {
	base   uint64
	modulo uint64
	n      int
	// base^(n-1) mod modulo
	aOldest uint64
}

// NewPolyRoller creates a roller for windows of n bytes. The function panics
// if n is not positive or modulo is zero.
func NewPolyRoller(n int, base, modulo uint64) *PolyRoller {
	if n <= 0 {
		panic("rhash: window length n must be positive")
	}
	if modulo == 0 {
		panic("rhash: modulo must be positive")
	}
	return &PolyRoller{
		base:    base,
		modulo:  modulo,
		n:       n,
		aOldest: u64.PowMod(base, uint64(n-1), modulo),
	}
}

// Len returns the window length.
func (r *PolyRoller) Len() int { return r.n }

// AddYoung multiplies h by the base and adds byte b.
func (r *PolyRoller) AddYoung(h uint64, b byte) uint64 {
	h = u64.MulMod(h, r.base, r.modulo)
	return u64.AddMod(h, (uint64(b)+1)%r.modulo, r.modulo)
}

// RemoveOldest removes the contribution of the oldest byte b from h.
func (r *PolyRoller) RemoveOldest(h uint64, b byte) uint64 {
	x := u64.MulMod(uint64(b)+1, r.aOldest, r.modulo)
	return u64.SubMod(h, x, r.modulo)
}
