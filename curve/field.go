// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package curve implements the minimal prime-order elliptic-curve
// abstraction the Pedersen/Hyrax commitment engine is built on, backed
// by the BN254 G1 group from gnark-crypto.
//
// A custom abstraction is used here rather than a published curve
// trait for the same reason the original implementation gave: the
// closest library interfaces either bundle in an unrelated
// small-order-multiplicative-subgroup requirement on the scalar field,
// or require reimplementing a whole field algebra just to satisfy a
// trait. Keeping the surface to exactly what Pedersen/Hyrax need
// limits the porting surface if a second curve is ever wired in.
package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// FieldElementBytewidth is the little-endian encoding width of every
// element of F_q and F_r used by this package.
const FieldElementBytewidth = 32

// FieldElement is an element of the curve's base field F_q.
type FieldElement struct {
	inner fp.Element
}

// Zero returns the additive identity of F_q.
func Zero() FieldElement { return FieldElement{} }

// One returns the multiplicative identity of F_q.
func One() FieldElement {
	var e fp.Element
	e.SetOne()
	return FieldElement{inner: e}
}

// FieldElementFromUint64 lifts a small non-negative integer into F_q.
func FieldElementFromUint64(v uint64) FieldElement {
	var e fp.Element
	e.SetUint64(v)
	return FieldElement{inner: e}
}

// Add returns a + b.
func (a FieldElement) Add(b FieldElement) FieldElement {
	var r fp.Element
	r.Add(&a.inner, &b.inner)
	return FieldElement{inner: r}
}

// Sub returns a - b.
func (a FieldElement) Sub(b FieldElement) FieldElement {
	var r fp.Element
	r.Sub(&a.inner, &b.inner)
	return FieldElement{inner: r}
}

// Mul returns a * b.
func (a FieldElement) Mul(b FieldElement) FieldElement {
	var r fp.Element
	r.Mul(&a.inner, &b.inner)
	return FieldElement{inner: r}
}

// Square returns a * a.
func (a FieldElement) Square() FieldElement {
	var r fp.Element
	r.Square(&a.inner)
	return FieldElement{inner: r}
}

// Neg returns -a.
func (a FieldElement) Neg() FieldElement {
	var r fp.Element
	r.Neg(&a.inner)
	return FieldElement{inner: r}
}

// Sqrt returns a canonical square root of a and true if one exists.
func (a FieldElement) Sqrt() (FieldElement, bool) {
	var r fp.Element
	if r.Sqrt(&a.inner) == nil {
		return FieldElement{}, false
	}
	return FieldElement{inner: r}, true
}

// IsZero reports whether a is the additive identity.
func (a FieldElement) IsZero() bool {
	return a.inner.IsZero()
}

// Equal reports whether a and b represent the same field element.
func (a FieldElement) Equal(b FieldElement) bool {
	return a.inner.Equal(&b.inner)
}

// lowBit returns the low bit of the element's canonical little-endian
// encoding, used to recover the stored sign/parity bit for compressed
// point encodings.
func (a FieldElement) lowBit() byte {
	b := a.toLEBytes()
	return b[0] & 1
}

// toLEBytes encodes a in little-endian fixed-width form.
func (a FieldElement) toLEBytes() [FieldElementBytewidth]byte {
	bi := new(big.Int)
	a.inner.BigInt(bi)
	return bigIntToLE(bi)
}

// fieldElementFromLEBytes decodes a little-endian fixed-width encoding,
// reducing modulo q if the value exceeds the field.
func fieldElementFromLEBytes(b [FieldElementBytewidth]byte) FieldElement {
	bi := leToBigInt(b)
	var e fp.Element
	e.SetBigInt(bi)
	return FieldElement{inner: e}
}

// bigIntToLE renders a non-negative big.Int as a fixed-width little-endian
// byte array, matching SCALAR_BYTES / base-field element width.
func bigIntToLE(v *big.Int) [FieldElementBytewidth]byte {
	var be [FieldElementBytewidth]byte
	v.FillBytes(be[:])
	return reverse32(be)
}

// leToBigInt parses a fixed-width little-endian byte array into a
// non-negative big.Int.
func leToBigInt(le [FieldElementBytewidth]byte) *big.Int {
	be := reverse32(le)
	return new(big.Int).SetBytes(be[:])
}

func reverse32(b [FieldElementBytewidth]byte) [FieldElementBytewidth]byte {
	var r [FieldElementBytewidth]byte
	for i := 0; i < FieldElementBytewidth; i++ {
		r[i] = b[FieldElementBytewidth-1-i]
	}
	return r
}
