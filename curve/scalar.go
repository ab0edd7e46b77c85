// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrShortRead is returned when a caller-supplied CSPRNG reader runs
// dry before a Scalar or Point could be sampled.
var ErrShortRead = errors.New("curve: short read from randomness source")

// ScalarBytewidth is the little-endian encoding width of a scalar.
const ScalarBytewidth = FieldElementBytewidth

// Scalar is an element of the curve's scalar field F_r.
type Scalar struct {
	inner fr.Element
}

// ScalarZero returns the additive identity of F_r.
func ScalarZero() Scalar { return Scalar{} }

// Modulus returns r, the order of the scalar field.
func Modulus() *big.Int {
	return fr.Modulus()
}

// ScalarFromUint64 lifts a small non-negative integer into F_r.
func ScalarFromUint64(v uint64) Scalar {
	var e fr.Element
	e.SetUint64(v)
	return Scalar{inner: e}
}

// Add returns a + b mod r.
func (a Scalar) Add(b Scalar) Scalar {
	var r fr.Element
	r.Add(&a.inner, &b.inner)
	return Scalar{inner: r}
}

// Sub returns a - b mod r.
func (a Scalar) Sub(b Scalar) Scalar {
	var r fr.Element
	r.Sub(&a.inner, &b.inner)
	return Scalar{inner: r}
}

// Neg returns -a mod r.
func (a Scalar) Neg() Scalar {
	var r fr.Element
	r.Neg(&a.inner)
	return Scalar{inner: r}
}

// Mul returns a * b mod r.
func (a Scalar) Mul(b Scalar) Scalar {
	var r fr.Element
	r.Mul(&a.inner, &b.inner)
	return Scalar{inner: r}
}

// Equal reports whether a and b represent the same scalar.
func (a Scalar) Equal(b Scalar) bool {
	return a.inner.Equal(&b.inner)
}

// BigInt returns the canonical, non-Montgomery big.Int representation,
// for use as the exponent argument to affine scalar multiplication.
func (a Scalar) BigInt() *big.Int {
	bi := new(big.Int)
	a.inner.BigInt(bi)
	return bi
}

// Bytes encodes the scalar as SCALAR_BYTES little-endian bytes.
func (a Scalar) Bytes() [ScalarBytewidth]byte {
	bi := new(big.Int)
	a.inner.BigInt(bi)
	return bigIntToLE(bi)
}

// ScalarFromBytes decodes a little-endian SCALAR_BYTES encoding.
// Values at or above r are reduced modulo r, matching ReduceBytes below;
// callers that need to reject non-canonical encodings should compare
// against r themselves before calling this.
func ScalarFromBytes(b [ScalarBytewidth]byte) Scalar {
	bi := leToBigInt(b)
	var e fr.Element
	e.SetBigInt(bi)
	return Scalar{inner: e}
}

// ReduceBytes reduces an arbitrary-length big-endian byte string modulo r.
// This is the "reduction of arbitrary byte input modulo r" operation
// from the data model (distinct from rejection-sampled randomness).
func ReduceBytes(b []byte) Scalar {
	bi := new(big.Int).SetBytes(b)
	var e fr.Element
	e.SetBigInt(bi)
	return Scalar{inner: e}
}

// RandomScalar draws a uniformly random scalar from rng via
// rejection-to-field-order: repeatedly read SCALAR_BYTES little-endian
// bytes and accept the first draw strictly less than r. This is the
// exact sampling method MatrixCommitment uses to draw row blinding
// factors from the seeded CSPRNG.
func RandomScalar(rng io.Reader) (Scalar, error) {
	modulus := fr.Modulus()
	var buf [ScalarBytewidth]byte
	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return Scalar{}, ErrShortRead
		}
		candidate := leToBigInt(buf)
		if candidate.Cmp(modulus) < 0 {
			var e fr.Element
			e.SetBigInt(candidate)
			return Scalar{inner: e}, nil
		}
	}
}
