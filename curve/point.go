// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// Byte widths of the two point encodings defined by the wire format.
const (
	UncompressedPointBytewidth = 1 + 2*FieldElementBytewidth
	CompressedPointBytewidth   = 1 + FieldElementBytewidth + 1
)

// identityTag marks the distinguished identity element in both the
// compressed and uncompressed encodings.
const identityTag = 1
const affineTag = 0

// ErrNotOnCurve is returned when a decoded point fails the curve
// equation check. Decoding must fail loudly rather than silently
// accept a corrupt or maliciously-crafted point.
var ErrNotOnCurve = errors.New("curve: decoded point is not on the curve")

// ErrBadEncoding is returned when a byte string cannot represent a
// valid encoded point (wrong length, unknown tag, or an x-coordinate
// with no square root under the compressed encoding).
var ErrBadEncoding = errors.New("curve: malformed point encoding")

// Point is a point on the short-Weierstrass curve y^2 = x^3 + 3
// (BN254 G1), including the distinguished identity. Internally a point
// is tracked in affine form; Commit-style accumulation over many points
// uses a local Jacobian accumulator for efficiency (see package pedersen),
// exactly as the library this was adapted from does.
type Point struct {
	aff bn254.G1Affine
}

// ZeroPoint returns the identity of the group.
func ZeroPoint() Point {
	var a bn254.G1Affine
	a.SetInfinity()
	return Point{aff: a}
}

// GeneratorPoint returns BN254 G1's standard base point, (1, 2).
func GeneratorPoint() Point {
	_, _, g1Aff, _ := bn254.Generators()
	return Point{aff: g1Aff}
}

// RandomPoint samples a point uniformly by rejection on x: draw a
// 512-bit value from rng, reduce it modulo q to get a candidate x; if
// y^2 = x^3 + 3 has a square root, pick the sign of y from one further
// random bit read from rng, otherwise resample. Terminates with
// probability 1 since roughly half of all x values are quadratic
// residues.
func RandomPoint(rng io.Reader) (Point, error) {
	var wide [2 * FieldElementBytewidth]byte
	var signByte [1]byte
	var three fp.Element
	three.SetUint64(3)

	for {
		if _, err := io.ReadFull(rng, wide[:]); err != nil {
			return Point{}, ErrShortRead
		}
		xBig := new(big.Int).SetBytes(wide[:])
		xBig.Mod(xBig, fp.Modulus())

		var x fp.Element
		x.SetBigInt(xBig)

		var x2, x3, rhs fp.Element
		x2.Square(&x)
		x3.Mul(&x2, &x)
		rhs.Add(&x3, &three)

		var y fp.Element
		if y.Sqrt(&rhs) == nil {
			continue
		}

		if _, err := io.ReadFull(rng, signByte[:]); err != nil {
			return Point{}, ErrShortRead
		}
		if signByte[0]&1 == 1 {
			y.Neg(&y)
		}

		aff := bn254.G1Affine{X: x, Y: y}
		if !aff.IsOnCurve() {
			continue
		}
		return Point{aff: aff}, nil
	}
}

// Double returns p + p.
func (p Point) Double() Point {
	return p.Add(p)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	var r bn254.G1Affine
	r.Add(&p.aff, &q.aff)
	return Point{aff: r}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Point) Neg() Point {
	var r bn254.G1Affine
	r.Neg(&p.aff)
	return Point{aff: r}
}

// ScalarMul returns s*p via full scalar multiplication. PedersenCommitter
// bypasses this in its hot path in favor of the precomputed doubling
// table (see package pedersen); this method exists for the
// doubling-table-equivalence property and for callers outside the
// committer's byte-message fast path.
func (p Point) ScalarMul(s Scalar) Point {
	var r bn254.G1Affine
	r.ScalarMultiplication(&p.aff, s.BigInt())
	return Point{aff: r}
}

// Equal reports group equality, not coordinate equality.
func (p Point) Equal(q Point) bool {
	return p.aff.Equal(&q.aff)
}

// IsOnCurve reports whether p satisfies the curve equation; the
// identity is always considered on-curve.
func (p Point) IsOnCurve() bool {
	return p.aff.IsInfinity() || p.aff.IsOnCurve()
}

// IsIdentity reports whether p is the group identity.
func (p Point) IsIdentity() bool {
	return p.aff.IsInfinity()
}

// Affine returns the affine coordinates of p, or ok=false if p is the
// identity (which has no affine representation).
func (p Point) Affine() (x, y FieldElement, ok bool) {
	if p.aff.IsInfinity() {
		return FieldElement{}, FieldElement{}, false
	}
	return FieldElement{inner: p.aff.X}, FieldElement{inner: p.aff.Y}, true
}

// Projective returns the canonicalized projective coordinates of p:
// (0, 1, 0) for the identity, (x, y, 1) otherwise.
func (p Point) Projective() (x, y, z FieldElement) {
	if p.aff.IsInfinity() {
		return Zero(), One(), Zero()
	}
	return FieldElement{inner: p.aff.X}, FieldElement{inner: p.aff.Y}, One()
}

// Jacobian returns the Jacobian representation of p. Callers that
// accumulate many points (package pedersen's Commit, most notably)
// use this to avoid renormalizing to affine after every addition.
func (p Point) Jacobian() bn254.G1Jac {
	var j bn254.G1Jac
	j.FromAffine(&p.aff)
	return j
}

// FromJacobian builds a Point from a Jacobian accumulator, normalizing
// it to affine form exactly once.
func FromJacobian(j bn254.G1Jac) Point {
	var aff bn254.G1Affine
	aff.FromJacobian(&j)
	return Point{aff: aff}
}

// ToBytesUncompressed encodes p as [tag] || x_le32 || y_le32 (65 bytes).
// The identity encodes tag=1 followed by 64 bytes of 0xFF.
func (p Point) ToBytesUncompressed() [UncompressedPointBytewidth]byte {
	var out [UncompressedPointBytewidth]byte
	if p.aff.IsInfinity() {
		out[0] = identityTag
		for i := 1; i < len(out); i++ {
			out[i] = 0xFF
		}
		return out
	}
	out[0] = affineTag
	x := FieldElement{inner: p.aff.X}.toLEBytes()
	y := FieldElement{inner: p.aff.Y}.toLEBytes()
	copy(out[1:1+FieldElementBytewidth], x[:])
	copy(out[1+FieldElementBytewidth:], y[:])
	return out
}

// FromBytesUncompressed decodes the encoding produced by
// ToBytesUncompressed, asserting the decoded point lies on the curve.
// Any trailing content after an identity tag is accepted and ignored,
// per the wire format's tolerance for non-0xFF padding.
func FromBytesUncompressed(b []byte) (Point, error) {
	if len(b) != UncompressedPointBytewidth {
		return Point{}, ErrBadEncoding
	}
	if b[0] == identityTag {
		return ZeroPoint(), nil
	}
	if b[0] != affineTag {
		return Point{}, ErrBadEncoding
	}
	var xb, yb [FieldElementBytewidth]byte
	copy(xb[:], b[1:1+FieldElementBytewidth])
	copy(yb[:], b[1+FieldElementBytewidth:])

	aff := bn254.G1Affine{
		X: fieldElementFromLEBytes(xb).inner,
		Y: fieldElementFromLEBytes(yb).inner,
	}
	if !aff.IsOnCurve() {
		return Point{}, ErrNotOnCurve
	}
	return Point{aff: aff}, nil
}

// ToBytesCompressed encodes p as [tag] || x_le32 || [y_parity] (34 bytes).
// The identity encodes tag=1 with the remaining 33 bytes zeroed.
func (p Point) ToBytesCompressed() [CompressedPointBytewidth]byte {
	var out [CompressedPointBytewidth]byte
	if p.aff.IsInfinity() {
		out[0] = identityTag
		return out
	}
	out[0] = affineTag
	x := FieldElement{inner: p.aff.X}.toLEBytes()
	copy(out[1:1+FieldElementBytewidth], x[:])
	out[CompressedPointBytewidth-1] = FieldElement{inner: p.aff.Y}.lowBit()
	return out
}

// FromBytesCompressed decodes the encoding produced by
// ToBytesCompressed, recovering y via square root and flipping its
// sign if the canonical root's parity disagrees with the stored bit.
func FromBytesCompressed(b []byte) (Point, error) {
	if len(b) != CompressedPointBytewidth {
		return Point{}, ErrBadEncoding
	}
	if b[0] == identityTag {
		return ZeroPoint(), nil
	}
	if b[0] != affineTag {
		return Point{}, ErrBadEncoding
	}
	var xb [FieldElementBytewidth]byte
	copy(xb[:], b[1:1+FieldElementBytewidth])
	wantParity := b[CompressedPointBytewidth-1] & 1

	x := fieldElementFromLEBytes(xb)
	var x2, x3, rhs, three fp.Element
	three.SetUint64(3)
	x2.Square(&x.inner)
	x3.Mul(&x2, &x.inner)
	rhs.Add(&x3, &three)

	var y fp.Element
	if y.Sqrt(&rhs) == nil {
		return Point{}, ErrBadEncoding
	}
	yElem := FieldElement{inner: y}
	if yElem.lowBit() != wantParity {
		yElem = yElem.Neg()
	}

	aff := bn254.G1Affine{X: x.inner, Y: yElem.inner}
	if !aff.IsOnCurve() {
		return Point{}, ErrNotOnCurve
	}
	return Point{aff: aff}, nil
}
