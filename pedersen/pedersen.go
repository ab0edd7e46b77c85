// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pedersen implements a Pedersen commitment to fixed-width
// unsigned byte messages, accelerated by precomputed bit-doublings of
// each generator.
package pedersen

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/hyraxvc/hyrax-commit/curve"
	"github.com/hyraxvc/hyrax-commit/generators"
)

// messageBitwidth is the bit width of each message element; the core
// commits to unsigned bytes, so each element contributes at most 8
// point additions rather than a full scalar multiplication.
const messageBitwidth = 8

// ErrMessageTooLong is returned by Commit when the message is longer
// than the committer's generator set.
var ErrMessageTooLong = errors.New("pedersen: message longer than generator set")

// Committer commits byte vectors of length up to the width of its
// generator set. It is immutable after construction and safe to share
// by reference across goroutines for read-only use: Commit never
// mutates the committer.
type Committer struct {
	// Blinding is the "H" generator that Commit multiplies by the
	// blinding factor.
	Blinding curve.Point
	// Generators is the ordered "G_i" message generators.
	Generators []curve.Point
	// Doublings[i] holds [G_i, 2*G_i, 4*G_i, ..., 128*G_i], the
	// precomputed doubling table for Generators[i]. Exposed (rather
	// than hidden behind an opaque handle) so that a future split of
	// the committer's generator range can slice this table instead of
	// recomputing it.
	Doublings [][messageBitwidth]curve.Point
}

// NewCommitter derives numGenerators+1 generators from publicString and
// precomputes, for each message generator, the 8-entry doubling table
// used by Commit. Precomputation cost is amortized across every
// commitment later made with this committer.
func NewCommitter(numGenerators int, publicString string) (*Committer, error) {
	set, err := generators.Derive(numGenerators, publicString)
	if err != nil {
		return nil, err
	}

	doublings := make([][messageBitwidth]curve.Point, len(set.Messages))
	for i, g := range set.Messages {
		doublings[i] = PrecomputeDoublings(g)
	}

	return &Committer{
		Blinding:   set.Blinding,
		Generators: set.Messages,
		Doublings:  doublings,
	}, nil
}

// PrecomputeDoublings returns [base, 2*base, 4*base, ..., 128*base],
// the table Commit consults to multiply a single byte value by base in
// at most messageBitwidth point additions.
func PrecomputeDoublings(base curve.Point) [messageBitwidth]curve.Point {
	var table [messageBitwidth]curve.Point
	current := base
	for i := 0; i < messageBitwidth; i++ {
		table[i] = current
		current = current.Double()
	}
	return table
}

// BinaryDecompositionLE returns the little-endian bit decomposition of
// an unsigned byte: result[i] is true iff bit i of value is set.
func BinaryDecompositionLE(value uint8) [messageBitwidth]bool {
	var bits [messageBitwidth]bool
	for i := 0; i < messageBitwidth; i++ {
		bits[i] = value&(1<<uint(i)) != 0
	}
	return bits
}

// Commit computes C = sum(value_i * G_i) + blinding * H, where each
// value_i in message is interpreted as a byte-valued scalar. The
// unblinded sum is evaluated via the little-endian bit decomposition of
// each byte against the precomputed doubling table rather than a full
// scalar multiplication, which is mathematically identical modulo r
// provided 255 < r (true for BN254's scalar field).
//
// The accumulation uses a local Jacobian accumulator, mirroring the
// efficiency rationale of the precompile this was adapted from: an
// affine Add per term would be correct but slower than accumulating in
// Jacobian coordinates and normalizing once at the end.
func (c *Committer) Commit(message []byte, blinding curve.Scalar) (curve.Point, error) {
	if len(message) > len(c.Generators) {
		return curve.Point{}, ErrMessageTooLong
	}

	var acc bn254.G1Jac
	for i, value := range message {
		bits := BinaryDecompositionLE(value)
		table := c.Doublings[i]
		for bit, set := range bits {
			if !set {
				continue
			}
			termJac := table[bit].Jacobian()
			acc.AddAssign(&termJac)
		}
	}

	blindingTerm := c.Blinding.ScalarMul(blinding)
	blindingJac := blindingTerm.Jacobian()
	acc.AddAssign(&blindingJac)

	return curve.FromJacobian(acc), nil
}
