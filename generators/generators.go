// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package generators derives the deterministic generator set a
// PedersenCommitter is built on from a public domain-separation string.
package generators

import (
	"errors"

	"golang.org/x/crypto/sha3"

	"github.com/hyraxvc/hyrax-commit/curve"
)

// MinPublicStringLen is the minimum byte length a public string must
// have; only its first 32 bytes are used, so longer strings add no
// entropy, but shorter ones are rejected outright rather than silently
// zero-padded.
const MinPublicStringLen = 32

// ErrPublicStringTooShort is returned when the supplied public string
// is shorter than MinPublicStringLen bytes.
var ErrPublicStringTooShort = errors.New("generators: public string must be at least 32 bytes")

// Set is the ordered sequence (H, G_0, ..., G_{N-1}) of N+1 distinct
// curve points derived deterministically from a public string. H is
// the blinding generator; Messages holds the N message generators.
type Set struct {
	Blinding curve.Point
	Messages []curve.Point
}

// Derive seeds a SHAKE256 XOF with the first 32 bytes of publicString
// and draws numMessageGenerators+1 points from curve.RandomPoint fed by
// that XOF stream, treating it as a CSPRNG. The first draw is the
// blinding generator; the remaining draws are the message generators.
//
// Determinism: for a fixed publicString and numMessageGenerators, two
// independent calls yield pointwise-equal results across processes,
// machines, and invocations, because SHAKE256 and the rejection-sampling
// RandomPoint routine are both deterministic functions of their input
// bytes.
func Derive(numMessageGenerators int, publicString string) (Set, error) {
	if len(publicString) < MinPublicStringLen {
		return Set{}, ErrPublicStringTooShort
	}

	xof := sha3.NewShake256()
	// Only the first 32 bytes of the public string are used; it is a
	// domain-separation tag, not a source of additional entropy.
	xof.Write([]byte(publicString)[:MinPublicStringLen])

	all := make([]curve.Point, numMessageGenerators+1)
	for i := range all {
		p, err := curve.RandomPoint(xof)
		if err != nil {
			return Set{}, err
		}
		all[i] = p
	}

	return Set{Blinding: all[0], Messages: all[1:]}, nil
}
