// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hyrax

import (
	"errors"
	"io"

	"golang.org/x/crypto/chacha20"

	"github.com/hyraxvc/hyrax-commit/curve"
	"github.com/hyraxvc/hyrax-commit/pedersen"
)

// ErrInputSizeInvalid is returned when the input's length is not a
// power of two, or is not a multiple of the committer's row width.
var ErrInputSizeInvalid = errors.New("hyrax: input length must be a power of two and a multiple of the row width")

// Result is the output of a matrix commitment: a commitment point and
// a secret blinding scalar per row, in row order.
type Result struct {
	Commitment []curve.Point
	Blindings  []curve.Scalar
}

// chachaStream turns a seeded ChaCha20 cipher into an io.Reader that
// yields raw keystream bytes, the Go equivalent of Rust's
// ChaCha20Rng::from_seed: XOR'ing the keystream against an all-zero
// buffer returns the keystream itself.
type chachaStream struct {
	cipher *chacha20.Cipher
}

func newChachaStream(seed [32]byte) (*chachaStream, error) {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &chachaStream{cipher: c}, nil
}

func (s *chachaStream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.cipher.XORKeyStream(p, p)
	return len(p), nil
}

var _ io.Reader = (*chachaStream)(nil)

// MatrixCommit reshapes data into n_rows = len(data)/N rows of width N
// (N being committer's row width) and commits each row independently,
// drawing a fresh blinding scalar per row from a ChaCha20 CSPRNG seeded
// by seed. For a fixed data and seed, the result is bit-identical
// across runs and platforms: the blinding factors are drawn in strict
// row order before any row is committed, so nothing about
// parallelizing the commit step itself can perturb the output.
func MatrixCommit(data []byte, committer *pedersen.Committer, seed [32]byte) (Result, error) {
	n := len(committer.Generators)
	if n == 0 || len(data) == 0 || len(data)&(len(data)-1) != 0 || len(data)%n != 0 {
		return Result{}, ErrInputSizeInvalid
	}
	nRows := len(data) / n

	stream, err := newChachaStream(seed)
	if err != nil {
		return Result{}, err
	}

	blindings := make([]curve.Scalar, nRows)
	for r := 0; r < nRows; r++ {
		b, err := curve.RandomScalar(stream)
		if err != nil {
			return Result{}, err
		}
		blindings[r] = b
	}

	commitment := make([]curve.Point, nRows)
	for r := 0; r < nRows; r++ {
		row := data[r*n : (r+1)*n]
		c, err := committer.Commit(row, blindings[r])
		if err != nil {
			return Result{}, err
		}
		commitment[r] = c
	}

	return Result{Commitment: commitment, Blindings: blindings}, nil
}
