// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hyrax

import (
	"errors"

	"github.com/hyraxvc/hyrax-commit/curve"
)

// ErrTruncatedEncoding is returned when a byte string's length is not
// a multiple of the relevant fixed element width.
var ErrTruncatedEncoding = errors.New("hyrax: byte length is not a multiple of the element width")

// SerializeCommitment concatenates each point's compressed encoding in
// row order; there is no length prefix or framing.
func SerializeCommitment(commitment []curve.Point) []byte {
	out := make([]byte, 0, len(commitment)*CompressedCurvePointBytewidth)
	for _, p := range commitment {
		enc := p.ToBytesCompressed()
		out = append(out, enc[:]...)
	}
	return out
}

// DeserializeCommitment splits b into CompressedCurvePointBytewidth-byte
// chunks and decodes each as a compressed curve point.
func DeserializeCommitment(b []byte) ([]curve.Point, error) {
	if len(b)%CompressedCurvePointBytewidth != 0 {
		return nil, ErrTruncatedEncoding
	}
	n := len(b) / CompressedCurvePointBytewidth
	points := make([]curve.Point, n)
	for i := 0; i < n; i++ {
		chunk := b[i*CompressedCurvePointBytewidth : (i+1)*CompressedCurvePointBytewidth]
		p, err := curve.FromBytesCompressed(chunk)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

// SerializeBlindings concatenates each scalar's little-endian encoding
// in row order; there is no length prefix or framing.
func SerializeBlindings(blindings []curve.Scalar) []byte {
	out := make([]byte, 0, len(blindings)*ScalarElemBytewidth)
	for _, s := range blindings {
		enc := s.Bytes()
		out = append(out, enc[:]...)
	}
	return out
}

// DeserializeBlindings splits b into ScalarElemBytewidth-byte chunks
// and decodes each as a little-endian scalar.
func DeserializeBlindings(b []byte) ([]curve.Scalar, error) {
	if len(b)%ScalarElemBytewidth != 0 {
		return nil, ErrTruncatedEncoding
	}
	n := len(b) / ScalarElemBytewidth
	scalars := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		var chunk [ScalarElemBytewidth]byte
		copy(chunk[:], b[i*ScalarElemBytewidth:(i+1)*ScalarElemBytewidth])
		scalars[i] = curve.ScalarFromBytes(chunk)
	}
	return scalars, nil
}
