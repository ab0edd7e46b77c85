// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hyrax implements the Hyrax row-wise matrix commitment: it
// reshapes a flat byte vector into rows of fixed width, commits each
// row independently under a freshly seeded blinding factor, and
// (de)serializes the resulting commitment and blinding-factor vectors
// to fixed-width byte strings.
package hyrax

import "github.com/hyraxvc/hyrax-commit/curve"

// LogNumCols is log2 of the row width used throughout this core; the
// motivating application reshapes a 128x1024 normalized iris image
// (2^17 bytes) into NumCols-wide rows.
const LogNumCols = 9

// NumCols is the fixed row width N: every PedersenCommitter this
// package builds has exactly this many message generators.
const NumCols = 1 << LogNumCols

// PublicString is the fixed domain-separation tag generators are
// derived from. Changing it changes the generator set and invalidates
// every commitment made under the old one.
const PublicString = "Modulus <3 Worldcoin: ZKML Self-Custody Edition"

// Wire-format byte widths, re-exported from package curve for callers
// that only import package hyrax.
const (
	UncompressedCurvePointBytewidth = curve.UncompressedPointBytewidth
	CompressedCurvePointBytewidth   = curve.CompressedPointBytewidth
	ScalarElemBytewidth             = curve.ScalarBytewidth
)
