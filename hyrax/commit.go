// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hyrax

import "github.com/hyraxvc/hyrax-commit/pedersen"

// ComputeCommitment is the library entry point higher layers (CLI
// wrappers, benchmark drivers, and the rest of the prover pipeline) are
// expected to call: it instantiates the committer from the fixed
// PublicString and NumCols, commits to data row-by-row under seed, and
// serializes both outputs. Building a fresh committer per call repeats
// the generator-derivation and doubling-table precomputation; callers
// that commit repeatedly should build a pedersen.Committer once with
// NewDefaultCommitter and call MatrixCommit directly instead.
func ComputeCommitment(data []byte, seed [32]byte) (commitmentBytes, blindingBytes []byte, err error) {
	committer, err := NewDefaultCommitter()
	if err != nil {
		return nil, nil, err
	}

	result, err := MatrixCommit(data, committer, seed)
	if err != nil {
		return nil, nil, err
	}

	return SerializeCommitment(result.Commitment), SerializeBlindings(result.Blindings), nil
}

// NewDefaultCommitter builds the committer every commit site and
// verifier must agree on: NumCols message generators derived from
// PublicString.
func NewDefaultCommitter() (*pedersen.Committer, error) {
	return pedersen.NewCommitter(NumCols, PublicString)
}
