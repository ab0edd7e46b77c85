// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package generators

import "testing"

const samplePublicString = "accountable magic something something"

func TestDeriveDeterministic(t *testing.T) {
	s1, err := Derive(4, samplePublicString)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	s2, err := Derive(4, samplePublicString)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	if !s1.Blinding.Equal(s2.Blinding) {
		t.Fatal("blinding generator differs across independent derivations")
	}
	if len(s1.Messages) != len(s2.Messages) {
		t.Fatal("message generator count differs")
	}
	for i := range s1.Messages {
		if !s1.Messages[i].Equal(s2.Messages[i]) {
			t.Fatalf("message generator %d differs across independent derivations", i)
		}
	}
}

func TestDeriveShape(t *testing.T) {
	set, err := Derive(6, samplePublicString)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if len(set.Messages) != 6 {
		t.Fatalf("expected 6 message generators, got %d", len(set.Messages))
	}
	if set.Blinding.IsIdentity() {
		t.Fatal("blinding generator should not be the identity")
	}
	for i, g := range set.Messages {
		if g.IsIdentity() {
			t.Fatalf("message generator %d should not be the identity", i)
		}
		if !g.IsOnCurve() {
			t.Fatalf("message generator %d is not on curve", i)
		}
	}
}

func TestDerivePublicStringChangesGenerators(t *testing.T) {
	a, err := Derive(2, samplePublicString)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	b, err := Derive(2, "a different public string of sufficient length")
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if a.Blinding.Equal(b.Blinding) {
		t.Fatal("different public strings should (overwhelmingly) yield different blinding generators")
	}
}

func TestDeriveRejectsShortPublicString(t *testing.T) {
	if _, err := Derive(1, "too short"); err != ErrPublicStringTooShort {
		t.Fatalf("expected ErrPublicStringTooShort, got %v", err)
	}
}

func TestDeriveOnlyUsesFirst32Bytes(t *testing.T) {
	base := samplePublicString + "____padding_that_should_be_ignored"
	longA, err := Derive(2, base)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	longB, err := Derive(2, samplePublicString+"____totally_different_suffix_here")
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if !longA.Blinding.Equal(longB.Blinding) {
		t.Fatal("bytes past the 32nd should not affect the derived generators")
	}
}
