// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"testing"
)

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewSealer("server-secret")
	if err != nil {
		t.Fatalf("NewSealer error: %v", err)
	}

	sealed, err := s.Seal("JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if sealed == "JBSWY3DPEHPK3PXP" {
		t.Fatal("sealed value must differ from plaintext")
	}

	got, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if got != "JBSWY3DPEHPK3PXP" {
		t.Fatalf("Open = %q", got)
	}
}

func TestSealer_RandomNonce(t *testing.T) {
	s, _ := NewSealer("server-secret")

	a, _ := s.Seal("x")
	b, _ := s.Seal("x")
	if a == b {
		t.Fatal("expected distinct ciphertexts for the same plaintext")
	}
}

func TestSealer_OtherKeyFails(t *testing.T) {
	s1, _ := NewSealer("secret-one")
	s2, _ := NewSealer("secret-two")

	sealed, _ := s1.Seal("x")
	if _, err := s2.Open(sealed); !errors.Is(err, ErrWrongKey) {
		t.Fatalf("expected ErrWrongKey, got %v", err)
	}
}

func TestSealer_Tampered(t *testing.T) {
	s, _ := NewSealer("secret")

	for _, in := range []string{"", "short", "!!!"} {
		if _, err := s.Open(in); !errors.Is(err, ErrWrongKey) {
			t.Fatalf("Open(%q) = %v, want ErrWrongKey", in, err)
		}
	}
}

func TestNewSealer_EmptySecret(t *testing.T) {
	if _, err := NewSealer(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
