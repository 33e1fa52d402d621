// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "s3cret" {
		t.Fatal("hash must not equal the plain password")
	}

	tests := []struct {
		name     string
		plain    string
		expected bool
	}{
		{name: "matching password", plain: "s3cret", expected: true},
		{name: "wrong password", plain: "S3cret", expected: false},
		{name: "empty password", plain: "", expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := h.Verify(hash, test.plain); got != test.expected {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestHasherVerifyDummy(t *testing.T) {
	if NewHasher(bcrypt.MinCost).VerifyDummy("anything") {
		t.Error("dummy verification must never succeed")
	}
}

func TestHasherCostFallback(t *testing.T) {
	if h := NewHasher(100); h.cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost, got %d", h.cost)
	}
}

func TestHasherTooLong(t *testing.T) {
	_, err := NewHasher(bcrypt.MinCost).Hash(strings.Repeat("a", 100))
	if !IsTooLong(err) {
		t.Errorf("expected too long error, got %v", err)
	}
}
