// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"strings"
	"testing"
)

func TestSlugBase(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{name: "Acme", expected: "acme"},
		{name: "  Acme  Widgets, Inc. ", expected: "acme-widgets-inc"},
		{name: "Café Crème", expected: "cafe-creme"},
		{name: "!!!", expected: "community"},
		{name: strings.Repeat("a", 80), expected: strings.Repeat("a", maxSlugBaseLen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slugBase(tt.name); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNewSlugIsUnique(t *testing.T) {
	a, err := newSlug("Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := newSlug("Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a == b {
		t.Fatalf("expected distinct slugs, got %s twice", a)
	}

	if len(a) != len("acme-")+slugSuffixLength {
		t.Errorf("unexpected slug length for %s", a)
	}
}

func TestDefaultPagesHaveUniqueEndPoints(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range defaultPages {
		if seen[p.EndPoint] {
			t.Fatalf("duplicate end point %s", p.EndPoint)
		}
		seen[p.EndPoint] = true
	}

	if len(defaultPages) != 6 {
		t.Fatalf("expected 6 default pages, got %d", len(defaultPages))
	}
}

func TestDefaultsValidate(t *testing.T) {
	tests := []struct {
		name      string
		defaults  Defaults
		expectErr bool
	}{
		{name: "package defaults", defaults: NewDefaults("", "", "")},
		{name: "lower-case input", defaults: NewDefaults("fr-FR", "eur", "fr")},
		{name: "bad currency", defaults: NewDefaults("en", "DOLLARS", "US"), expectErr: true},
		{name: "bad country", defaults: NewDefaults("en", "USD", "001"), expectErr: true},
		{name: "bad locale", defaults: NewDefaults("not a locale", "USD", "US"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.defaults.Validate()
			if (err != nil) != tt.expectErr {
				t.Fatalf("expected error: %v, got %v", tt.expectErr, err)
			}
		})
	}
}
