// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

func TestNormalizeHost(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "acme.io", expected: "acme.io"},
		{input: "ACME.io", expected: "acme.io"},
		{input: " acme.io:8443 ", expected: "acme.io"},
		{input: "acme.io.", expected: "acme.io"},
		{input: "[::1]:8080", expected: "::1"},
		{input: "", expected: ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := NormalizeHost(test.input); got != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		host           string
		forwarded      string
		trustForwarded bool
		expected       string
	}{
		{name: "request host", host: "TenantA.com:80", expected: "tenanta.com"},
		{name: "forwarded host ignored by default", host: "internal.svc", forwarded: "tenanta.com", expected: "internal.svc"},
		{name: "forwarded host trusted", host: "internal.svc", forwarded: "TenantA.com, proxy.local", trustForwarded: true, expected: "tenanta.com"},
		{name: "trusted but absent", host: "tenantb.com", trustForwarded: true, expected: "tenantb.com"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := NewMiddleware(test.trustForwarded, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			var got string
			handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = HostFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Host = test.host
			if test.forwarded != "" {
				req.Header.Set(ForwardedHostHeader, test.forwarded)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != test.expected {
				t.Errorf("expected host %q, got %q", test.expected, got)
			}
		})
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	if CommunityFromContext(ctx) != nil || PrincipalFromContext(ctx) != nil || HostFromContext(ctx) != "" {
		t.Fatal("empty context returned values")
	}

	c := &types.Community{ID: "c1"}
	p := &types.Principal{ID: "u1"}

	ctx = WithPrincipal(WithCommunity(WithHost(ctx, "acme.io"), c), p)

	if CommunityFromContext(ctx) != c {
		t.Error("community not carried")
	}

	if PrincipalFromContext(ctx) != p {
		t.Error("principal not carried")
	}

	if HostFromContext(ctx) != "acme.io" {
		t.Error("host not carried")
	}
}
