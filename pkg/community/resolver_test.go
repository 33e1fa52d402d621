// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package community

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/community-service/internal/identity"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

func newTestResolver(storage StorageInterface) *Resolver {
	return NewResolver(storage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestResolver_Resolve(t *testing.T) {
	acme := &types.Community{ID: "community-acme", Domain: "acme.io", Enabled: true}

	tests := []struct {
		name       string
		host       string
		setupMocks func(*MockStorageInterface)
		expected   *types.Community
		expectErr  error
	}{
		{
			name: "exact domain",
			host: "acme.io",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEnabledCommunityByDomain(gomock.Any(), "acme.io").Return(acme, nil)
			},
			expected: acme,
		},
		{
			name: "port is stripped",
			host: "acme.io:8080",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEnabledCommunityByDomain(gomock.Any(), "acme.io").Return(acme, nil)
			},
			expected: acme,
		},
		{
			name: "host is case-insensitive",
			host: "  ACME.io ",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEnabledCommunityByDomain(gomock.Any(), "acme.io").Return(acme, nil)
			},
			expected: acme,
		},
		{
			name: "subdomain is a different domain",
			host: "www.acme.io",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEnabledCommunityByDomain(gomock.Any(), "www.acme.io").Return(nil, types.ErrNotFound)
			},
			expectErr: types.ErrNotFound,
		},
		{
			name: "disabled community",
			host: "disabled.io",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEnabledCommunityByDomain(gomock.Any(), "disabled.io").Return(nil, types.ErrNotFound)
			},
			expectErr: types.ErrNotFound,
		},
		{
			name:       "empty host never reaches storage",
			host:       "",
			setupMocks: func(*MockStorageInterface) {},
			expectErr:  types.ErrNotFound,
		},
		{
			name: "storage failure",
			host: "acme.io",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEnabledCommunityByDomain(gomock.Any(), "acme.io").Return(nil, errors.New("connection reset"))
			},
			expectErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := NewMockStorageInterface(ctrl)
			tt.setupMocks(storage)

			c, err := newTestResolver(storage).Resolve(context.Background(), tt.host)

			if tt.expectErr != nil {
				if err == nil || err.Error() != tt.expectErr.Error() {
					t.Fatalf("expected error %v, got %v", tt.expectErr, err)
				}
				if c != nil {
					t.Fatalf("expected no community, got %v", c)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if c.ID != tt.expected.ID {
				t.Errorf("expected community %s, got %s", tt.expected.ID, c.ID)
			}
		})
	}
}

func TestResolver_HTTPMiddleware(t *testing.T) {
	acme := &types.Community{ID: "community-acme", Domain: "acme.io", Enabled: true}

	tests := []struct {
		name            string
		host            string
		setupMocks      func(*MockStorageInterface)
		expectStatus    int
		expectCommunity bool
	}{
		{
			name: "community attached",
			host: "acme.io",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEnabledCommunityByDomain(gomock.Any(), "acme.io").Return(acme, nil)
			},
			expectStatus:    http.StatusOK,
			expectCommunity: true,
		},
		{
			name: "unknown host continues without a community",
			host: "platform.example.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEnabledCommunityByDomain(gomock.Any(), "platform.example.com").Return(nil, types.ErrNotFound)
			},
			expectStatus: http.StatusOK,
		},
		{
			name: "storage failure",
			host: "acme.io",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEnabledCommunityByDomain(gomock.Any(), "acme.io").Return(nil, errors.New("boom"))
			},
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := NewMockStorageInterface(ctrl)
			tt.setupMocks(storage)

			var got *types.Community
			handler := newTestResolver(storage).HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = identity.CommunityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v0/site", nil)
			req = req.WithContext(identity.WithHost(req.Context(), tt.host))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.expectStatus {
				t.Fatalf("expected status %d, got %d", tt.expectStatus, w.Code)
			}

			if (got != nil) != tt.expectCommunity {
				t.Fatalf("expected community attached: %v, got %v", tt.expectCommunity, got)
			}
		})
	}
}
