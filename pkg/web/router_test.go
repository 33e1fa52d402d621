// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/community-service/internal/http/types"
	"github.com/canonical/community-service/internal/identity"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
	"github.com/canonical/community-service/pkg/community"
	"github.com/canonical/community-service/pkg/status"
)

type hostEchoAPI struct{}

func (hostEchoAPI) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/echo", func(w http.ResponseWriter, r *http.Request) {
		c := identity.CommunityFromContext(r.Context())
		if c == nil {
			httptypes.WriteError(w, types.ErrNotFound)
			return
		}
		_ = httptypes.WriteJSON(w, http.StatusOK, c)
	})
}

func fakeTenantMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if identity.HostFromContext(ctx) == "acme.io" {
			ctx = identity.WithCommunity(ctx, &types.Community{ID: "community-acme", Domain: "acme.io", Enabled: true})
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newTestRouter() http.Handler {
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	return NewRouter(
		[]string{"https://admin.example.com"},
		identity.NewMiddleware(false, tracer, monitor, logger).HTTPMiddleware,
		fakeTenantMiddleware,
		nil,
		[]API{hostEchoAPI{}},
		tracer,
		monitor,
		logger,
	)
}

func TestRouter_ResolvesTenantFromHost(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		expectStatus int
	}{
		{name: "tenant host with port", host: "ACME.io:8443", expectStatus: http.StatusOK},
		{name: "unknown host", host: "other.io", expectStatus: http.StatusNotFound},
	}

	router := newTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/echo", nil)
			req.Host = tt.host

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectStatus {
				t.Fatalf("expected status %d, got %d", tt.expectStatus, w.Code)
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
	req.Host = "acme.io"
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.example.com" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}

func TestRouter_SystemEndpointsSkipTenantResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	connErr := errors.New("connection refused")

	mockStorage := community.NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetEnabledCommunityByDomain(gomock.Any(), "acme.io").Return(nil, connErr).AnyTimes()

	mockDB := status.NewMockPingerInterface(ctrl)
	mockDB.EXPECT().Ping(gomock.Any()).Return(connErr).AnyTimes()

	router := NewRouter(
		nil,
		identity.NewMiddleware(false, tracer, monitor, logger).HTTPMiddleware,
		community.NewResolver(mockStorage, tracer, monitor, logger).HTTPMiddleware,
		[]API{status.NewAPI(map[string]status.PingerInterface{"database": mockDB}, tracer, monitor, logger)},
		[]API{hostEchoAPI{}},
		tracer,
		monitor,
		logger,
	)

	tests := []struct {
		name         string
		path         string
		expectStatus int
	}{
		{name: "liveness stays up", path: "/api/v0/status", expectStatus: http.StatusOK},
		{name: "readiness reports the dependency", path: "/api/v0/ready", expectStatus: http.StatusServiceUnavailable},
		{name: "site routes surface the storage error", path: "/echo", expectStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Host = "acme.io"

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectStatus, w.Code, w.Body.String())
			}
		})
	}
}
