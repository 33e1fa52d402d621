// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/community-service/internal/identity"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

func newTestMux(ctrl *gomock.Controller, authenticator AuthenticatorInterface, verifier TokenVerifierInterface) *chi.Mux {
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	mux := chi.NewMux()
	mux.Use(identity.NewMiddleware(false, tracer, monitor, logger).HTTPMiddleware)

	NewAPI(authenticator, NewMiddleware(verifier, tracer, monitor, logger), tracer, monitor, logger).RegisterEndpoints(mux)

	return mux
}

func TestAPI_Login(t *testing.T) {
	user := &types.User{ID: "user-1", Email: "owner@acme.io"}
	token := &Token{Raw: "signed", ExpiresAt: time.Now().Add(24 * time.Hour)}

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockAuthenticatorInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "success",
			body: `{"email":"owner@acme.io","password":"s3cret"}`,
			setupMocks: func(a *MockAuthenticatorInterface) {
				a.EXPECT().Login(gomock.Any(), "acme.io", "owner@acme.io", "s3cret").Return(user, token, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			body:           `{"email":`,
			setupMocks:     func(*MockAuthenticatorInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_request",
		},
		{
			name:           "invalid email",
			body:           `{"email":"not-an-email","password":"s3cret"}`,
			setupMocks:     func(*MockAuthenticatorInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_request",
		},
		{
			name: "wrong credentials",
			body: `{"email":"owner@acme.io","password":"nope"}`,
			setupMocks: func(a *MockAuthenticatorInterface) {
				a.EXPECT().Login(gomock.Any(), "acme.io", "owner@acme.io", "nope").Return(nil, nil, types.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "invalid_credentials",
		},
		{
			name: "bound to another tenant",
			body: `{"email":"owner@acme.io","password":"s3cret"}`,
			setupMocks: func(a *MockAuthenticatorInterface) {
				a.EXPECT().Login(gomock.Any(), "acme.io", "owner@acme.io", "s3cret").Return(nil, nil, types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "forbidden",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuthenticator := NewMockAuthenticatorInterface(ctrl)
			test.setupMocks(mockAuthenticator)

			mux := newTestMux(ctrl, mockAuthenticator, NewMockTokenVerifierInterface(ctrl))

			req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/login", bytes.NewBufferString(test.body))
			req.Host = "ACME.io:443"
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, rr.Code, rr.Body.String())
			}

			var body map[string]any
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}

			if test.expectedCode != "" {
				if body["code"] != test.expectedCode {
					t.Errorf("expected code %s, got %v", test.expectedCode, body["code"])
				}
				return
			}

			if body["token"] != "signed" {
				t.Errorf("expected token in response, got %v", body)
			}
		})
	}
}

func TestAPI_LogoutAndMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	principal := &types.Principal{ID: "user-1", TokenID: "jti-1"}

	mockAuthenticator := NewMockAuthenticatorInterface(ctrl)
	mockVerifier := NewMockTokenVerifierInterface(ctrl)

	mockVerifier.EXPECT().VerifyToken(gomock.Any(), "valid").Return(principal, nil).Times(2)
	mockAuthenticator.EXPECT().GetUser(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", Email: "owner@acme.io"}, nil)
	mockAuthenticator.EXPECT().RevokePrincipal(gomock.Any(), principal).Return(nil)

	mux := newTestMux(ctrl, mockAuthenticator, mockVerifier)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/auth/me", nil)
	req.Header.Set("Authorization", "Bearer valid")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("me: expected status 200, got %d", rr.Code)
	}

	if bytes.Contains(rr.Body.Bytes(), []byte("password")) {
		t.Errorf("me leaked password hash: %s", rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v0/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer valid")
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("logout: expected status 204, got %d", rr.Code)
	}
}
