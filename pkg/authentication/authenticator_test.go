// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

type authMocks struct {
	storage  *MockStorageInterface
	hasher   *MockHasherInterface
	denylist *MockDenylistInterface
	guard    *MockGuardInterface
}

func newAuthMocks(ctrl *gomock.Controller) *authMocks {
	return &authMocks{
		storage:  NewMockStorageInterface(ctrl),
		hasher:   NewMockHasherInterface(ctrl),
		denylist: NewMockDenylistInterface(ctrl),
		guard:    NewMockGuardInterface(ctrl),
	}
}

func (m *authMocks) authenticator(secret string) *Authenticator {
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	return NewAuthenticator(
		m.storage,
		m.hasher,
		NewIssuer(secret, testIssuer, DefaultTokenLifetime),
		NewJWTVerifier(secret, testIssuer, m.denylist, tracer, monitor, logger),
		m.denylist,
		m.guard,
		tracer,
		monitor,
		logger,
	)
}

func TestAuthenticator_Authenticate(t *testing.T) {
	communityID := "community-a"
	user := &types.User{ID: "user-1", Email: "Owner@Acme.io", PasswordHash: "hash", CommunityID: &communityID}

	tests := []struct {
		name       string
		email      string
		password   string
		secret     string
		setupMocks func(*authMocks)
		expectErr  error
	}{
		{
			name:     "valid credentials",
			email:    "owner@acme.io",
			password: "s3cret",
			secret:   testSecret,
			setupMocks: func(m *authMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.io").Return(user, nil)
				m.hasher.EXPECT().Verify("hash", "s3cret").Return(true)
			},
		},
		{
			name:     "unknown email still burns a comparison",
			email:    "nobody@acme.io",
			password: "s3cret",
			secret:   testSecret,
			setupMocks: func(m *authMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "nobody@acme.io").Return(nil, types.ErrNotFound)
				m.hasher.EXPECT().VerifyDummy("s3cret").Return(false)
			},
			expectErr: types.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "owner@acme.io",
			password: "wrong",
			secret:   testSecret,
			setupMocks: func(m *authMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.io").Return(user, nil)
				m.hasher.EXPECT().Verify("hash", "wrong").Return(false)
			},
			expectErr: types.ErrInvalidCredentials,
		},
		{
			name:     "missing secret",
			email:    "owner@acme.io",
			password: "s3cret",
			secret:   "",
			setupMocks: func(m *authMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.io").Return(user, nil)
				m.hasher.EXPECT().Verify("hash", "s3cret").Return(true)
			},
			expectErr: types.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newAuthMocks(ctrl)
			test.setupMocks(mocks)

			principal, token, err := mocks.authenticator(test.secret).Authenticate(context.Background(), test.email, test.password)

			if test.expectErr != nil {
				if !errors.Is(err, test.expectErr) {
					t.Fatalf("expected error %v, got %v", test.expectErr, err)
				}
				if token != nil {
					t.Error("no token must be issued on failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if principal.ID != user.ID || token.Claims.Subject != user.ID || token.Claims.CommunityID != communityID {
				t.Errorf("unexpected result: %+v %+v", principal, token.Claims)
			}

			if d := time.Until(token.ExpiresAt); d < 23*time.Hour || d > 24*time.Hour {
				t.Errorf("expected a 24h token, expires in %s", d)
			}
		})
	}
}

func TestAuthenticator_Login(t *testing.T) {
	communityA := "community-a"
	user := &types.User{ID: "user-1", Email: "owner@tenanta.com", PasswordHash: "hash", CommunityID: &communityA}

	tests := []struct {
		name       string
		host       string
		setupMocks func(*authMocks)
		expectErr  error
	}{
		{
			name: "guard allows",
			host: "tenanta.com",
			setupMocks: func(m *authMocks) {
				m.guard.EXPECT().CheckLogin(gomock.Any(), "tenanta.com", user).Return(nil)
			},
		},
		{
			name: "guard denies cross tenant login",
			host: "tenantb.com",
			setupMocks: func(m *authMocks) {
				m.guard.EXPECT().CheckLogin(gomock.Any(), "tenantb.com", user).Return(types.ErrForbidden)
			},
			expectErr: types.ErrForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newAuthMocks(ctrl)
			mocks.storage.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
			mocks.hasher.EXPECT().Verify("hash", "s3cret").Return(true)
			test.setupMocks(mocks)

			_, token, err := mocks.authenticator(testSecret).Login(context.Background(), test.host, user.Email, "s3cret")

			if !errors.Is(err, test.expectErr) {
				t.Fatalf("expected error %v, got %v", test.expectErr, err)
			}

			if (token == nil) != (test.expectErr != nil) {
				t.Errorf("unexpected token presence: %v", token)
			}
		})
	}
}

func TestAuthenticator_LoginBadCredentialsSkipsGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newAuthMocks(ctrl)
	mocks.storage.EXPECT().GetUserByEmail(gomock.Any(), "x@acme.io").Return(nil, types.ErrNotFound)
	mocks.hasher.EXPECT().VerifyDummy("pw").Return(false)

	if _, _, err := mocks.authenticator(testSecret).Login(context.Background(), "acme.io", "x@acme.io", "pw"); !errors.Is(err, types.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials, got %v", err)
	}
}

func TestAuthenticator_RevokeThenValidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newAuthMocks(ctrl)
	a := mocks.authenticator(testSecret)
	ctx := context.Background()

	token, err := a.IssueToken(ctx, &types.User{ID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gomock.InOrder(
		mocks.denylist.EXPECT().IsRevoked(gomock.Any(), token.Claims.ID).Return(false, nil),
		mocks.denylist.EXPECT().Revoke(gomock.Any(), token.Claims.ID, gomock.Any()).Return(nil).Times(2),
		mocks.denylist.EXPECT().IsRevoked(gomock.Any(), token.Claims.ID).Return(true, nil),
	)

	if _, err := a.ValidateToken(ctx, token.Raw); err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := a.Revoke(ctx, token.Raw); err != nil {
			t.Fatalf("revoke %d failed: %v", i, err)
		}
	}

	if _, err := a.ValidateToken(ctx, token.Raw); !errors.Is(err, types.ErrRevoked) {
		t.Errorf("expected revoked, got %v", err)
	}
}

func TestAuthenticator_RevokeExpiredIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newAuthMocks(ctrl)
	a := mocks.authenticator(testSecret)

	expired, _ := issuerAt(time.Now().Add(-48*time.Hour)).Issue(&types.User{ID: "user-1"})

	if err := a.Revoke(context.Background(), expired.Raw); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := a.Revoke(context.Background(), "garbage"); !errors.Is(err, types.ErrMalformedToken) {
		t.Errorf("expected malformed token, got %v", err)
	}
}

func TestAuthenticator_RevokePrincipalRequiresTokenID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newAuthMocks(ctrl).authenticator(testSecret)

	if err := a.RevokePrincipal(context.Background(), nil); !errors.Is(err, types.ErrMalformedToken) {
		t.Errorf("expected malformed token, got %v", err)
	}
}
