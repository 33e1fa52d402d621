// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/storage"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
	"github.com/canonical/community-service/pkg/authentication"
)

type serviceMocks struct {
	storage     *MockStorageInterface
	hasher      *MockHasherInterface
	provisioner *MockProvisionerInterface
	guard       *MockGuardInterface
	issuer      *MockTokenIssuerInterface
	tx          *MockTxRunnerInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	m := &serviceMocks{
		storage:     NewMockStorageInterface(ctrl),
		hasher:      NewMockHasherInterface(ctrl),
		provisioner: NewMockProvisionerInterface(ctrl),
		guard:       NewMockGuardInterface(ctrl),
		issuer:      NewMockTokenIssuerInterface(ctrl),
		tx:          NewMockTxRunnerInterface(ctrl),
	}

	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	).AnyTimes()

	return m
}

func (m *serviceMocks) service() *Service {
	return NewService(
		m.storage,
		m.hasher,
		m.provisioner,
		m.guard,
		m.issuer,
		m.tx,
		"https://%s/admin",
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test"),
		logging.NewNoopLogger(),
	)
}

func validRequest() *Request {
	return &Request{
		Email:    "owner@acme.io",
		Password: "correct horse battery",
		Name:     "Acme",
		Domain:   "Acme.io",
	}
}

func TestService_Register(t *testing.T) {
	acme := &types.Community{ID: "community-acme", Domain: "acme.io", Enabled: true}
	closed := &types.Community{ID: "community-closed", Domain: "closed.io", Enabled: true}

	tests := []struct {
		name       string
		host       *types.Community
		setupMocks func(*serviceMocks)
		expectErr  error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().CheckRegistration(gomock.Any(), nil).Return(nil)
				m.storage.EXPECT().GetCommunityByDomain(gomock.Any(), "acme.io").Return(nil, types.ErrNotFound)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.io").Return(nil, types.ErrNotFound)
				m.hasher.EXPECT().Hash("correct horse battery").Return("hash", nil)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.PasswordHash != "hash" {
							t.Errorf("expected hashed password, got %q", u.PasswordHash)
						}
						u.ID = "user-1"
						return u, nil
					},
				)
				m.provisioner.EXPECT().Provision(gomock.Any(), gomock.Any(), "acme.io", "Acme").DoAndReturn(
					func(_ context.Context, owner *types.User, _, _ string) (*types.Community, error) {
						owner.CommunityID = &acme.ID
						return acme, nil
					},
				)
				m.issuer.EXPECT().IssueToken(gomock.Any(), gomock.Any()).Return(&authentication.Token{Raw: "jwt", ExpiresAt: time.Now().Add(time.Hour)}, nil)
			},
		},
		{
			name: "registration closed on the host community",
			host: closed,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().CheckRegistration(gomock.Any(), closed).Return(types.ErrForbidden)
			},
			expectErr: types.ErrForbidden,
		},
		{
			name: "domain taken",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().CheckRegistration(gomock.Any(), nil).Return(nil)
				m.storage.EXPECT().GetCommunityByDomain(gomock.Any(), "acme.io").Return(acme, nil)
			},
			expectErr: types.ErrConflict,
		},
		{
			name: "email taken",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().CheckRegistration(gomock.Any(), nil).Return(nil)
				m.storage.EXPECT().GetCommunityByDomain(gomock.Any(), "acme.io").Return(nil, types.ErrNotFound)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.io").Return(&types.User{ID: "user-0"}, nil)
			},
			expectErr: types.ErrConflict,
		},
		{
			name: "email registered concurrently",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().CheckRegistration(gomock.Any(), nil).Return(nil)
				m.storage.EXPECT().GetCommunityByDomain(gomock.Any(), "acme.io").Return(nil, types.ErrNotFound)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.io").Return(nil, types.ErrNotFound)
				m.hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectErr: types.ErrConflict,
		},
		{
			name: "provisioning failure",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().CheckRegistration(gomock.Any(), nil).Return(nil)
				m.storage.EXPECT().GetCommunityByDomain(gomock.Any(), "acme.io").Return(nil, types.ErrNotFound)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.io").Return(nil, types.ErrNotFound)
				m.hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&types.User{ID: "user-1"}, nil)
				m.provisioner.EXPECT().Provision(gomock.Any(), gomock.Any(), "acme.io", "Acme").
					Return(nil, errors.Join(types.ErrProvisionFailed, storage.ErrDuplicateKey))
			},
			expectErr: types.ErrProvisionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMocks(m)

			result, err := m.service().Register(context.Background(), tt.host, validRequest())

			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected %v, got %v", tt.expectErr, err)
				}
				if result != nil {
					t.Fatalf("expected no result, got %+v", result)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Token != "jwt" {
				t.Errorf("expected token, got %q", result.Token)
			}

			if result.RedirectURL != "https://acme.io/admin" {
				t.Errorf("unexpected redirect %q", result.RedirectURL)
			}

			if !result.Principal.BoundTo(acme.ID) {
				t.Errorf("expected principal bound to %s", acme.ID)
			}
		})
	}
}

func TestService_RegisterHashFailures(t *testing.T) {
	entropy := errors.New("entropy source exhausted")

	tests := []struct {
		name         string
		hashErr      error
		expectErr    error
		isValidation bool
	}{
		{
			name:         "password over the bcrypt limit",
			hashErr:      fmt.Errorf("failed to hash password: %w", bcrypt.ErrPasswordTooLong),
			expectErr:    types.ErrValidation,
			isValidation: true,
		},
		{
			name:      "hasher failure is internal",
			hashErr:   entropy,
			expectErr: entropy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.guard.EXPECT().CheckRegistration(gomock.Any(), nil).Return(nil)
			m.storage.EXPECT().GetCommunityByDomain(gomock.Any(), "acme.io").Return(nil, types.ErrNotFound)
			m.storage.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.io").Return(nil, types.ErrNotFound)
			m.hasher.EXPECT().Hash(gomock.Any()).Return("", tt.hashErr)

			_, err := m.service().Register(context.Background(), nil, validRequest())
			if !errors.Is(err, tt.expectErr) {
				t.Fatalf("expected %v, got %v", tt.expectErr, err)
			}

			if errors.Is(err, types.ErrValidation) != tt.isValidation {
				t.Fatalf("unexpected validation classification for %v", err)
			}
		})
	}
}
