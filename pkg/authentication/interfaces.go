// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	"github.com/canonical/community-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_interfaces.go -source=./interfaces.go

type TokenVerifierInterface interface {
	// VerifyToken validates a raw session token and returns the caller it identifies
	VerifyToken(ctx context.Context, rawToken string) (*types.Principal, error)
}

type AuthenticatorInterface interface {
	Authenticate(ctx context.Context, email, password string) (*types.User, *Token, error)
	Login(ctx context.Context, host, email, password string) (*types.User, *Token, error)
	IssueToken(ctx context.Context, user *types.User) (*Token, error)
	ValidateToken(ctx context.Context, rawToken string) (*types.Principal, error)
	Revoke(ctx context.Context, rawToken string) error
	RevokePrincipal(ctx context.Context, principal *types.Principal) error
	GetUser(ctx context.Context, id string) (*types.User, error)
}

// StorageInterface is the subset of internal/storage used to look up credentials.
type StorageInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
}

type DenylistInterface interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type HasherInterface interface {
	Verify(hash, plain string) bool
	VerifyDummy(plain string) bool
}

// GuardInterface is the login-time tenant binding check.
type GuardInterface interface {
	CheckLogin(ctx context.Context, host string, user *types.User) error
}
