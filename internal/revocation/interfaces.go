// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package revocation

import (
	"context"
	"time"
)

//go:generate mockgen -build_flags=--mod=mod -package revocation -destination ./mock_interfaces.go -source=./interfaces.go

// DenylistInterface stores revoked token identifiers until the token would have expired anyway.
type DenylistInterface interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Purge(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// StorageInterface is the subset of internal/storage backing the postgres denylist.
type StorageInterface interface {
	RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	PurgeExpiredRevocations(ctx context.Context, now time.Time) (int64, error)
}

type pinger interface {
	Ping(context.Context) error
}
