// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// RevokeToken records jti on the denylist until expiresAt. Revoking twice is a no-op.
func (s *Storage) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeToken")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("revoked_tokens").
		Columns("jti", "expires_at").
		Values(jti, expiresAt).
		Suffix("ON CONFLICT (jti) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to revoke token")
	}

	return nil
}

func (s *Storage) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsTokenRevoked")
	defer span.End()

	var revoked bool
	err := s.db.Statement(ctx).
		Select("1").
		Prefix("SELECT EXISTS (").
		From("revoked_tokens").
		Where(sq.Eq{"jti": jti}).
		Suffix(")").
		QueryRowContext(ctx).
		Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}

	return revoked, nil
}

// PurgeExpiredRevocations drops denylist entries whose token expired before now.
func (s *Storage) PurgeExpiredRevocations(ctx context.Context, now time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PurgeExpiredRevocations")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("revoked_tokens").
		Where(sq.Lt{"expires_at": now}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge revoked tokens: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n, nil
}
