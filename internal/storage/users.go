// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/community-service/internal/types"
)

var userColumns = []string{
	"id", "email", "password_hash", "first_name", "last_name", "community_id", "short_id", "is_admin", "created_at",
}

func scanUser(row rowScanner) (*types.User, error) {
	var u types.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.CommunityID, &u.ShortID, &u.IsAdmin, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts an unbound principal. Email uniqueness is case-insensitive.
func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := newID(u.ID)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "password_hash", "first_name", "last_name", "is_admin").
		Values(id, strings.TrimSpace(u.Email), u.PasswordHash, u.FirstName, u.LastName, u.IsAdmin).
		Suffix(returning(userColumns)).
		QueryRowContext(ctx)

	user, err := scanUser(row)
	if err != nil {
		return nil, wrapError(err, "failed to insert user")
	}

	return user, nil
}

// GetUserByEmail matches email case-insensitively.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Expr("lower(email) = lower(?)", strings.TrimSpace(email))).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, wrapError(err, "failed to get user by email")
	}

	return u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, wrapError(err, "failed to get user")
	}

	return u, nil
}

// BindUserToCommunity binds an unbound user to communityID and makes them its admin.
// Returns ErrNotFound when the user does not exist or is already bound.
func (s *Storage) BindUserToCommunity(ctx context.Context, userID, communityID, shortID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.BindUserToCommunity")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("community_id", communityID).
		Set("is_admin", true).
		Set("short_id", shortID).
		Where(sq.Eq{"id": userID}).
		Where(sq.Eq{"community_id": nil}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to bind user")
	}

	return expectAffected(res)
}
