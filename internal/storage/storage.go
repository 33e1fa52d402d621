// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/community-service/internal/db"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var communityColumns = []string{
	"id", "slug", "name", "domain", "enabled", "locale", "currency", "country", "owner_id", "created_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

type rowScanner interface {
	Scan(...interface{}) error
}

func scanCommunity(row rowScanner) (*types.Community, error) {
	var c types.Community
	err := row.Scan(
		&c.ID, &c.Slug, &c.Name, &c.Domain, &c.Enabled,
		&c.Locale, &c.Currency, &c.Country, &c.OwnerID, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// newID returns id when set, a fresh UUIDv7 otherwise.
func newID(id string) (string, error) {
	if id != "" {
		return id, nil
	}

	v7, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return v7.String(), nil
}

func (s *Storage) CreateCommunity(ctx context.Context, c *types.Community) (*types.Community, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCommunity")
	defer span.End()

	id, err := newID(c.ID)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("communities").
		Columns("id", "slug", "name", "domain", "enabled", "locale", "currency", "country", "owner_id").
		Values(id, c.Slug, c.Name, c.Domain, c.Enabled, c.Locale, c.Currency, c.Country, c.OwnerID).
		Suffix(returning(communityColumns)).
		QueryRowContext(ctx)

	community, err := scanCommunity(row)
	if err != nil {
		return nil, wrapError(err, "failed to insert community")
	}

	return community, nil
}

func (s *Storage) GetCommunityByID(ctx context.Context, id string) (*types.Community, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCommunityByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(communityColumns...).
		From("communities").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	c, err := scanCommunity(row)
	if err != nil {
		return nil, wrapError(err, "failed to get community")
	}

	return c, nil
}

// GetCommunityByDomain returns the community owning domain regardless of its status.
func (s *Storage) GetCommunityByDomain(ctx context.Context, domain string) (*types.Community, error) {
	return s.getCommunityByDomain(ctx, domain, false)
}

// GetEnabledCommunityByDomain returns the community owning domain only when it is enabled.
func (s *Storage) GetEnabledCommunityByDomain(ctx context.Context, domain string) (*types.Community, error) {
	return s.getCommunityByDomain(ctx, domain, true)
}

func (s *Storage) getCommunityByDomain(ctx context.Context, domain string, enabledOnly bool) (*types.Community, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCommunityByDomain")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(communityColumns...).
		From("communities").
		Where(sq.Eq{"domain": domain})

	if enabledOnly {
		query = query.Where(sq.Eq{"enabled": true})
	}

	c, err := scanCommunity(query.QueryRowContext(ctx))
	if err != nil {
		return nil, wrapError(err, "failed to get community by domain")
	}

	return c, nil
}

func (s *Storage) ListCommunities(ctx context.Context, page, size int64) ([]*types.Community, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCommunities")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := s.db.Statement(ctx).
		Select(communityColumns...).
		From("communities").
		OrderBy("created_at").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list communities: %w", err)
	}
	defer rows.Close()

	communities := make([]*types.Community, 0)
	for rows.Next() {
		c, err := scanCommunity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan community: %w", err)
		}
		communities = append(communities, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating community rows: %w", err)
	}

	return communities, nil
}

// UpdateCommunity updates the fields named in paths, following PATCH semantics.
// Slug, domain and owner are immutable after provisioning.
func (s *Storage) UpdateCommunity(ctx context.Context, c *types.Community, paths []string) (*types.Community, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCommunity")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = c.Name
		case "enabled":
			updateMap["enabled"] = c.Enabled
		case "locale":
			updateMap["locale"] = c.Locale
		case "currency":
			updateMap["currency"] = c.Currency
		case "country":
			updateMap["country"] = c.Country
		}
	}

	if len(updateMap) == 0 {
		return s.GetCommunityByID(ctx, c.ID)
	}

	row := s.db.Statement(ctx).
		Update("communities").
		SetMap(updateMap).
		Where(sq.Eq{"id": c.ID}).
		Suffix(returning(communityColumns)).
		QueryRowContext(ctx)

	updated, err := scanCommunity(row)
	if err != nil {
		return nil, wrapError(err, "failed to update community")
	}

	return updated, nil
}

func (s *Storage) SetCommunityStatus(ctx context.Context, id string, enabled bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetCommunityStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("communities").
		Set("enabled", enabled).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to set community status")
	}

	return expectAffected(res)
}

// DeleteCommunity removes the community, every dependent record goes with it.
func (s *Storage) DeleteCommunity(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCommunity")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("communities").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrapError(err, "failed to delete community")
	}

	return expectAffected(res)
}

type rowsAffected interface {
	RowsAffected() (int64, error)
}

func expectAffected(res rowsAffected) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}
