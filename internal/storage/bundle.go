// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/community-service/internal/db"
	"github.com/canonical/community-service/internal/types"
)

var configurationColumns = []string{
	"id", "community_id", "theme", "primary_color", "secondary_color", "font_family",
	"logo_url", "marketplace_active", "allow_registration", "created_at",
}

var pageColumns = []string{"id", "community_id", "title", "end_point", "position", "published", "created_at"}

var contactColumns = []string{"id", "community_id", "name", "email", "message", "sample", "created_at"}

func scanConfiguration(row rowScanner) (*types.Configuration, error) {
	var c types.Configuration
	err := row.Scan(
		&c.ID, &c.CommunityID, &c.Theme, &c.PrimaryColor, &c.SecondaryColor, &c.FontFamily,
		&c.LogoURL, &c.MarketplaceActive, &c.AllowRegistration, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateConfiguration(ctx context.Context, c *types.Configuration) (*types.Configuration, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateConfiguration")
	defer span.End()

	id, err := newID(c.ID)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("configurations").
		Columns(configurationColumns[:len(configurationColumns)-1]...).
		Values(
			id, c.CommunityID, c.Theme, c.PrimaryColor, c.SecondaryColor, c.FontFamily,
			c.LogoURL, c.MarketplaceActive, c.AllowRegistration,
		).
		Suffix(returning(configurationColumns)).
		QueryRowContext(ctx)

	created, err := scanConfiguration(row)
	if err != nil {
		return nil, wrapError(err, "failed to insert configuration")
	}

	return created, nil
}

func (s *Storage) GetConfiguration(ctx context.Context, communityID string) (*types.Configuration, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetConfiguration")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(configurationColumns...).
		From("configurations").
		Where(sq.Eq{"community_id": communityID}).
		QueryRowContext(ctx)

	c, err := scanConfiguration(row)
	if err != nil {
		return nil, wrapError(err, "failed to get configuration")
	}

	return c, nil
}

// UpdateConfiguration updates the fields named in paths for c.CommunityID.
func (s *Storage) UpdateConfiguration(ctx context.Context, c *types.Configuration, paths []string) (*types.Configuration, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateConfiguration")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "theme":
			updateMap["theme"] = c.Theme
		case "primary_color":
			updateMap["primary_color"] = c.PrimaryColor
		case "secondary_color":
			updateMap["secondary_color"] = c.SecondaryColor
		case "font_family":
			updateMap["font_family"] = c.FontFamily
		case "logo_url":
			updateMap["logo_url"] = c.LogoURL
		case "marketplace_active":
			updateMap["marketplace_active"] = c.MarketplaceActive
		case "allow_registration":
			updateMap["allow_registration"] = c.AllowRegistration
		}
	}

	if len(updateMap) == 0 {
		return s.GetConfiguration(ctx, c.CommunityID)
	}

	row := s.db.Statement(ctx).
		Update("configurations").
		SetMap(updateMap).
		Where(sq.Eq{"community_id": c.CommunityID}).
		Suffix(returning(configurationColumns)).
		QueryRowContext(ctx)

	updated, err := scanConfiguration(row)
	if err != nil {
		return nil, wrapError(err, "failed to update configuration")
	}

	return updated, nil
}

func (s *Storage) CreateLandingPage(ctx context.Context, lp *types.LandingPage) (*types.LandingPage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLandingPage")
	defer span.End()

	id, err := newID(lp.ID)
	if err != nil {
		return nil, err
	}

	sections, err := json.Marshal(lp.Sections)
	if err != nil {
		return nil, fmt.Errorf("failed to encode landing page sections: %w", err)
	}

	var created types.LandingPage
	var raw []byte
	err = s.db.Statement(ctx).
		Insert("landing_pages").
		Columns("id", "community_id", "title", "sections").
		Values(id, lp.CommunityID, lp.Title, sections).
		Suffix("RETURNING id, community_id, title, sections, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CommunityID, &created.Title, &raw, &created.CreatedAt)
	if err != nil {
		return nil, wrapError(err, "failed to insert landing page")
	}

	if err := json.Unmarshal(raw, &created.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode landing page sections: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetLandingPage(ctx context.Context, communityID string) (*types.LandingPage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLandingPage")
	defer span.End()

	var lp types.LandingPage
	var raw []byte
	err := s.db.Statement(ctx).
		Select("id", "community_id", "title", "sections", "created_at").
		From("landing_pages").
		Where(sq.Eq{"community_id": communityID}).
		QueryRowContext(ctx).
		Scan(&lp.ID, &lp.CommunityID, &lp.Title, &raw, &lp.CreatedAt)
	if err != nil {
		return nil, wrapError(err, "failed to get landing page")
	}

	if err := json.Unmarshal(raw, &lp.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode landing page sections: %w", err)
	}

	return &lp, nil
}

func (s *Storage) CreateNavBar(ctx context.Context, nb *types.NavBar) (*types.NavBar, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNavBar")
	defer span.End()

	id, err := newID(nb.ID)
	if err != nil {
		return nil, err
	}

	links, err := json.Marshal(nb.Links)
	if err != nil {
		return nil, fmt.Errorf("failed to encode nav bar links: %w", err)
	}

	var created types.NavBar
	var raw []byte
	err = s.db.Statement(ctx).
		Insert("nav_bars").
		Columns("id", "community_id", "links").
		Values(id, nb.CommunityID, links).
		Suffix("RETURNING id, community_id, links, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CommunityID, &raw, &created.CreatedAt)
	if err != nil {
		return nil, wrapError(err, "failed to insert nav bar")
	}

	if err := json.Unmarshal(raw, &created.Links); err != nil {
		return nil, fmt.Errorf("failed to decode nav bar links: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetNavBar(ctx context.Context, communityID string) (*types.NavBar, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetNavBar")
	defer span.End()

	var nb types.NavBar
	var raw []byte
	err := s.db.Statement(ctx).
		Select("id", "community_id", "links", "created_at").
		From("nav_bars").
		Where(sq.Eq{"community_id": communityID}).
		QueryRowContext(ctx).
		Scan(&nb.ID, &nb.CommunityID, &raw, &nb.CreatedAt)
	if err != nil {
		return nil, wrapError(err, "failed to get nav bar")
	}

	if err := json.Unmarshal(raw, &nb.Links); err != nil {
		return nil, fmt.Errorf("failed to decode nav bar links: %w", err)
	}

	return &nb, nil
}

func (s *Storage) CreateFooter(ctx context.Context, f *types.Footer) (*types.Footer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateFooter")
	defer span.End()

	id, err := newID(f.ID)
	if err != nil {
		return nil, err
	}

	sections, err := json.Marshal(f.Sections)
	if err != nil {
		return nil, fmt.Errorf("failed to encode footer sections: %w", err)
	}

	var created types.Footer
	var raw []byte
	err = s.db.Statement(ctx).
		Insert("footers").
		Columns("id", "community_id", "sections", "copyright").
		Values(id, f.CommunityID, sections, f.Copyright).
		Suffix("RETURNING id, community_id, sections, copyright, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CommunityID, &raw, &created.Copyright, &created.CreatedAt)
	if err != nil {
		return nil, wrapError(err, "failed to insert footer")
	}

	if err := json.Unmarshal(raw, &created.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode footer sections: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetFooter(ctx context.Context, communityID string) (*types.Footer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetFooter")
	defer span.End()

	var f types.Footer
	var raw []byte
	err := s.db.Statement(ctx).
		Select("id", "community_id", "sections", "copyright", "created_at").
		From("footers").
		Where(sq.Eq{"community_id": communityID}).
		QueryRowContext(ctx).
		Scan(&f.ID, &f.CommunityID, &raw, &f.Copyright, &f.CreatedAt)
	if err != nil {
		return nil, wrapError(err, "failed to get footer")
	}

	if err := json.Unmarshal(raw, &f.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode footer sections: %w", err)
	}

	return &f, nil
}

func (s *Storage) CreatePage(ctx context.Context, p *types.Page) (*types.Page, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePage")
	defer span.End()

	id, err := newID(p.ID)
	if err != nil {
		return nil, err
	}

	var created types.Page
	err = s.db.Statement(ctx).
		Insert("pages").
		Columns("id", "community_id", "title", "end_point", "position", "published").
		Values(id, p.CommunityID, p.Title, p.EndPoint, p.Position, p.Published).
		Suffix(returning(pageColumns)).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CommunityID, &created.Title, &created.EndPoint, &created.Position, &created.Published, &created.CreatedAt)
	if err != nil {
		return nil, wrapError(err, "failed to insert page")
	}

	return &created, nil
}

// ListPages returns the community pages ordered by position.
func (s *Storage) ListPages(ctx context.Context, communityID string, publishedOnly bool) ([]*types.Page, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPages")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(pageColumns...).
		From("pages").
		Where(sq.Eq{"community_id": communityID}).
		OrderBy("position")

	if publishedOnly {
		query = query.Where(sq.Eq{"published": true})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	pages := make([]*types.Page, 0)
	for rows.Next() {
		var p types.Page
		if err := rows.Scan(&p.ID, &p.CommunityID, &p.Title, &p.EndPoint, &p.Position, &p.Published, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating page rows: %w", err)
	}

	return pages, nil
}

func (s *Storage) CreateContactSubmission(ctx context.Context, c *types.ContactSubmission) (*types.ContactSubmission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateContactSubmission")
	defer span.End()

	id, err := newID(c.ID)
	if err != nil {
		return nil, err
	}

	var created types.ContactSubmission
	err = s.db.Statement(ctx).
		Insert("contact_submissions").
		Columns("id", "community_id", "name", "email", "message", "sample").
		Values(id, c.CommunityID, c.Name, c.Email, c.Message, c.Sample).
		Suffix(returning(contactColumns)).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CommunityID, &created.Name, &created.Email, &created.Message, &created.Sample, &created.CreatedAt)
	if err != nil {
		return nil, wrapError(err, "failed to insert contact submission")
	}

	return &created, nil
}

func (s *Storage) ListContactSubmissions(ctx context.Context, communityID string, page, size int64) ([]*types.ContactSubmission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListContactSubmissions")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := s.db.Statement(ctx).
		Select(contactColumns...).
		From("contact_submissions").
		Where(sq.Eq{"community_id": communityID}).
		OrderBy("created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer rows.Close()

	contacts := make([]*types.ContactSubmission, 0)
	for rows.Next() {
		var c types.ContactSubmission
		if err := rows.Scan(&c.ID, &c.CommunityID, &c.Name, &c.Email, &c.Message, &c.Sample, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		contacts = append(contacts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact submission rows: %w", err)
	}

	return contacts, nil
}

// CreateTranslations inserts all translations in a single statement.
func (s *Storage) CreateTranslations(ctx context.Context, translations []*types.Translation) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTranslations")
	defer span.End()

	if len(translations) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("translations").
		Columns("id", "community_id", "locale", "key", "value")

	for _, t := range translations {
		id, err := newID(t.ID)
		if err != nil {
			return err
		}
		query = query.Values(id, t.CommunityID, t.Locale, t.Key, t.Value)
	}

	if _, err := query.ExecContext(ctx); err != nil {
		return wrapError(err, "failed to insert translations")
	}

	return nil
}
