// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/community-service/internal/types"
)

type StorageInterface interface {
	CreateCommunity(ctx context.Context, c *types.Community) (*types.Community, error)
	GetCommunityByID(ctx context.Context, id string) (*types.Community, error)
	GetCommunityByDomain(ctx context.Context, domain string) (*types.Community, error)
	GetEnabledCommunityByDomain(ctx context.Context, domain string) (*types.Community, error)
	ListCommunities(ctx context.Context, page, size int64) ([]*types.Community, error)
	UpdateCommunity(ctx context.Context, c *types.Community, paths []string) (*types.Community, error)
	SetCommunityStatus(ctx context.Context, id string, enabled bool) error
	DeleteCommunity(ctx context.Context, id string) error

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	BindUserToCommunity(ctx context.Context, userID, communityID, shortID string) error

	CreateConfiguration(ctx context.Context, c *types.Configuration) (*types.Configuration, error)
	GetConfiguration(ctx context.Context, communityID string) (*types.Configuration, error)
	UpdateConfiguration(ctx context.Context, c *types.Configuration, paths []string) (*types.Configuration, error)
	CreateLandingPage(ctx context.Context, lp *types.LandingPage) (*types.LandingPage, error)
	GetLandingPage(ctx context.Context, communityID string) (*types.LandingPage, error)
	CreateNavBar(ctx context.Context, nb *types.NavBar) (*types.NavBar, error)
	GetNavBar(ctx context.Context, communityID string) (*types.NavBar, error)
	CreateFooter(ctx context.Context, f *types.Footer) (*types.Footer, error)
	GetFooter(ctx context.Context, communityID string) (*types.Footer, error)
	CreatePage(ctx context.Context, p *types.Page) (*types.Page, error)
	ListPages(ctx context.Context, communityID string, publishedOnly bool) ([]*types.Page, error)
	CreateContactSubmission(ctx context.Context, c *types.ContactSubmission) (*types.ContactSubmission, error)
	ListContactSubmissions(ctx context.Context, communityID string, page, size int64) ([]*types.ContactSubmission, error)
	CreateTranslations(ctx context.Context, translations []*types.Translation) error

	RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	PurgeExpiredRevocations(ctx context.Context, now time.Time) (int64, error)
}
