// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package community

import (
	"context"
	"net/http"

	"github.com/canonical/community-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package community -destination ./mock_interfaces.go -source=./interfaces.go

type ResolverInterface interface {
	Resolve(ctx context.Context, host string) (*types.Community, error)
}

type ServiceInterface interface {
	GetSite(ctx context.Context, community *types.Community) (*types.Bundle, error)
	ListPages(ctx context.Context, communityID string, publishedOnly bool) ([]*types.Page, error)
	SubmitContact(ctx context.Context, submission *types.ContactSubmission) (*types.ContactSubmission, error)
	ListContacts(ctx context.Context, communityID string, page, size int64) ([]*types.ContactSubmission, error)

	GetCommunity(ctx context.Context, id string) (*types.Community, error)
	UpdateCommunity(ctx context.Context, c *types.Community, paths []string) (*types.Community, error)
	GetConfiguration(ctx context.Context, communityID string) (*types.Configuration, error)
	UpdateConfiguration(ctx context.Context, cfg *types.Configuration, paths []string) (*types.Configuration, error)
}

type StorageInterface interface {
	GetEnabledCommunityByDomain(ctx context.Context, domain string) (*types.Community, error)
	GetCommunityByID(ctx context.Context, id string) (*types.Community, error)
	UpdateCommunity(ctx context.Context, c *types.Community, paths []string) (*types.Community, error)

	GetConfiguration(ctx context.Context, communityID string) (*types.Configuration, error)
	UpdateConfiguration(ctx context.Context, c *types.Configuration, paths []string) (*types.Configuration, error)
	GetLandingPage(ctx context.Context, communityID string) (*types.LandingPage, error)
	GetNavBar(ctx context.Context, communityID string) (*types.NavBar, error)
	GetFooter(ctx context.Context, communityID string) (*types.Footer, error)
	ListPages(ctx context.Context, communityID string, publishedOnly bool) ([]*types.Page, error)
	CreateContactSubmission(ctx context.Context, c *types.ContactSubmission) (*types.ContactSubmission, error)
	ListContactSubmissions(ctx context.Context, communityID string, page, size int64) ([]*types.ContactSubmission, error)
}

type AuthenticationMiddlewareInterface interface {
	Authenticate() func(http.Handler) http.Handler
}

type AuthorizationMiddlewareInterface interface {
	RequireCommunity() func(http.Handler) http.Handler
	RequireTenant() func(http.Handler) http.Handler
	RequirePublic() func(http.Handler) http.Handler
}
