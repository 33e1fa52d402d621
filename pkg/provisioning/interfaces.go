// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"

	"github.com/canonical/community-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_interfaces.go -source=./interfaces.go

type ProvisionerInterface interface {
	Provision(ctx context.Context, owner *types.User, domain, displayName string) (*types.Community, error)
}

type StorageInterface interface {
	CreateCommunity(ctx context.Context, c *types.Community) (*types.Community, error)
	CreateConfiguration(ctx context.Context, c *types.Configuration) (*types.Configuration, error)
	CreateLandingPage(ctx context.Context, lp *types.LandingPage) (*types.LandingPage, error)
	CreateNavBar(ctx context.Context, nb *types.NavBar) (*types.NavBar, error)
	CreateFooter(ctx context.Context, f *types.Footer) (*types.Footer, error)
	CreatePage(ctx context.Context, p *types.Page) (*types.Page, error)
	CreateContactSubmission(ctx context.Context, c *types.ContactSubmission) (*types.ContactSubmission, error)
	CreateTranslations(ctx context.Context, translations []*types.Translation) error
	BindUserToCommunity(ctx context.Context, userID, communityID, shortID string) error
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
