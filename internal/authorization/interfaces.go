// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/community-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go

type AuthorizerInterface interface {
	CheckLogin(ctx context.Context, host string, user *types.User) error
	CheckTenantAccess(ctx context.Context, community *types.Community, principal *types.Principal) error
	CheckPublicAccess(ctx context.Context, community *types.Community) error
	CheckRegistration(ctx context.Context, community *types.Community) error
}

// ResolverInterface maps a request host to the enabled community owning it.
type ResolverInterface interface {
	Resolve(ctx context.Context, host string) (*types.Community, error)
}

type StorageInterface interface {
	GetConfiguration(ctx context.Context, communityID string) (*types.Configuration, error)
}
