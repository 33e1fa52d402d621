// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"context"

	"github.com/canonical/community-service/internal/types"
	"github.com/canonical/community-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package registration -destination ./mock_interfaces.go -source=./interfaces.go

type ServiceInterface interface {
	Register(ctx context.Context, community *types.Community, req *Request) (*Result, error)
}

// StorageInterface is the subset of internal/storage used by registration.
type StorageInterface interface {
	GetCommunityByDomain(ctx context.Context, domain string) (*types.Community, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
}

type HasherInterface interface {
	Hash(plain string) (string, error)
}

type ProvisionerInterface interface {
	Provision(ctx context.Context, owner *types.User, domain, displayName string) (*types.Community, error)
}

type GuardInterface interface {
	CheckRegistration(ctx context.Context, community *types.Community) error
}

type TokenIssuerInterface interface {
	IssueToken(ctx context.Context, user *types.User) (*authentication.Token, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
