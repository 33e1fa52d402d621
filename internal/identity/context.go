// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/canonical/community-service/internal/types"
)

type hostKey struct{}
type communityKey struct{}
type principalKey struct{}

// WithHost returns a new context carrying the normalised request host.
func WithHost(ctx context.Context, host string) context.Context {
	return context.WithValue(ctx, hostKey{}, host)
}

// HostFromContext returns the normalised request host, empty when absent.
func HostFromContext(ctx context.Context) string {
	host, _ := ctx.Value(hostKey{}).(string)
	return host
}

// WithCommunity returns a new context carrying the community resolved from the host.
func WithCommunity(ctx context.Context, c *types.Community) context.Context {
	return context.WithValue(ctx, communityKey{}, c)
}

// CommunityFromContext returns the resolved community, nil when the host matched none.
func CommunityFromContext(ctx context.Context) *types.Community {
	c, _ := ctx.Value(communityKey{}).(*types.Community)
	return c
}

// WithPrincipal returns a new context carrying the authenticated caller.
func WithPrincipal(ctx context.Context, p *types.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the authenticated caller, nil for anonymous requests.
func PrincipalFromContext(ctx context.Context) *types.Principal {
	p, _ := ctx.Value(principalKey{}).(*types.Principal)
	return p
}
