// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package community

import (
	"context"
	"errors"
	"net/http"

	httptypes "github.com/canonical/community-service/internal/http/types"
	"github.com/canonical/community-service/internal/identity"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

var _ ResolverInterface = (*Resolver)(nil)

// Resolver maps a request host onto the enabled community owning that domain.
// It reads storage on every call and keeps no state.
type Resolver struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Resolve returns types.ErrNotFound for unknown and for disabled domains alike.
func (r *Resolver) Resolve(ctx context.Context, host string) (*types.Community, error) {
	ctx, span := r.tracer.Start(ctx, "community.Resolver.Resolve")
	defer span.End()

	domain := identity.NormalizeHost(host)
	if domain == "" {
		return nil, types.ErrNotFound
	}

	return r.storage.GetEnabledCommunityByDomain(ctx, domain)
}

// HTTPMiddleware attaches the community owning the request host to the context.
// Requests on hosts without a community continue without one.
func (r *Resolver) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx, span := r.tracer.Start(req.Context(), "community.Resolver.HTTPMiddleware")
		defer span.End()

		c, err := r.Resolve(ctx, identity.HostFromContext(ctx))
		switch {
		case err == nil:
			ctx = identity.WithCommunity(ctx, c)
		case errors.Is(err, types.ErrNotFound):
		default:
			r.logger.Errorf("failed to resolve community: %v", err)
			httptypes.WriteError(w, err)
			return
		}

		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func NewResolver(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	r := new(Resolver)

	r.storage = storage

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
