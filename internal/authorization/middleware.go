// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"net/http"

	httptypes "github.com/canonical/community-service/internal/http/types"
	"github.com/canonical/community-service/internal/identity"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/tracing"
)

type Middleware struct {
	authorizer AuthorizerInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RequireCommunity refuses requests on hosts that map to no community before any
// credential is looked at, so the caller sees not_found whatever token it sent.
func (m *Middleware) RequireCommunity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireCommunity")
			defer span.End()

			if identity.CommunityFromContext(ctx) == nil {
				httptypes.WriteError(w, m.authorizer.CheckTenantAccess(ctx, nil, nil))
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireTenant lets the request through only when the caller is bound to the host's community.
func (m *Middleware) RequireTenant() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireTenant")
			defer span.End()

			err := m.authorizer.CheckTenantAccess(ctx, identity.CommunityFromContext(ctx), identity.PrincipalFromContext(ctx))
			if err != nil {
				httptypes.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePublic lets the request through when the host maps to an enabled community.
func (m *Middleware) RequirePublic() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequirePublic")
			defer span.End()

			if err := m.authorizer.CheckPublicAccess(ctx, identity.CommunityFromContext(ctx)); err != nil {
				httptypes.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewMiddleware(authorizer AuthorizerInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		authorizer: authorizer,
		tracer:     tracer,
		logger:     logger,
	}
}
