// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
)

type Middleware struct {
	trustForwardedHost bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(trustForwardedHost bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		trustForwardedHost: trustForwardedHost,
		tracer:             tracer,
		monitor:            monitor,
		logger:             logger,
	}
}

// HTTPMiddleware stores the normalised request host in the context.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		ctx = WithHost(ctx, RequestHost(r, m.trustForwardedHost))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
