// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
)

// API is implemented by every package exposing HTTP endpoints.
type API interface {
	RegisterEndpoints(mux *chi.Mux)
}

// NewRouter applies the request-wide middlewares in order: request id, response
// time and CORS. systemAPIs are mounted right there so health and metrics never
// depend on the database. Every other API sits behind host extraction and tenant
// resolution. Authentication and tenant guards are attached per route group by each API.
func NewRouter(
	corsAllowedOrigins []string,
	hostMiddleware func(http.Handler) http.Handler,
	tenantMiddleware func(http.Handler) http.Handler,
	systemAPIs []API,
	apis []API,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsAllowedOrigins),
	)

	router.Use(middlewares...)

	for _, api := range systemAPIs {
		api.RegisterEndpoints(router)
	}

	tenantRouter := chi.NewMux()
	tenantRouter.Use(hostMiddleware, tenantMiddleware)

	for _, api := range apis {
		api.RegisterEndpoints(tenantRouter)
	}

	router.Mount("/", tenantRouter)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
