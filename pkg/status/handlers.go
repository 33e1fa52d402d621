// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/community-service/internal/http/types"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Status    string `json:"status"`
	BuildInfo string `json:"buildInfo"`
}

type Readiness struct {
	Ready        bool            `json:"ready"`
	Dependencies map[string]bool `json:"dependencies"`
}

type API struct {
	dependencies map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	_ = httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok", BuildInfo: version.Version})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	names := make([]string, 0, len(a.dependencies))
	for name := range a.dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	readiness := Readiness{Ready: true, Dependencies: make(map[string]bool, len(names))}

	for _, name := range names {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := a.dependencies[name].Ping(pingCtx)
		cancel()

		available := 1.0
		if err != nil {
			a.logger.Errorf("dependency %s not available: %v", name, err)
			readiness.Ready = false
			available = 0
		}

		readiness.Dependencies[name] = err == nil
		_ = a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available)
	}

	status := http.StatusOK
	if !readiness.Ready {
		status = http.StatusServiceUnavailable
	}

	_ = httptypes.WriteJSON(w, status, readiness)
}

func NewAPI(dependencies map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		dependencies: dependencies,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}
