// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/community-service/internal/http/types"
	"github.com/canonical/community-service/internal/identity"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/auth/register", a.register)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "registration.API.register")
	defer span.End()

	req := new(Request)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteError(w, types.ErrValidation)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.logger.Debugf("invalid registration request: %v", err)
		httptypes.WriteError(w, types.ErrValidation)
		return
	}

	result, err := a.service.Register(ctx, identity.CommunityFromContext(ctx), req)
	if err != nil {
		if resp := httptypes.WriteError(w, err); resp.Status >= http.StatusInternalServerError {
			a.logger.Errorf("registration failed: %v", err)
		}
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusCreated, result)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
