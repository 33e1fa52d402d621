// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/community-service/internal/http/types"
	"github.com/canonical/community-service/internal/identity"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Principal *types.User `json:"principal"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
}

type API struct {
	authenticator AuthenticatorInterface
	middleware    *Middleware
	validate      *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/auth/login", a.login)

	mux.Group(func(r chi.Router) {
		r.Use(a.middleware.Authenticate())
		r.Post("/api/v0/auth/logout", a.logout)
		r.Get("/api/v0/auth/me", a.me)
	})
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, types.ErrValidation)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, types.ErrValidation)
		return
	}

	user, token, err := a.authenticator.Login(ctx, identity.HostFromContext(ctx), req.Email, req.Password)
	if err != nil {
		if resp := httptypes.WriteError(w, err); resp.Code == httptypes.CodeInternal {
			a.logger.Errorf("login failed: %v", err)
		}
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, LoginResponse{
		Principal: user,
		Token:     token.Raw,
		ExpiresAt: token.ExpiresAt,
	})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.logout")
	defer span.End()

	if err := a.authenticator.RevokePrincipal(ctx, identity.PrincipalFromContext(ctx)); err != nil {
		if resp := httptypes.WriteError(w, err); resp.Code == httptypes.CodeInternal {
			a.logger.Errorf("logout failed: %v", err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.me")
	defer span.End()

	principal := identity.PrincipalFromContext(ctx)

	user, err := a.authenticator.GetUser(ctx, principal.ID)
	if err != nil {
		if resp := httptypes.WriteError(w, err); resp.Code == httptypes.CodeInternal {
			a.logger.Errorf("failed to load principal %s: %v", principal.ID, err)
		}
		return
	}

	_ = httptypes.WriteResponse(w, http.StatusOK, "principal", user)
}

func NewAPI(
	authenticator AuthenticatorInterface,
	middleware *Middleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		authenticator: authenticator,
		middleware:    middleware,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}
