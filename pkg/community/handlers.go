// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package community

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/community-service/internal/db"
	httptypes "github.com/canonical/community-service/internal/http/types"
	"github.com/canonical/community-service/internal/identity"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

type UpdateCommunityRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Locale   *string `json:"locale" validate:"omitempty,bcp47_language_tag"`
	Currency *string `json:"currency" validate:"omitempty,iso4217"`
	Country  *string `json:"country" validate:"omitempty,iso3166_1_alpha2"`
}

func (r *UpdateCommunityRequest) apply(c *types.Community) []string {
	paths := make([]string, 0)

	if r.Name != nil {
		c.Name = *r.Name
		paths = append(paths, "name")
	}
	if r.Locale != nil {
		c.Locale = *r.Locale
		paths = append(paths, "locale")
	}
	if r.Currency != nil {
		c.Currency = *r.Currency
		paths = append(paths, "currency")
	}
	if r.Country != nil {
		c.Country = *r.Country
		paths = append(paths, "country")
	}

	return paths
}

type UpdateConfigurationRequest struct {
	Theme             *string `json:"theme" validate:"omitempty,max=64"`
	PrimaryColor      *string `json:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor    *string `json:"secondary_color" validate:"omitempty,hexcolor"`
	FontFamily        *string `json:"font_family" validate:"omitempty,max=128"`
	LogoURL           *string `json:"logo_url" validate:"omitempty,url"`
	MarketplaceActive *bool   `json:"marketplace_active"`
	AllowRegistration *bool   `json:"allow_registration"`
}

func (r *UpdateConfigurationRequest) apply(cfg *types.Configuration) []string {
	paths := make([]string, 0)

	if r.Theme != nil {
		cfg.Theme = *r.Theme
		paths = append(paths, "theme")
	}
	if r.PrimaryColor != nil {
		cfg.PrimaryColor = *r.PrimaryColor
		paths = append(paths, "primary_color")
	}
	if r.SecondaryColor != nil {
		cfg.SecondaryColor = *r.SecondaryColor
		paths = append(paths, "secondary_color")
	}
	if r.FontFamily != nil {
		cfg.FontFamily = *r.FontFamily
		paths = append(paths, "font_family")
	}
	if r.LogoURL != nil {
		cfg.LogoURL = *r.LogoURL
		paths = append(paths, "logo_url")
	}
	if r.MarketplaceActive != nil {
		cfg.MarketplaceActive = *r.MarketplaceActive
		paths = append(paths, "marketplace_active")
	}
	if r.AllowRegistration != nil {
		cfg.AllowRegistration = *r.AllowRegistration
		paths = append(paths, "allow_registration")
	}

	return paths
}

type API struct {
	service ServiceInterface
	authn   AuthenticationMiddlewareInterface
	authz   AuthorizationMiddlewareInterface
	db      db.DBClientInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Group(func(r chi.Router) {
		r.Use(a.authz.RequirePublic())
		r.Get("/api/v0/site", a.getSite)
		r.Get("/api/v0/site/pages", a.listPublishedPages)
		r.Post("/api/v0/site/contact", a.submitContact)
	})

	mux.Group(func(r chi.Router) {
		r.Use(a.authz.RequireCommunity())
		r.Use(a.authn.Authenticate())
		r.Use(a.authz.RequireTenant())
		r.Use(db.TransactionMiddleware(a.db, a.logger))

		r.Get("/api/v0/admin/community", a.getCommunity)
		r.Patch("/api/v0/admin/community", a.updateCommunity)
		r.Get("/api/v0/admin/configuration", a.getConfiguration)
		r.Patch("/api/v0/admin/configuration", a.updateConfiguration)
		r.Get("/api/v0/admin/pages", a.listPages)
		r.Get("/api/v0/admin/contacts", a.listContacts)
	})
}

func (a *API) writeError(w http.ResponseWriter, err error, op string) {
	if resp := httptypes.WriteError(w, err); resp.Code == httptypes.CodeInternal {
		a.logger.Errorf("%s: %v", op, err)
	}
}

func (a *API) getSite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "community.API.getSite")
	defer span.End()

	bundle, err := a.service.GetSite(ctx, identity.CommunityFromContext(ctx))
	if err != nil {
		a.writeError(w, err, "failed to load site")
		return
	}

	_ = httptypes.WriteResponse(w, http.StatusOK, "site", bundle)
}

func (a *API) listPublishedPages(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "community.API.listPublishedPages")
	defer span.End()

	pages, err := a.service.ListPages(ctx, identity.CommunityFromContext(ctx).ID, true)
	if err != nil {
		a.writeError(w, err, "failed to list pages")
		return
	}

	_ = httptypes.WriteResponse(w, http.StatusOK, "pages", pages)
}

func (a *API) submitContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "community.API.submitContact")
	defer span.End()

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, types.ErrValidation)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, types.ErrValidation)
		return
	}

	submission, err := a.service.SubmitContact(ctx, &types.ContactSubmission{
		CommunityID: identity.CommunityFromContext(ctx).ID,
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
	})
	if err != nil {
		a.writeError(w, err, "failed to store contact submission")
		return
	}

	_ = httptypes.WriteResponse(w, http.StatusCreated, "contact submitted", submission)
}

func (a *API) getCommunity(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "community.API.getCommunity")
	defer span.End()

	c, err := a.service.GetCommunity(ctx, identity.CommunityFromContext(ctx).ID)
	if err != nil {
		a.writeError(w, err, "failed to load community")
		return
	}

	_ = httptypes.WriteResponse(w, http.StatusOK, "community", c)
}

func (a *API) updateCommunity(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "community.API.updateCommunity")
	defer span.End()

	var req UpdateCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, types.ErrValidation)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, types.ErrValidation)
		return
	}

	c := *identity.CommunityFromContext(ctx)
	paths := req.apply(&c)

	updated, err := a.service.UpdateCommunity(ctx, &c, paths)
	if err != nil {
		a.writeError(w, err, "failed to update community")
		return
	}

	_ = httptypes.WriteResponse(w, http.StatusOK, "community updated", updated)
}

func (a *API) getConfiguration(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "community.API.getConfiguration")
	defer span.End()

	cfg, err := a.service.GetConfiguration(ctx, identity.CommunityFromContext(ctx).ID)
	if err != nil {
		a.writeError(w, err, "failed to load configuration")
		return
	}

	_ = httptypes.WriteResponse(w, http.StatusOK, "configuration", cfg)
}

func (a *API) updateConfiguration(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "community.API.updateConfiguration")
	defer span.End()

	var req UpdateConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, types.ErrValidation)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, types.ErrValidation)
		return
	}

	cfg := &types.Configuration{CommunityID: identity.CommunityFromContext(ctx).ID}
	paths := req.apply(cfg)

	updated, err := a.service.UpdateConfiguration(ctx, cfg, paths)
	if err != nil {
		a.writeError(w, err, "failed to update configuration")
		return
	}

	_ = httptypes.WriteResponse(w, http.StatusOK, "configuration updated", updated)
}

func (a *API) listPages(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "community.API.listPages")
	defer span.End()

	pages, err := a.service.ListPages(ctx, identity.CommunityFromContext(ctx).ID, false)
	if err != nil {
		a.writeError(w, err, "failed to list pages")
		return
	}

	_ = httptypes.WriteResponse(w, http.StatusOK, "pages", pages)
}

func (a *API) listContacts(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "community.API.listContacts")
	defer span.End()

	page, err := queryInt(r, "page")
	if err != nil {
		httptypes.WriteError(w, types.ErrValidation)
		return
	}

	size, err := queryInt(r, "size")
	if err != nil {
		httptypes.WriteError(w, types.ErrValidation)
		return
	}

	contacts, err := a.service.ListContacts(ctx, identity.CommunityFromContext(ctx).ID, page, size)
	if err != nil {
		a.writeError(w, err, "failed to list contact submissions")
		return
	}

	_ = httptypes.WriteResponse(w, http.StatusOK, "contacts", contacts)
}

// queryInt returns 0 when the parameter is absent.
func queryInt(r *http.Request, key string) (int64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}

	return strconv.ParseInt(v, 10, 64)
}

func NewAPI(
	service ServiceInterface,
	authn AuthenticationMiddlewareInterface,
	authz AuthorizationMiddlewareInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		authn:    authn,
		authz:    authz,
		db:       dbClient,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
