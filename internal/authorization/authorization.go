// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer enforces tenant isolation. It combines the caller binding with the
// community resolved from the request host.
type Authorizer struct {
	resolver ResolverInterface
	storage  StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) record(check, outcome string) {
	if err := a.monitor.IncrementAccessDecision(decisionTags(check, outcome)); err != nil {
		a.logger.Debugf("failed to record access decision: %v", err)
	}
}

// CheckLogin allows the login when host maps to no community. When it does, the user
// must be bound to exactly that community.
func (a *Authorizer) CheckLogin(ctx context.Context, host string, user *types.User) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckLogin")
	defer span.End()

	community, err := a.resolver.Resolve(ctx, host)
	if errors.Is(err, types.ErrNotFound) {
		a.record(CHECK_LOGIN, OUTCOME_ALLOW)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to resolve community for %q: %w", host, err)
	}

	if user == nil {
		a.logger.Security().AuthzFailure("", communityResource(community.ID, CHECK_LOGIN), REASON_ANONYMOUS)
		a.record(CHECK_LOGIN, OUTCOME_DENY)
		return types.ErrForbidden
	}

	if user.BoundTo(community.ID) {
		a.record(CHECK_LOGIN, OUTCOME_ALLOW)
		return nil
	}

	reason := REASON_BINDING_MISMATCH
	if user.CommunityID == nil {
		reason = REASON_UNBOUND
	}

	a.logger.Security().AuthzTenantMismatch(user.ID, user.Email, community.ID, user.CommunityID, reason)
	a.record(CHECK_LOGIN, OUTCOME_DENY)

	return types.ErrForbidden
}

// CheckTenantAccess requires a resolved community and a principal bound to it.
func (a *Authorizer) CheckTenantAccess(ctx context.Context, community *types.Community, principal *types.Principal) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckTenantAccess")
	defer span.End()

	if community == nil {
		userID := ""
		if principal != nil {
			userID = principal.ID
		}

		a.logger.Security().AuthzFailure(userID, communityResource("", CHECK_TENANT), REASON_NO_TENANT)
		a.record(CHECK_TENANT, OUTCOME_DENY)
		return types.ErrNotFound
	}

	if principal == nil {
		a.logger.Security().AuthzTenantMismatch("", "", community.ID, nil, REASON_ANONYMOUS)
		a.record(CHECK_TENANT, OUTCOME_DENY)
		return types.ErrAccessDenied
	}

	if !principal.BoundTo(community.ID) {
		reason := REASON_BINDING_MISMATCH
		if principal.CommunityID == nil {
			reason = REASON_UNBOUND
		}

		a.logger.Security().AuthzTenantMismatch(principal.ID, "", community.ID, principal.CommunityID, reason)
		a.record(CHECK_TENANT, OUTCOME_DENY)

		return types.ErrAccessDenied
	}

	a.record(CHECK_TENANT, OUTCOME_ALLOW)
	return nil
}

// CheckPublicAccess only requires a resolved, and therefore enabled, community.
func (a *Authorizer) CheckPublicAccess(ctx context.Context, community *types.Community) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckPublicAccess")
	defer span.End()

	if community == nil {
		a.logger.Security().AuthzFailure("", communityResource("", CHECK_PUBLIC), REASON_NO_TENANT)
		a.record(CHECK_PUBLIC, OUTCOME_DENY)
		return types.ErrNotFound
	}

	if !community.Enabled {
		a.logger.Security().AuthzFailure("", communityResource(community.ID, CHECK_PUBLIC), REASON_DISABLED)
		a.record(CHECK_PUBLIC, OUTCOME_DENY)
		return types.ErrNotFound
	}

	a.record(CHECK_PUBLIC, OUTCOME_ALLOW)
	return nil
}

// CheckRegistration rejects sign-ups on a community that closed registration.
// Registration on a host that maps to no community is always allowed.
func (a *Authorizer) CheckRegistration(ctx context.Context, community *types.Community) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckRegistration")
	defer span.End()

	if community == nil {
		a.record(CHECK_REGISTRATION, OUTCOME_ALLOW)
		return nil
	}

	cfg, err := a.storage.GetConfiguration(ctx, community.ID)
	if errors.Is(err, types.ErrNotFound) {
		a.record(CHECK_REGISTRATION, OUTCOME_ALLOW)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if !cfg.AllowRegistration {
		a.logger.Security().AuthzFailure("", communityResource(community.ID, CHECK_REGISTRATION), REASON_REGISTRATION_CLOSED)
		a.record(CHECK_REGISTRATION, OUTCOME_DENY)
		return types.ErrForbidden
	}

	a.record(CHECK_REGISTRATION, OUTCOME_ALLOW)
	return nil
}

func NewAuthorizer(
	resolver ResolverInterface,
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Authorizer {
	a := new(Authorizer)

	a.resolver = resolver
	a.storage = storage

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
