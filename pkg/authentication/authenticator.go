// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

var _ AuthenticatorInterface = (*Authenticator)(nil)

type Authenticator struct {
	storage  StorageInterface
	hasher   HasherInterface
	issuer   *Issuer
	verifier *JWTVerifier
	denylist DenylistInterface
	guard    GuardInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// verifyCredentials runs exactly one bcrypt comparison whether or not the email exists.
func (a *Authenticator) verifyCredentials(ctx context.Context, email, password string) (*types.User, error) {
	user, err := a.storage.GetUserByEmail(ctx, email)

	switch {
	case errors.Is(err, types.ErrNotFound):
		a.hasher.VerifyDummy(password)
		a.logger.Security().AuthnLoginFailure(email)
		return nil, types.ErrInvalidCredentials
	case err != nil:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !a.hasher.Verify(user.PasswordHash, password) {
		a.logger.Security().AuthnLoginFailure(email)
		return nil, types.ErrInvalidCredentials
	}

	return user, nil
}

func (a *Authenticator) issue(user *types.User) (*Token, error) {
	token, err := a.issuer.Issue(user)
	if errors.Is(err, ErrMissingSecret) {
		a.logger.Errorf("refusing to issue token: %v", err)
		return nil, types.ErrInvalidCredentials
	}

	return token, err
}

// Authenticate verifies the credentials and mints a session token.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*types.User, *Token, error) {
	ctx, span := a.tracer.Start(ctx, "authentication.Authenticator.Authenticate")
	defer span.End()

	user, err := a.verifyCredentials(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	token, err := a.issue(user)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Security().AuthnLoginSuccess(user.ID)

	return user, token, nil
}

// Login authenticates and then applies the tenant binding check for host before minting the token.
func (a *Authenticator) Login(ctx context.Context, host, email, password string) (*types.User, *Token, error) {
	ctx, span := a.tracer.Start(ctx, "authentication.Authenticator.Login")
	defer span.End()

	user, err := a.verifyCredentials(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	if err := a.guard.CheckLogin(ctx, host, user); err != nil {
		return nil, nil, err
	}

	token, err := a.issue(user)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Security().AuthnLoginSuccess(user.ID)

	return user, token, nil
}

// IssueToken mints a token for an already verified user, used right after registration.
func (a *Authenticator) IssueToken(ctx context.Context, user *types.User) (*Token, error) {
	_, span := a.tracer.Start(ctx, "authentication.Authenticator.IssueToken")
	defer span.End()

	return a.issue(user)
}

func (a *Authenticator) ValidateToken(ctx context.Context, rawToken string) (*types.Principal, error) {
	ctx, span := a.tracer.Start(ctx, "authentication.Authenticator.ValidateToken")
	defer span.End()

	return a.verifier.VerifyToken(ctx, rawToken)
}

// Revoke denylists a raw token until it expires. Expired or already revoked tokens are a no-op.
func (a *Authenticator) Revoke(ctx context.Context, rawToken string) error {
	ctx, span := a.tracer.Start(ctx, "authentication.Authenticator.Revoke")
	defer span.End()

	claims, err := a.verifier.parse(rawToken)
	if errors.Is(err, types.ErrExpired) {
		return nil
	}
	if err != nil {
		return err
	}

	return a.RevokePrincipal(ctx, claims.Principal())
}

func (a *Authenticator) RevokePrincipal(ctx context.Context, principal *types.Principal) error {
	ctx, span := a.tracer.Start(ctx, "authentication.Authenticator.RevokePrincipal")
	defer span.End()

	if principal == nil || principal.TokenID == "" {
		return types.ErrMalformedToken
	}

	if err := a.denylist.Revoke(ctx, principal.TokenID, principal.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	a.logger.Security().AuthnTokenRevoked(principal.ID, principal.TokenID)

	return nil
}

func (a *Authenticator) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := a.tracer.Start(ctx, "authentication.Authenticator.GetUser")
	defer span.End()

	return a.storage.GetUserByID(ctx, id)
}

func NewAuthenticator(
	storage StorageInterface,
	hasher HasherInterface,
	issuer *Issuer,
	verifier *JWTVerifier,
	denylist DenylistInterface,
	guard GuardInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Authenticator {
	a := new(Authenticator)

	a.storage = storage
	a.hasher = hasher
	a.issuer = issuer
	a.verifier = verifier
	a.denylist = denylist
	a.guard = guard

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
