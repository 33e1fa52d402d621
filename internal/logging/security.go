// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	EventSystemStartup       = "sys_startup"
	EventSystemShutdown      = "sys_shutdown"
	EventAuthnLoginSuccess   = "authn_login_success"
	EventAuthnLoginFailure   = "authn_login_fail"
	EventAuthnTokenRevoked   = "authn_token_revoked"
	EventAuthzFailure        = "authz_fail"
	EventAuthzTenantMismatch = "authz_tenant_mismatch"
	EventTenantProvisioned   = "tenant_provisioned"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system started", zap.String("event", EventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutting down", zap.String("event", EventSystemShutdown))
}

func (s *SecurityLogger) AuthnLoginSuccess(userID string) {
	s.l.Info("login succeeded",
		zap.String("event", EventAuthnLoginSuccess),
		zap.String("user_id", userID),
	)
}

func (s *SecurityLogger) AuthnLoginFailure(email string) {
	s.l.Warn("login failed",
		zap.String("event", EventAuthnLoginFailure),
		zap.String("email", email),
	)
}

func (s *SecurityLogger) AuthnTokenRevoked(userID, tokenID string) {
	s.l.Info("token revoked",
		zap.String("event", EventAuthnTokenRevoked),
		zap.String("user_id", userID),
		zap.String("token_id", tokenID),
	)
}

func (s *SecurityLogger) AuthzFailure(userID, resource, reason string) {
	s.l.Warn("authorization failed",
		zap.String("event", EventAuthzFailure),
		zap.String("user_id", userID),
		zap.String("resource", resource),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzTenantMismatch(userID, email, resolvedCommunityID string, boundCommunityID *string, reason string) {
	bound := ""
	if boundCommunityID != nil {
		bound = *boundCommunityID
	}

	s.l.Warn("tenant binding check failed",
		zap.String("event", EventAuthzTenantMismatch),
		zap.String("user_id", userID),
		zap.String("email", email),
		zap.String("resolved_community_id", resolvedCommunityID),
		zap.String("bound_community_id", bound),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) TenantProvisioned(userID, communityID, domain string) {
	s.l.Info("community provisioned",
		zap.String("event", EventTenantProvisioned),
		zap.String("user_id", userID),
		zap.String("community_id", communityID),
		zap.String("domain", domain),
	)
}
