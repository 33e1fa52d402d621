// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Sync() error

	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits audit events. Fields passed here are never
// returned to API callers.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthnLoginSuccess(userID string)
	AuthnLoginFailure(email string)
	AuthnTokenRevoked(userID, tokenID string)
	AuthzFailure(userID, resource, reason string)
	AuthzTenantMismatch(userID, email, resolvedCommunityID string, boundCommunityID *string, reason string)
	TenantProvisioned(userID, communityID, domain string)
}
