// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

// Decision labels, used for metrics and audit logs.
const (
	CHECK_LOGIN        = "login"
	CHECK_TENANT       = "tenant"
	CHECK_PUBLIC       = "public"
	CHECK_REGISTRATION = "registration"

	OUTCOME_ALLOW = "allow"
	OUTCOME_DENY  = "deny"

	REASON_NO_TENANT           = "no_tenant"
	REASON_DISABLED            = "disabled"
	REASON_ANONYMOUS           = "anonymous"
	REASON_UNBOUND             = "unbound"
	REASON_BINDING_MISMATCH    = "binding_mismatch"
	REASON_REGISTRATION_CLOSED = "registration_closed"
)

func decisionTags(check, outcome string) map[string]string {
	return map[string]string{
		"check":   check,
		"outcome": outcome,
	}
}

func communityResource(communityID, check string) string {
	if communityID == "" {
		return "community/" + check
	}
	return "community/" + communityID + "/" + check
}
