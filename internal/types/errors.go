// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "errors"

// Authentication and authorization outcomes. The HTTP boundary maps each of
// these to a fixed status and message, see internal/http/types.
var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrRevoked            = errors.New("revoked")
	ErrExpired            = errors.New("expired")
	ErrMalformedToken     = errors.New("malformed_token")
	ErrNotFound           = errors.New("not_found")
	ErrAccessDenied       = errors.New("access_denied")
	ErrForbidden          = errors.New("forbidden")
	ErrProvisionFailed    = errors.New("provision_failed")
	ErrValidation         = errors.New("invalid_request")
	ErrConflict           = errors.New("conflict")
)
