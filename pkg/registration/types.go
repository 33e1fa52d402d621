// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"time"

	"github.com/canonical/community-service/internal/types"
)

// Request is the public sign-up payload. Password length is capped by what bcrypt accepts.
type Request struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	Name      string `json:"name" validate:"required,max=255"`
	Domain    string `json:"domain" validate:"required,fqdn,max=253"`
	FirstName string `json:"first_name" validate:"omitempty,max=255"`
	LastName  string `json:"last_name" validate:"omitempty,max=255"`
}

type Result struct {
	Principal   *types.User      `json:"principal"`
	Community   *types.Community `json:"community"`
	Token       string           `json:"token"`
	ExpiresAt   time.Time        `json:"expires_at"`
	RedirectURL string           `json:"redirect_url"`
}
