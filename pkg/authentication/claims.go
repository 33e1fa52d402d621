// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/community-service/internal/types"
)

// Claims of a session token. CommunityID is empty for unbound users.
type Claims struct {
	CommunityID string `json:"cid"`
	jwt.RegisteredClaims
}

// Principal converts the claims into the caller identity.
func (c *Claims) Principal() *types.Principal {
	p := &types.Principal{
		ID:      c.Subject,
		TokenID: c.ID,
	}

	if c.CommunityID != "" {
		cid := c.CommunityID
		p.CommunityID = &cid
	}

	if c.ExpiresAt != nil {
		p.ExpiresAt = c.ExpiresAt.Time
	}

	return p
}

// Token is a signed session token.
type Token struct {
	Raw       string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`

	Claims *Claims `json:"-"`
}
