// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/canonical/community-service/internal/types"
)

const DefaultTokenLifetime = 24 * time.Hour

var ErrMissingSecret = errors.New("token signing secret is not configured")

// Issuer mints HS256 session tokens.
type Issuer struct {
	secret   []byte
	issuer   string
	lifetime time.Duration

	now func() time.Time
}

func (i *Issuer) Issue(user *types.User) (*Token, error) {
	if len(i.secret) == 0 {
		return nil, ErrMissingSecret
	}

	now := i.now()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		},
	}

	if user.CommunityID != nil {
		claims.CommunityID = *user.CommunityID
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{Raw: raw, ExpiresAt: claims.ExpiresAt.Time, Claims: claims}, nil
}

func NewIssuer(secret, issuer string, lifetime time.Duration) *Issuer {
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}

	return &Issuer{
		secret:   []byte(secret),
		issuer:   issuer,
		lifetime: lifetime,
		now:      time.Now,
	}
}
