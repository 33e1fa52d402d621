// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

var _ TokenVerifierInterface = (*JWTVerifier)(nil)

// JWTVerifier checks signature, then expiry, then the denylist.
// It never reads the users table.
type JWTVerifier struct {
	secret   []byte
	issuer   string
	denylist DenylistInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return v.secret, nil
}

// parse returns the claims alongside types.ErrExpired for a well signed but expired token.
func (v *JWTVerifier) parse(rawToken string) (*Claims, error) {
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("%w: %w", types.ErrMalformedToken, ErrMissingSecret)
	}

	claims := new(Claims)
	_, err := jwt.ParseWithClaims(
		rawToken,
		claims,
		v.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return claims, types.ErrExpired
	default:
		return nil, fmt.Errorf("%w: %w", types.ErrMalformedToken, err)
	}

	if claims.ID == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing jti or sub", types.ErrMalformedToken)
	}

	return claims, nil
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*types.Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	claims, err := v.parse(rawToken)
	if err != nil {
		return nil, err
	}

	revoked, err := v.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check denylist: %w", err)
	}

	if revoked {
		return nil, types.ErrRevoked
	}

	return claims.Principal(), nil
}

func NewJWTVerifier(
	secret, issuer string,
	denylist DenylistInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		secret:   []byte(secret),
		issuer:   issuer,
		denylist: denylist,
		now:      time.Now,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
