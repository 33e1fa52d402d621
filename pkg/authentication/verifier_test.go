// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	testIssuer = "community-service"
)

func newTestVerifier(denylist DenylistInterface) *JWTVerifier {
	return NewJWTVerifier(testSecret, testIssuer, denylist, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func issuerAt(now time.Time) *Issuer {
	i := NewIssuer(testSecret, testIssuer, DefaultTokenLifetime)
	i.now = func() time.Time { return now }
	return i
}

func TestIssuer_Issue(t *testing.T) {
	communityID := "community-a"
	now := time.Now().Truncate(time.Second)

	token, err := issuerAt(now).Issue(&types.User{ID: "user-1", CommunityID: &communityID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !token.ExpiresAt.Equal(now.Add(24 * time.Hour)) {
		t.Errorf("expected 24h lifetime, got expiry %s", token.ExpiresAt)
	}

	if token.Claims.Subject != "user-1" || token.Claims.CommunityID != communityID || token.Claims.ID == "" {
		t.Errorf("unexpected claims: %+v", token.Claims)
	}

	other, _ := issuerAt(now).Issue(&types.User{ID: "user-1"})
	if other.Claims.ID == token.Claims.ID {
		t.Error("expected unique jti per token")
	}

	if other.Claims.CommunityID != "" {
		t.Errorf("unbound user must get an empty cid, got %q", other.Claims.CommunityID)
	}
}

func TestIssuer_MissingSecret(t *testing.T) {
	if _, err := NewIssuer("", testIssuer, 0).Issue(&types.User{ID: "u"}); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	now := time.Now()
	communityID := "community-a"
	user := &types.User{ID: "user-1", CommunityID: &communityID}

	valid, _ := issuerAt(now).Issue(user)
	expired, _ := issuerAt(now.Add(-25 * time.Hour)).Issue(user)

	foreign := NewIssuer("another-secret-another-secret-00", testIssuer, 0)
	forged, _ := foreign.Issue(user)

	expiredForgedIssuer := NewIssuer("another-secret-another-secret-00", testIssuer, 0)
	expiredForgedIssuer.now = func() time.Time { return now.Add(-25 * time.Hour) }
	expiredForged, _ := expiredForgedIssuer.Issue(user)

	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, valid.Claims).SignedString([]byte(testSecret))
	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, valid.Claims).SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name       string
		raw        string
		setupMocks func(*MockDenylistInterface)
		expectErr  error
	}{
		{
			name: "valid token",
			raw:  valid.Raw,
			setupMocks: func(d *MockDenylistInterface) {
				d.EXPECT().IsRevoked(gomock.Any(), valid.Claims.ID).Return(false, nil)
			},
		},
		{
			name: "revoked token",
			raw:  valid.Raw,
			setupMocks: func(d *MockDenylistInterface) {
				d.EXPECT().IsRevoked(gomock.Any(), valid.Claims.ID).Return(true, nil)
			},
			expectErr: types.ErrRevoked,
		},
		{
			name:       "expired token",
			raw:        expired.Raw,
			setupMocks: func(*MockDenylistInterface) {},
			expectErr:  types.ErrExpired,
		},
		{
			name:       "signed with another secret",
			raw:        forged.Raw,
			setupMocks: func(*MockDenylistInterface) {},
			expectErr:  types.ErrMalformedToken,
		},
		{
			name:       "bad signature is reported before expiry",
			raw:        expiredForged.Raw,
			setupMocks: func(*MockDenylistInterface) {},
			expectErr:  types.ErrMalformedToken,
		},
		{
			name:       "tampered payload",
			raw:        tamper(valid.Raw),
			setupMocks: func(*MockDenylistInterface) {},
			expectErr:  types.ErrMalformedToken,
		},
		{
			name:       "other hmac algorithm",
			raw:        hs512,
			setupMocks: func(*MockDenylistInterface) {},
			expectErr:  types.ErrMalformedToken,
		},
		{
			name:       "unsigned token",
			raw:        unsigned,
			setupMocks: func(*MockDenylistInterface) {},
			expectErr:  types.ErrMalformedToken,
		},
		{
			name:       "garbage",
			raw:        "not-a-token",
			setupMocks: func(*MockDenylistInterface) {},
			expectErr:  types.ErrMalformedToken,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDenylist := NewMockDenylistInterface(ctrl)
			test.setupMocks(mockDenylist)

			principal, err := newTestVerifier(mockDenylist).VerifyToken(context.Background(), test.raw)

			if test.expectErr != nil {
				if !errors.Is(err, test.expectErr) {
					t.Fatalf("expected error %v, got %v", test.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if principal.ID != "user-1" || !principal.BoundTo(communityID) {
				t.Errorf("unexpected principal: %+v", principal)
			}
		})
	}
}

func TestJWTVerifier_DenylistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	token, _ := issuerAt(time.Now()).Issue(&types.User{ID: "user-1"})

	mockDenylist := NewMockDenylistInterface(ctrl)
	mockDenylist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))

	_, err := newTestVerifier(mockDenylist).VerifyToken(context.Background(), token.Raw)
	if err == nil {
		t.Fatal("expected an error when the denylist is unavailable")
	}

	if errors.Is(err, types.ErrRevoked) || errors.Is(err, types.ErrMalformedToken) {
		t.Errorf("denylist outage must not look like a token error, got %v", err)
	}
}

func TestClaims_PrincipalUnbound(t *testing.T) {
	p := (&Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u", ID: "j"}}).Principal()

	if p.CommunityID != nil {
		t.Errorf("expected nil binding, got %v", *p.CommunityID)
	}
}

// tamper flips the payload to a different subject while keeping the original signature.
func tamper(raw string) string {
	parts := strings.Split(raw, ".")
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "admin", ID: "x", Issuer: testIssuer, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}
	forged, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("x"))
	parts[1] = strings.Split(forged, ".")[1]
	return strings.Join(parts, ".")
}
