// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package revocation

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
)

func TestMemoryDenylist(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDenylist(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	defer d.Close()

	tests := []struct {
		name      string
		jti       string
		expiresAt time.Time
		revoked   bool
	}{
		{name: "live token is revoked", jti: "live", expiresAt: time.Now().Add(time.Hour), revoked: true},
		{name: "expired token is not stored", jti: "expired", expiresAt: time.Now().Add(-time.Minute), revoked: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := d.Revoke(ctx, test.jti, test.expiresAt); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			revoked, err := d.IsRevoked(ctx, test.jti)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if revoked != test.revoked {
				t.Errorf("expected revoked %v, got %v", test.revoked, revoked)
			}
		})
	}

	if revoked, _ := d.IsRevoked(ctx, "unknown"); revoked {
		t.Error("unknown jti reported as revoked")
	}
}

func TestMemoryDenylistIdempotent(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDenylist(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	exp := time.Now().Add(time.Hour)
	for i := 0; i < 2; i++ {
		if err := d.Revoke(ctx, "jti", exp); err != nil {
			t.Fatalf("unexpected error on revoke %d: %v", i, err)
		}
	}

	if revoked, _ := d.IsRevoked(ctx, "jti"); !revoked {
		t.Error("expected jti to stay revoked")
	}
}

func TestMemoryDenylistPurge(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDenylist(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	if err := d.Revoke(ctx, "short", time.Now().Add(10*time.Millisecond)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	n, err := d.Purge(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n != 1 {
		t.Errorf("expected 1 purged entry, got %d", n)
	}
}

func TestPostgresDenylist(t *testing.T) {
	boom := errors.New("boom")
	exp := time.Now().Add(time.Hour)

	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		run        func(context.Context, *PostgresDenylist) error
		expectErr  error
	}{
		{
			name: "revoke stores jti with expiry",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().RevokeToken(gomock.Any(), "jti", exp).Return(nil)
			},
			run: func(ctx context.Context, d *PostgresDenylist) error {
				return d.Revoke(ctx, "jti", exp)
			},
		},
		{
			name: "lookup reports revoked",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().IsTokenRevoked(gomock.Any(), "jti").Return(true, nil)
			},
			run: func(ctx context.Context, d *PostgresDenylist) error {
				revoked, err := d.IsRevoked(ctx, "jti")
				if err == nil && !revoked {
					return errors.New("expected revoked")
				}
				return err
			},
		},
		{
			name: "purge propagates storage error",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().PurgeExpiredRevocations(gomock.Any(), gomock.Any()).Return(int64(0), boom)
			},
			run: func(ctx context.Context, d *PostgresDenylist) error {
				_, err := d.Purge(ctx)
				return err
			},
			expectErr: boom,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			d := NewPostgresDenylist(mockStorage, nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			err := test.run(context.Background(), d)
			if !errors.Is(err, test.expectErr) {
				t.Errorf("expected error %v, got %v", test.expectErr, err)
			}
		})
	}
}

func TestNewDenylist(t *testing.T) {
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	d, err := NewDenylist(Config{Driver: DriverMemory}, nil, nil, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := d.(*MemoryDenylist); !ok {
		t.Errorf("expected memory denylist, got %T", d)
	}

	d, err = NewDenylist(Config{}, nil, nil, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := d.(*PostgresDenylist); !ok {
		t.Errorf("expected postgres denylist by default, got %T", d)
	}

	if _, err := NewDenylist(Config{Driver: "etcd"}, nil, nil, tracer, monitor, logger); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestRedisDenylist(t *testing.T) {
	addr := os.Getenv("COMMUNITY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("COMMUNITY_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	d, err := NewRedisDenylist(Config{RedisAddr: addr}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer d.Close()

	jti := uuid.NewString()
	if err := d.Revoke(ctx, jti, time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	revoked, err := d.IsRevoked(ctx, jti)
	if err != nil || !revoked {
		t.Errorf("expected revoked jti, got %v (%v)", revoked, err)
	}

	if revoked, _ := d.IsRevoked(ctx, uuid.NewString()); revoked {
		t.Error("unknown jti reported as revoked")
	}
}
