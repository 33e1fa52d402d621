// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
)

var _ DenylistInterface = (*RedisDenylist)(nil)

// RedisDenylist stores one key per revoked token, expiring with the token.
type RedisDenylist struct {
	client *redis.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *RedisDenylist) key(jti string) string {
	return keyPrefix + ":" + jti
}

func (d *RedisDenylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ctx, span := d.tracer.Start(ctx, "revocation.RedisDenylist.Revoke")
	defer span.End()

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// already expired, validation rejects it on expiry
		return nil
	}

	if err := d.client.Set(ctx, d.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	ctx, span := d.tracer.Start(ctx, "revocation.RedisDenylist.IsRevoked")
	defer span.End()

	n, err := d.client.Exists(ctx, d.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}

	return n > 0, nil
}

// Purge is a no-op, redis expires the keys on its own.
func (d *RedisDenylist) Purge(context.Context) (int64, error) {
	return 0, nil
}

func (d *RedisDenylist) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

func (d *RedisDenylist) Close() error {
	return d.client.Close()
}

func NewRedisDenylist(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*RedisDenylist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	d := new(RedisDenylist)
	d.client = client

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}
