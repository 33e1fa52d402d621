// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package revocation

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
)

const memoryCleanupInterval = 10 * time.Minute

var _ DenylistInterface = (*MemoryDenylist)(nil)

// MemoryDenylist is a process-local denylist, only suitable for a single replica.
type MemoryDenylist struct {
	cache *cache.Cache

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *MemoryDenylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	_, span := d.tracer.Start(ctx, "revocation.MemoryDenylist.Revoke")
	defer span.End()

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	d.cache.Set(keyPrefix+":"+jti, struct{}{}, ttl)

	return nil
}

func (d *MemoryDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, span := d.tracer.Start(ctx, "revocation.MemoryDenylist.IsRevoked")
	defer span.End()

	_, found := d.cache.Get(keyPrefix + ":" + jti)

	return found, nil
}

func (d *MemoryDenylist) Purge(context.Context) (int64, error) {
	before := d.cache.ItemCount()
	d.cache.DeleteExpired()

	return int64(before - d.cache.ItemCount()), nil
}

func (d *MemoryDenylist) Ping(context.Context) error {
	return nil
}

func (d *MemoryDenylist) Close() error {
	d.cache.Flush()
	return nil
}

func NewMemoryDenylist(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *MemoryDenylist {
	d := new(MemoryDenylist)

	d.cache = cache.New(cache.NoExpiration, memoryCleanupInterval)

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
