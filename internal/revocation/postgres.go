// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package revocation

import (
	"context"
	"time"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
)

var _ DenylistInterface = (*PostgresDenylist)(nil)

// PostgresDenylist keeps revoked identifiers in the revoked_tokens table.
type PostgresDenylist struct {
	storage StorageInterface
	db      pinger

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *PostgresDenylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ctx, span := d.tracer.Start(ctx, "revocation.PostgresDenylist.Revoke")
	defer span.End()

	return d.storage.RevokeToken(ctx, jti, expiresAt)
}

func (d *PostgresDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	ctx, span := d.tracer.Start(ctx, "revocation.PostgresDenylist.IsRevoked")
	defer span.End()

	return d.storage.IsTokenRevoked(ctx, jti)
}

// Purge deletes entries for tokens that are already expired.
func (d *PostgresDenylist) Purge(ctx context.Context) (int64, error) {
	ctx, span := d.tracer.Start(ctx, "revocation.PostgresDenylist.Purge")
	defer span.End()

	n, err := d.storage.PurgeExpiredRevocations(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	if n > 0 {
		d.logger.Debugf("purged %d expired revocations", n)
	}

	return n, nil
}

func (d *PostgresDenylist) Ping(ctx context.Context) error {
	if d.db == nil {
		return nil
	}
	return d.db.Ping(ctx)
}

func (d *PostgresDenylist) Close() error {
	return nil
}

func NewPostgresDenylist(storage StorageInterface, db pinger, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *PostgresDenylist {
	d := new(PostgresDenylist)

	d.storage = storage
	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
