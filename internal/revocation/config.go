// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package revocation

import (
	"fmt"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
)

const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"

	keyPrefix = "revoked"
)

type Config struct {
	Driver string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// NewDenylist builds the denylist selected by cfg.Driver.
// storage and db are only used by the postgres driver.
func NewDenylist(
	cfg Config,
	storage StorageInterface,
	db pinger,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (DenylistInterface, error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		return NewPostgresDenylist(storage, db, tracer, monitor, logger), nil
	case DriverRedis:
		return NewRedisDenylist(cfg, tracer, monitor, logger)
	case DriverMemory:
		return NewMemoryDenylist(tracer, monitor, logger), nil
	default:
		return nil, fmt.Errorf("unknown denylist driver %q", cfg.Driver)
	}
}
