// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/community-service/internal/logging"
)

type Config struct {
	OtelHTTPEndpoint string
	OtelGRPCEndpoint string
	Logger           logging.LoggerInterface

	Enabled bool
}

// NewConfig builds the tracing configuration, the gRPC endpoint wins when both are set.
func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	return &Config{
		OtelGRPCEndpoint: otelGRPCEndpoint,
		OtelHTTPEndpoint: otelHTTPEndpoint,
		Logger:           logger,
		Enabled:          enabled,
	}
}

func NewNoopConfig() *Config {
	return &Config{Enabled: false, Logger: logging.NewNoopLogger()}
}
