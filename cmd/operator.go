// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/canonical/community-service/internal/config"
	"github.com/canonical/community-service/internal/db"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/storage"
	"github.com/canonical/community-service/internal/tracing"
)

var errMissingDSN = errors.New("no database configured: set DSN or pass --dsn")

// loadEnvFile reads the optional env file. Variables already set in the
// environment win over the file.
func loadEnvFile() error {
	if envFile == "" {
		return nil
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	return nil
}

// applyDSN lets --dsn override the environment and requires a DSN from either.
func applyDSN(spec *config.DatabaseSpec) error {
	if dsn != "" {
		spec.DSN = dsn
	}

	if spec.DSN == "" {
		return errMissingDSN
	}

	return nil
}

func loadSpecs() (*config.EnvSpec, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	if err := applyDSN(&specs.DatabaseSpec); err != nil {
		return nil, err
	}

	return specs, nil
}

// loadDatabaseSpecs reads only the database settings, for commands that must not
// depend on the rest of the service configuration.
func loadDatabaseSpecs() (*config.DatabaseSpec, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	spec := new(config.DatabaseSpec)
	if err := envconfig.Process("", spec); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	if err := applyDSN(spec); err != nil {
		return nil, err
	}

	return spec, nil
}

func dbConfig(spec config.DatabaseSpec, tracingEnabled bool) db.Config {
	return db.Config{
		DSN:             spec.DSN,
		MaxConns:        spec.DBMaxConns,
		MinConns:        spec.DBMinConns,
		MaxConnLifetime: spec.DBMaxConnLifetime,
		MaxConnIdleTime: spec.DBMaxConnIdleTime,
		TracingEnabled:  tracingEnabled,
	}
}

// operator bundles what the management commands need to act on the database directly.
type operator struct {
	specs    *config.EnvSpec
	dbClient *db.DBClient
	storage  *storage.Storage

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (o *operator) Close() {
	o.dbClient.Close()
}

func newOperator() (*operator, error) {
	specs, err := loadSpecs()
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(specs.LogLevel)
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("community-service-cli")

	dbClient, err := db.NewDBClient(dbConfig(specs.DatabaseSpec, false), tracer, monitor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	return &operator{
		specs:    specs,
		dbClient: dbClient,
		storage:  storage.NewStorage(dbClient, tracer, monitor, logger),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}, nil
}
