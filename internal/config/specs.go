// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// DatabaseSpec is the subset of the environment needed to reach Postgres.
// Migrations read only this part so they run without the token secret.
type DatabaseSpec struct {
	DSN string `envconfig:"DSN"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
}

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DatabaseSpec

	TokenSecret   string        `envconfig:"token_secret" required:"true"`
	TokenLifetime time.Duration `envconfig:"token_lifetime" default:"24h"`
	TokenIssuer   string        `envconfig:"token_issuer" default:"community-service"`
	BcryptCost    int           `envconfig:"bcrypt_cost" default:"12"`

	DenylistDriver        string        `envconfig:"denylist_driver" default:"postgres"`
	DenylistPurgeInterval time.Duration `envconfig:"denylist_purge_interval" default:"1h"`
	RedisAddr             string        `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword         string        `envconfig:"redis_password"`
	RedisDB               int           `envconfig:"redis_db" default:"0"`

	TrustForwardedHost bool     `envconfig:"trust_forwarded_host" default:"false"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DefaultLocale       string `envconfig:"default_locale" default:"en"`
	DefaultCurrency     string `envconfig:"default_currency" default:"USD"`
	DefaultCountry      string `envconfig:"default_country" default:"US"`
	RedirectURLTemplate string `envconfig:"redirect_url_template" default:"https://%s/admin"`
}
