// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/canonical/community-service/internal/db"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/storage"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
	"github.com/canonical/community-service/migrations"
)

// failingStorage rejects one default page so the transaction has to roll back.
type failingStorage struct {
	*storage.Storage
	failOn string
}

func (f *failingStorage) CreatePage(ctx context.Context, p *types.Page) (*types.Page, error) {
	if p.EndPoint == f.failOn {
		return nil, storage.ErrDuplicateKey
	}

	return f.Storage.CreatePage(ctx, p)
}

// setupDatabase connects to the database named by COMMUNITY_TEST_DSN and applies the
// embedded migrations. `make test-integration` starts Postgres from docker-compose.dev.yml
// and sets the variable, plain `go test ./...` skips these tests.
func setupDatabase(t *testing.T) (*db.DBClient, *storage.Storage) {
	t.Helper()

	dsn := os.Getenv("COMMUNITY_TEST_DSN")
	if dsn == "" {
		t.Skip("COMMUNITY_TEST_DSN not set")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("invalid DSN: %v", err)
	}

	sqlDB := stdlib.OpenDB(*config)
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.EmbedMigrations)
	if err != nil {
		t.Fatalf("failed to create migration provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	client, err := db.NewDBClient(db.Config{DSN: dsn, MaxConns: 4, MinConns: 1, MaxConnLifetime: time.Minute, MaxConnIdleTime: time.Minute}, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(client.Close)

	return client, storage.NewStorage(client, tracer, monitor, logger)
}

func createOwner(t *testing.T, s *storage.Storage) *types.User {
	t.Helper()

	owner, err := s.CreateUser(context.Background(), &types.User{
		Email:        fmt.Sprintf("owner-%s@example.com", uuid.NewString()),
		PasswordHash: "not-a-real-hash",
	})
	if err != nil {
		t.Fatalf("failed to create owner: %v", err)
	}

	return owner
}

func newIntegrationProvisioner(client *db.DBClient, s StorageInterface) *Provisioner {
	return NewProvisioner(s, client, NewDefaults("", "", ""), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestIntegration_ProvisionAcme(t *testing.T) {
	client, s := setupDatabase(t)
	ctx := context.Background()

	owner := createOwner(t, s)
	domain := fmt.Sprintf("acme-%s.io", uuid.NewString()[:8])

	community, err := newIntegrationProvisioner(client, s).Provision(ctx, owner, domain, "Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = s.DeleteCommunity(ctx, community.ID) })

	stored, err := s.GetCommunityByDomain(ctx, domain)
	if err != nil || stored.ID != community.ID {
		t.Fatalf("expected community for %s, got %v, %v", domain, stored, err)
	}

	if _, err := s.GetConfiguration(ctx, community.ID); err != nil {
		t.Errorf("missing configuration: %v", err)
	}
	if _, err := s.GetLandingPage(ctx, community.ID); err != nil {
		t.Errorf("missing landing page: %v", err)
	}
	if _, err := s.GetNavBar(ctx, community.ID); err != nil {
		t.Errorf("missing nav bar: %v", err)
	}
	if _, err := s.GetFooter(ctx, community.ID); err != nil {
		t.Errorf("missing footer: %v", err)
	}

	pages, err := s.ListPages(ctx, community.ID, false)
	if err != nil || len(pages) != 6 {
		t.Fatalf("expected 6 pages, got %d, %v", len(pages), err)
	}

	user, err := s.GetUserByID(ctx, owner.ID)
	if err != nil {
		t.Fatalf("failed to reload owner: %v", err)
	}

	if !user.BoundTo(community.ID) || !user.IsAdmin {
		t.Errorf("owner not bound as administrator: %+v", user)
	}

	// a second call with the same domain must not leave anything behind
	second := createOwner(t, s)

	_, err = newIntegrationProvisioner(client, s).Provision(ctx, second, domain, "Acme Again")
	if !errors.Is(err, types.ErrProvisionFailed) || !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("expected duplicate key provision failure, got %v", err)
	}

	reloaded, err := s.GetUserByID(ctx, second.ID)
	if err != nil || reloaded.CommunityID != nil {
		t.Fatalf("second owner should stay unbound: %+v, %v", reloaded, err)
	}
}

func TestIntegration_ProvisionRollsBackOnPageFailure(t *testing.T) {
	client, s := setupDatabase(t)
	ctx := context.Background()

	owner := createOwner(t, s)
	domain := fmt.Sprintf("rollback-%s.io", uuid.NewString()[:8])

	p := newIntegrationProvisioner(client, &failingStorage{Storage: s, failOn: "/portfolio"})

	if _, err := p.Provision(ctx, owner, domain, "Rollback"); !errors.Is(err, types.ErrProvisionFailed) {
		t.Fatalf("expected provision failure, got %v", err)
	}

	if _, err := s.GetCommunityByDomain(ctx, domain); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected no community after rollback, got %v", err)
	}

	user, err := s.GetUserByID(ctx, owner.ID)
	if err != nil {
		t.Fatalf("failed to reload owner: %v", err)
	}

	if user.CommunityID != nil || user.IsAdmin {
		t.Fatalf("owner binding changed despite rollback: %+v", user)
	}
}
