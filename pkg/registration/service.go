// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/community-service/internal/identity"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/password"
	"github.com/canonical/community-service/internal/storage"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	hasher      HasherInterface
	provisioner ProvisionerInterface
	guard       GuardInterface
	issuer      TokenIssuerInterface
	tx          TxRunnerInterface

	redirectURLTemplate string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Register signs up a new owner and provisions their community in one transaction.
// community is the tenant resolved from the request host, nil on the platform host.
func (s *Service) Register(ctx context.Context, community *types.Community, req *Request) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "registration.Service.Register")
	defer span.End()

	if err := s.guard.CheckRegistration(ctx, community); err != nil {
		return nil, err
	}

	domain := identity.NormalizeHost(req.Domain)
	if err := s.checkAvailability(ctx, domain, req.Email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if password.IsTooLong(err) {
		return nil, fmt.Errorf("%w: password is too long", types.ErrValidation)
	}
	if err != nil {
		return nil, err
	}

	var (
		owner   *types.User
		created *types.Community
	)

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		owner, err = s.storage.CreateUser(ctx, &types.User{
			Email:        strings.TrimSpace(req.Email),
			PasswordHash: hash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return fmt.Errorf("%w: email already registered", types.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("failed to create owner: %w", err)
		}

		created, err = s.provisioner.Provision(ctx, owner, domain, req.Name)

		return err
	})
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.IssueToken(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Infof("registered user %s as owner of community %s", owner.ID, created.ID)

	return &Result{
		Principal:   owner,
		Community:   created,
		Token:       token.Raw,
		ExpiresAt:   token.ExpiresAt,
		RedirectURL: s.redirectURL(created),
	}, nil
}

// checkAvailability rejects a taken domain or email before any write.
func (s *Service) checkAvailability(ctx context.Context, domain, email string) error {
	_, err := s.storage.GetCommunityByDomain(ctx, domain)
	switch {
	case err == nil:
		return fmt.Errorf("%w: domain already in use", types.ErrConflict)
	case !errors.Is(err, types.ErrNotFound):
		return fmt.Errorf("failed to check domain: %w", err)
	}

	_, err = s.storage.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return fmt.Errorf("%w: email already registered", types.ErrConflict)
	case !errors.Is(err, types.ErrNotFound):
		return fmt.Errorf("failed to check email: %w", err)
	}

	return nil
}

func (s *Service) redirectURL(c *types.Community) string {
	if s.redirectURLTemplate == "" {
		return ""
	}

	return fmt.Sprintf(s.redirectURLTemplate, c.Domain)
}

func NewService(
	storage StorageInterface,
	hasher HasherInterface,
	provisioner ProvisionerInterface,
	guard GuardInterface,
	issuer TokenIssuerInterface,
	tx TxRunnerInterface,
	redirectURLTemplate string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:             storage,
		hasher:              hasher,
		provisioner:         provisioner,
		guard:               guard,
		issuer:              issuer,
		tx:                  tx,
		redirectURLTemplate: redirectURLTemplate,
		tracer:              tracer,
		monitor:             monitor,
		logger:              logger,
	}
}
