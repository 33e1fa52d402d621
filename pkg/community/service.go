// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package community

import (
	"context"
	"fmt"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// GetSite assembles the public bundle of a community.
func (s *Service) GetSite(ctx context.Context, community *types.Community) (*types.Bundle, error) {
	ctx, span := s.tracer.Start(ctx, "community.Service.GetSite")
	defer span.End()

	landing, err := s.storage.GetLandingPage(ctx, community.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load landing page: %w", err)
	}

	nav, err := s.storage.GetNavBar(ctx, community.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load nav bar: %w", err)
	}

	footer, err := s.storage.GetFooter(ctx, community.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load footer: %w", err)
	}

	return &types.Bundle{
		Community:   community,
		LandingPage: landing,
		NavBar:      nav,
		Footer:      footer,
	}, nil
}

func (s *Service) ListPages(ctx context.Context, communityID string, publishedOnly bool) ([]*types.Page, error) {
	ctx, span := s.tracer.Start(ctx, "community.Service.ListPages")
	defer span.End()

	return s.storage.ListPages(ctx, communityID, publishedOnly)
}

func (s *Service) SubmitContact(ctx context.Context, submission *types.ContactSubmission) (*types.ContactSubmission, error) {
	ctx, span := s.tracer.Start(ctx, "community.Service.SubmitContact")
	defer span.End()

	submission.Sample = false

	return s.storage.CreateContactSubmission(ctx, submission)
}

func (s *Service) ListContacts(ctx context.Context, communityID string, page, size int64) ([]*types.ContactSubmission, error) {
	ctx, span := s.tracer.Start(ctx, "community.Service.ListContacts")
	defer span.End()

	return s.storage.ListContactSubmissions(ctx, communityID, page, size)
}

func (s *Service) GetCommunity(ctx context.Context, id string) (*types.Community, error) {
	ctx, span := s.tracer.Start(ctx, "community.Service.GetCommunity")
	defer span.End()

	return s.storage.GetCommunityByID(ctx, id)
}

func (s *Service) UpdateCommunity(ctx context.Context, c *types.Community, paths []string) (*types.Community, error) {
	ctx, span := s.tracer.Start(ctx, "community.Service.UpdateCommunity")
	defer span.End()

	updated, err := s.storage.UpdateCommunity(ctx, c, paths)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("community %s updated, fields %v", c.ID, paths)

	return updated, nil
}

func (s *Service) GetConfiguration(ctx context.Context, communityID string) (*types.Configuration, error) {
	ctx, span := s.tracer.Start(ctx, "community.Service.GetConfiguration")
	defer span.End()

	return s.storage.GetConfiguration(ctx, communityID)
}

func (s *Service) UpdateConfiguration(ctx context.Context, cfg *types.Configuration, paths []string) (*types.Configuration, error) {
	ctx, span := s.tracer.Start(ctx, "community.Service.UpdateConfiguration")
	defer span.End()

	updated, err := s.storage.UpdateConfiguration(ctx, cfg, paths)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("configuration of community %s updated, fields %v", cfg.CommunityID, paths)

	return updated, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
