// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/canonical/community-service/internal/identity"
	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

var (
	ErrOwnerAlreadyBound = errors.New("owner is already bound to a community")
	ErrInvalidDomain     = errors.New("invalid domain")
)

var _ ProvisionerInterface = (*Provisioner)(nil)

// Provisioner creates a community together with every record it depends on.
type Provisioner struct {
	storage  StorageInterface
	tx       TxRunnerInterface
	defaults Defaults

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func provisionError(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", types.ErrProvisionFailed, step, err)
}

// Provision runs in a single transaction: it either leaves a fully initialised
// community bound to owner, or nothing at all. It is not idempotent, calling it
// twice with the same domain fails the second time on the unique domain.
func (p *Provisioner) Provision(ctx context.Context, owner *types.User, domain, displayName string) (*types.Community, error) {
	ctx, span := p.tracer.Start(ctx, "provisioning.Provisioner.Provision")
	defer span.End()

	if owner == nil {
		return nil, provisionError("owner", types.ErrValidation)
	}

	if owner.CommunityID != nil {
		return nil, provisionError("owner", ErrOwnerAlreadyBound)
	}

	domain = identity.NormalizeHost(domain)
	if domain == "" {
		return nil, provisionError("domain", ErrInvalidDomain)
	}

	var (
		community *types.Community
		shortID   string
	)

	err := p.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		community, shortID, err = p.provision(ctx, owner, domain, displayName)

		return err
	})
	if err != nil {
		p.logger.Errorf("failed to provision community for domain %s: %v", domain, err)
		return nil, err
	}

	owner.CommunityID = &community.ID
	owner.ShortID = &shortID
	owner.IsAdmin = true

	p.logger.Security().TenantProvisioned(owner.ID, community.ID, community.Domain)

	return community, nil
}

func (p *Provisioner) provision(ctx context.Context, owner *types.User, domain, displayName string) (*types.Community, string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, "", provisionError("identifier", err)
	}

	slug, err := newSlug(displayName)
	if err != nil {
		return nil, "", provisionError("slug", err)
	}

	shortID, err := newShortID()
	if err != nil {
		return nil, "", provisionError("short id", err)
	}

	community, err := p.storage.CreateCommunity(ctx, &types.Community{
		ID:       id.String(),
		Slug:     slug,
		Name:     displayName,
		Domain:   domain,
		Enabled:  true,
		Locale:   p.defaults.Locale,
		Currency: p.defaults.Currency,
		Country:  p.defaults.Country,
		OwnerID:  owner.ID,
	})
	if err != nil {
		return nil, "", provisionError("community", err)
	}

	if err := p.createBundle(ctx, community); err != nil {
		return nil, "", err
	}

	for i, page := range defaultPages {
		_, err := p.storage.CreatePage(ctx, &types.Page{
			CommunityID: community.ID,
			Title:       page.Title,
			EndPoint:    page.EndPoint,
			Position:    i,
			Published:   true,
		})
		if err != nil {
			return nil, "", provisionError(fmt.Sprintf("page %s", page.EndPoint), err)
		}
	}

	_, err = p.storage.CreateContactSubmission(ctx, &types.ContactSubmission{
		CommunityID: community.ID,
		Name:        "Sample Visitor",
		Email:       "visitor@example.com",
		Message:     fmt.Sprintf("This is a sample message. Submissions from the %s contact page show up here.", displayName),
		Sample:      true,
	})
	if err != nil {
		return nil, "", provisionError("sample contact", err)
	}

	if err := p.storage.CreateTranslations(ctx, translationEntries(community.ID, community.Locale, displayName)); err != nil {
		return nil, "", provisionError("translations", err)
	}

	if err := p.storage.BindUserToCommunity(ctx, owner.ID, community.ID, shortID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			err = ErrOwnerAlreadyBound
		}
		return nil, "", provisionError("owner binding", err)
	}

	return community, shortID, nil
}

func (p *Provisioner) createBundle(ctx context.Context, community *types.Community) error {
	_, err := p.storage.CreateConfiguration(ctx, &types.Configuration{
		CommunityID:       community.ID,
		Theme:             defaultTheme,
		PrimaryColor:      defaultPrimaryColor,
		SecondaryColor:    defaultSecondaryColor,
		FontFamily:        defaultFontFamily,
		AllowRegistration: true,
	})
	if err != nil {
		return provisionError("configuration", err)
	}

	_, err = p.storage.CreateLandingPage(ctx, &types.LandingPage{
		CommunityID: community.ID,
		Title:       community.Name,
		Sections:    landingSections(community.Name),
	})
	if err != nil {
		return provisionError("landing page", err)
	}

	if _, err := p.storage.CreateNavBar(ctx, &types.NavBar{CommunityID: community.ID, Links: navLinks()}); err != nil {
		return provisionError("nav bar", err)
	}

	_, err = p.storage.CreateFooter(ctx, &types.Footer{
		CommunityID: community.ID,
		Sections:    footerSections(),
		Copyright:   fmt.Sprintf("© %s", community.Name),
	})
	if err != nil {
		return provisionError("footer", err)
	}

	return nil
}

func NewProvisioner(
	storage StorageInterface,
	tx TxRunnerInterface,
	defaults Defaults,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Provisioner {
	p := new(Provisioner)

	p.storage = storage
	p.tx = tx
	p.defaults = defaults

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}
