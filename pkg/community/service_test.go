// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package community

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/community-service/internal/logging"
	"github.com/canonical/community-service/internal/monitoring"
	"github.com/canonical/community-service/internal/tracing"
	"github.com/canonical/community-service/internal/types"
)

func newTestService(storage StorageInterface) *Service {
	return NewService(storage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestService_GetSite(t *testing.T) {
	acme := &types.Community{ID: "community-acme", Domain: "acme.io", Enabled: true}

	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expectErr  bool
	}{
		{
			name: "success",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetLandingPage(gomock.Any(), acme.ID).Return(&types.LandingPage{Title: "Acme"}, nil)
				s.EXPECT().GetNavBar(gomock.Any(), acme.ID).Return(&types.NavBar{}, nil)
				s.EXPECT().GetFooter(gomock.Any(), acme.ID).Return(&types.Footer{}, nil)
			},
		},
		{
			name: "missing nav bar",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetLandingPage(gomock.Any(), acme.ID).Return(&types.LandingPage{}, nil)
				s.EXPECT().GetNavBar(gomock.Any(), acme.ID).Return(nil, types.ErrNotFound)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := NewMockStorageInterface(ctrl)
			tt.setupMocks(storage)

			bundle, err := newTestService(storage).GetSite(context.Background(), acme)
			if tt.expectErr {
				if !errors.Is(err, types.ErrNotFound) {
					t.Fatalf("expected not found, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if bundle.Community != acme || bundle.LandingPage.Title != "Acme" {
				t.Errorf("unexpected bundle %+v", bundle)
			}
		})
	}
}

func TestService_SubmitContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := NewMockStorageInterface(ctrl)
	storage.EXPECT().CreateContactSubmission(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *types.ContactSubmission) (*types.ContactSubmission, error) {
			if c.Sample {
				t.Errorf("visitor submissions must never be flagged as samples")
			}
			c.ID = "contact-1"
			return c, nil
		},
	)

	submission, err := newTestService(storage).SubmitContact(context.Background(), &types.ContactSubmission{
		CommunityID: "community-acme",
		Name:        "Jane",
		Email:       "jane@example.com",
		Message:     "hello",
		Sample:      true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if submission.ID != "contact-1" {
		t.Errorf("expected stored submission, got %+v", submission)
	}
}

func TestService_UpdateConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &types.Configuration{CommunityID: "community-acme", AllowRegistration: false}
	paths := []string{"allow_registration"}

	storage := NewMockStorageInterface(ctrl)
	storage.EXPECT().UpdateConfiguration(gomock.Any(), cfg, paths).Return(cfg, nil)

	updated, err := newTestService(storage).UpdateConfiguration(context.Background(), cfg, paths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.AllowRegistration {
		t.Errorf("expected registration to be closed")
	}
}

func TestService_UpdateCommunityError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := &types.Community{ID: "community-acme", Name: "Acme"}

	storage := NewMockStorageInterface(ctrl)
	storage.EXPECT().UpdateCommunity(gomock.Any(), c, []string{"name"}).Return(nil, types.ErrNotFound)

	if _, err := newTestService(storage).UpdateCommunity(context.Background(), c, []string{"name"}); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
