package profile

import (
	"context"
	"fmt"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/repository"
	"github.com/docspot/docspot-api/internal/store"
)

// Service round-trips the three opaque settings documents the profile
// page owns. No cross-entity invariants apply to them.
type Service struct {
	repo repository.ProfileRepository
}

func NewService(repo repository.ProfileRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Bundle(ctx context.Context) (*model.ProfileBundle, error) {
	profile, err := s.repo.Get(ctx, store.KeyUserProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	notifications, err := s.repo.Get(ctx, store.KeyUserNotifications)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification settings: %w", err)
	}
	privacy, err := s.repo.Get(ctx, store.KeyUserPrivacy)
	if err != nil {
		return nil, fmt.Errorf("failed to load privacy settings: %w", err)
	}
	return &model.ProfileBundle{
		Profile:       profile,
		Notifications: notifications,
		Privacy:       privacy,
	}, nil
}

func (s *Service) SaveProfile(ctx context.Context, doc model.ProfileDocument) error {
	return s.repo.Put(ctx, store.KeyUserProfile, doc)
}

func (s *Service) SaveNotifications(ctx context.Context, doc model.ProfileDocument) error {
	return s.repo.Put(ctx, store.KeyUserNotifications, doc)
}

func (s *Service) SavePrivacy(ctx context.Context, doc model.ProfileDocument) error {
	return s.repo.Put(ctx, store.KeyUserPrivacy, doc)
}
