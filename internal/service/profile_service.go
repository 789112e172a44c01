package service

import (
	"context"

	"lele-api/internal/domain"
	"lele-api/internal/repository"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
	"lele-api/pkg/utils"
)

// ProfileService provisions and serves participant profiles. Profiles are
// created lazily on first authenticated access, gated by the phone allow-list.
type ProfileService struct {
	profiles *repository.ProfileRepository
	allowed  *repository.AllowedPhoneRepository
	logger   *logger.Logger
}

func NewProfileService(
	profiles *repository.ProfileRepository,
	allowed *repository.AllowedPhoneRepository,
	logger *logger.Logger,
) *ProfileService {
	return &ProfileService{profiles: profiles, allowed: allowed, logger: logger}
}

// EnsureProfile returns the caller's profile, provisioning it from the
// allow-list on first access. Callers whose phone is not allow-listed are
// rejected.
func (s *ProfileService) EnsureProfile(ctx context.Context, user *domain.UserProfile) (*domain.Profile, error) {
	existing, err := s.profiles.GetByID(ctx, user.Sub)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load profile", err)
	}
	if existing != nil {
		return existing, nil
	}

	phone, err := utils.NormalizePhoneNumber(user.Phone)
	if err != nil {
		return nil, errors.NewAuthorizationError("Account has no valid phone number")
	}

	entry, err := s.allowed.GetByPhone(ctx, phone)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check allow-list", err)
	}
	if entry == nil {
		return nil, errors.NewAuthorizationError("Phone number is not allowed to participate")
	}

	name := entry.Name
	if user.Name != "" {
		name = user.Name
	}

	profile := &domain.Profile{
		ID:      user.Sub,
		Name:    name,
		Phone:   phone,
		IsAdmin: entry.IsAdmin,
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, errors.NewInternalError("Failed to create profile", err)
	}

	s.logger.WithField("user_id", user.Sub).Info("Profile provisioned from allow-list")
	return profile, nil
}

// UpdateProfile updates the caller's display name. The phone and admin flag
// always follow the allow-list, never the request.
func (s *ProfileService) UpdateProfile(ctx context.Context, user *domain.UserProfile, req *domain.ProfileRequest) (*domain.Profile, error) {
	if req.Name == "" {
		return nil, errors.NewValidationError("Name is required", map[string]interface{}{
			"field": "name",
		})
	}

	profile, err := s.EnsureProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, errors.NewInternalError("Failed to update profile", err)
	}
	return profile, nil
}

// GetByID returns another participant's profile
func (s *ProfileService) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load profile", err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("Participant not found")
	}
	return profile, nil
}
