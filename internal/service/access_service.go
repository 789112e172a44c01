package service

import (
	"context"

	"lele-api/internal/domain"
	"lele-api/internal/repository"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
	"lele-api/pkg/utils"
)

// AccessService implements the signup gate: phone allow-list checks and
// single-use invite codes.
type AccessService struct {
	allowed *repository.AllowedPhoneRepository
	invites *repository.InviteRepository
	cache   *CacheService
	logger  *logger.Logger
}

func NewAccessService(
	allowed *repository.AllowedPhoneRepository,
	invites *repository.InviteRepository,
	cache *CacheService,
	logger *logger.Logger,
) *AccessService {
	return &AccessService{allowed: allowed, invites: invites, cache: cache, logger: logger}
}

// VerifyPhone reports whether the phone is allow-listed. An unlisted phone
// is a valid=false answer, not an error.
func (s *AccessService) VerifyPhone(ctx context.Context, rawPhone string) (*domain.PhoneVerifyResponse, error) {
	phone, err := utils.NormalizePhoneNumber(rawPhone)
	if err != nil {
		return nil, errors.NewValidationError("Invalid phone number", map[string]interface{}{
			"field": "phone",
		})
	}

	entry, err := s.allowed.GetByPhone(ctx, phone)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check allow-list", err)
	}
	if entry == nil {
		return &domain.PhoneVerifyResponse{Valid: false}, nil
	}

	return &domain.PhoneVerifyResponse{Valid: true, Name: entry.Name, IsAdmin: entry.IsAdmin}, nil
}

// VerifyInvite reports whether the code exists and is still unused, without
// consuming it.
func (s *AccessService) VerifyInvite(ctx context.Context, code string) (bool, error) {
	if code == "" {
		return false, errors.NewValidationError("Invite code is required", map[string]interface{}{
			"field": "code",
		})
	}

	invite, err := s.invites.GetByCode(ctx, code)
	if err != nil {
		return false, errors.NewInternalError("Failed to check invite code", err)
	}
	return invite != nil && !invite.Used(), nil
}

// RedeemInvite consumes the code for the authenticated user. The Redis lock
// keeps retries of the same in-flight redemption from racing; the conditional
// UPDATE underneath is what actually guarantees single use.
func (s *AccessService) RedeemInvite(ctx context.Context, code, userID string) error {
	if code == "" {
		return errors.NewValidationError("Invite code is required", map[string]interface{}{
			"field": "code",
		})
	}

	acquired, err := s.cache.AcquireInviteLock(ctx, code, userID)
	if err != nil {
		s.logger.WithError(err).Warn("Invite lock unavailable, relying on conditional update")
	} else if !acquired {
		return errors.NewValidationError("Invite code is already being redeemed", nil)
	}

	invite, err := s.invites.GetByCode(ctx, code)
	if err != nil {
		return errors.NewInternalError("Failed to load invite code", err)
	}
	if invite == nil {
		return errors.NewNotFoundError("Invite code not found")
	}
	if invite.Used() {
		return errors.NewValidationError("Invite code has already been used", nil)
	}

	ok, err := s.invites.MarkUsed(ctx, code, userID)
	if err != nil {
		return errors.NewInternalError("Failed to redeem invite code", err)
	}
	if !ok {
		// Lost the race to a concurrent redeemer
		return errors.NewValidationError("Invite code has already been used", nil)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": userID,
	}).Info("Invite code redeemed")
	return nil
}
