package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lele-api/internal/domain"
	"lele-api/internal/ranking"
	"lele-api/internal/repository"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
	"lele-api/pkg/utils"
)

const (
	inviteCodeLength   = 6
	inviteCodeCharset  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeAttempts = 5
)

// AdminService implements allow-list management, invite generation and the
// yearly reset.
type AdminService struct {
	allowed  *repository.AllowedPhoneRepository
	invites  *repository.InviteRepository
	winners  *repository.WinnerRepository
	votes    *repository.VoteRepository
	profiles *repository.ProfileRepository
	cache    *CacheService
	logger   *logger.Logger

	now func() time.Time
}

func NewAdminService(
	allowed *repository.AllowedPhoneRepository,
	invites *repository.InviteRepository,
	winners *repository.WinnerRepository,
	votes *repository.VoteRepository,
	profiles *repository.ProfileRepository,
	cache *CacheService,
	logger *logger.Logger,
) *AdminService {
	return &AdminService{
		allowed:  allowed,
		invites:  invites,
		winners:  winners,
		votes:    votes,
		profiles: profiles,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

// AddAllowedPhone allow-lists a phone, updating the entry when it exists
func (s *AdminService) AddAllowedPhone(ctx context.Context, req *domain.AllowedPhoneRequest) (*domain.AllowedPhone, error) {
	if req.Name == "" {
		return nil, errors.NewValidationError("Name is required", map[string]interface{}{
			"field": "name",
		})
	}

	phone, err := utils.NormalizePhoneNumber(req.Phone)
	if err != nil {
		return nil, errors.NewValidationError("Invalid phone number", map[string]interface{}{
			"field": "phone",
		})
	}

	entry := &domain.AllowedPhone{
		ID:      uuid.NewString(),
		Phone:   phone,
		Name:    req.Name,
		IsAdmin: req.IsAdmin,
	}
	if err := s.allowed.Upsert(ctx, entry); err != nil {
		return nil, errors.NewInternalError("Failed to allow-list phone", err)
	}

	s.logger.WithField("name", entry.Name).Info("Phone allow-listed")
	return entry, nil
}

// ListAllowedPhones returns the full allow-list
func (s *AdminService) ListAllowedPhones(ctx context.Context) ([]domain.AllowedPhone, error) {
	entries, err := s.allowed.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list allowed phones", err)
	}
	if entries == nil {
		entries = []domain.AllowedPhone{}
	}
	return entries, nil
}

// GenerateInvite creates a fresh single-use code, retrying on the rare
// collision.
func (s *AdminService) GenerateInvite(ctx context.Context) (*domain.InviteCode, error) {
	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		code, err := randomInviteCode()
		if err != nil {
			return nil, errors.NewInternalError("Failed to generate invite code", err)
		}

		existing, err := s.invites.GetByCode(ctx, code)
		if err != nil {
			return nil, errors.NewInternalError("Failed to check invite code", err)
		}
		if existing != nil {
			continue
		}

		invite, err := s.invites.Create(ctx, uuid.NewString(), code)
		if err != nil {
			return nil, errors.NewInternalError("Failed to create invite code", err)
		}
		return invite, nil
	}
	return nil, errors.NewInternalError("Failed to generate a unique invite code",
		fmt.Errorf("exhausted %d attempts", inviteCodeAttempts))
}

// ListUnusedInvites returns codes still available for signup
func (s *AdminService) ListUnusedInvites(ctx context.Context) ([]domain.InviteCode, error) {
	invites, err := s.invites.ListUnused(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list invite codes", err)
	}
	if invites == nil {
		invites = []domain.InviteCode{}
	}
	return invites, nil
}

// ResetYear archives the year's winner and wipes its votes. The winner is
// picked by plain vote count regardless of the configured scoring mode, and
// only archived when somebody actually received a vote. Archive and delete
// commit together or not at all.
func (s *AdminService) ResetYear(ctx context.Context, req *domain.ResetRequest) (*domain.ResetResult, error) {
	year := req.Year
	if year == 0 {
		year = s.now().Year()
	}

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load profiles", err)
	}
	votes, err := s.votes.ListByYear(ctx, year)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load votes", err)
	}

	var winner *domain.Winner
	if summary, ok := ranking.YearWinner(profiles, votes, year); ok {
		winner = &domain.Winner{
			ID:         uuid.NewString(),
			UserID:     summary.UserID,
			Year:       year,
			TotalVotes: summary.VoteCount,
		}
	}

	if err := s.winners.ArchiveAndReset(ctx, winner, year); err != nil {
		return nil, errors.NewInternalError("Failed to reset year", err)
	}

	ids := make([]string, 0, len(profiles))
	for i := range profiles {
		ids = append(ids, profiles[i].ID)
	}
	s.cache.InvalidateVoteCaches(ctx, year, ids...)

	result := &domain.ResetResult{Success: true, Year: year}
	if winner != nil {
		result.Winner = &domain.WinnerSummary{UserID: winner.UserID, VoteCount: winner.TotalVotes}
	}

	s.logger.WithFields(map[string]interface{}{
		"year":        year,
		"had_winner":  winner != nil,
		"votes_wiped": len(votes),
	}).Info("Year reset completed")
	return result, nil
}

// ListWinners returns the archived winners of past years
func (s *AdminService) ListWinners(ctx context.Context) ([]domain.Winner, error) {
	winners, err := s.winners.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list winners", err)
	}
	if winners == nil {
		winners = []domain.Winner{}
	}
	return winners, nil
}

// randomInviteCode draws a 6 character A-Z0-9 code from crypto/rand
func randomInviteCode() (string, error) {
	buf := make([]byte, inviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = inviteCodeCharset[int(buf[i])%len(inviteCodeCharset)]
	}
	return string(buf), nil
}
