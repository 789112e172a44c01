package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"lele-api/internal/domain"
	"lele-api/internal/rageclick"
	"lele-api/internal/repository"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
	"lele-api/pkg/redis"
	"lele-api/pkg/sms"
)

// VotingService handles vote submission and the public vote feed
type VotingService struct {
	votes    *repository.VoteRepository
	profiles *repository.ProfileRepository
	cache    *CacheService
	detector *rageclick.Detector
	notifier sms.Notifier
	logger   *logger.Logger

	// Injectable clock, drives the year partition and tests
	now func() time.Time
}

func NewVotingService(
	votes *repository.VoteRepository,
	profiles *repository.ProfileRepository,
	cache *CacheService,
	detector *rageclick.Detector,
	notifier sms.Notifier,
	logger *logger.Logger,
) *VotingService {
	return &VotingService{
		votes:    votes,
		profiles: profiles,
		cache:    cache,
		detector: detector,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// SubmitVote validates and records a vote for the current year. Votes are
// immutable once inserted. A justified vote triggers a best-effort SMS to the
// candidate; rapid repeated submissions arm a self-vote penalty delivered
// shortly after the response.
func (s *VotingService) SubmitVote(ctx context.Context, voterID string, req *domain.VoteRequest) (*domain.VoteResponse, error) {
	if req.CandidateID == "" {
		return nil, errors.NewValidationError("Candidate is required", map[string]interface{}{
			"field": "candidateId",
		})
	}
	if utf8.RuneCountInString(req.Comment) > domain.MaxCommentLength {
		return nil, errors.NewValidationError("Comment is too long", map[string]interface{}{
			"field":      "comment",
			"max_length": domain.MaxCommentLength,
		})
	}

	voter, err := s.profiles.GetByID(ctx, voterID)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load voter profile", err)
	}
	if voter == nil {
		return nil, errors.NewNotFoundError("Voter profile not found")
	}

	candidate, err := s.profiles.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load candidate profile", err)
	}
	if candidate == nil {
		return nil, errors.NewNotFoundError("Candidate not found")
	}

	year := s.now().Year()
	vote := domain.Vote{
		ID:          uuid.NewString(),
		VoterID:     voter.ID,
		CandidateID: candidate.ID,
		Year:        year,
	}
	if req.Comment != "" {
		comment := req.Comment
		vote.Comment = &comment
	}

	if err := s.votes.Create(ctx, &vote); err != nil {
		return nil, errors.NewInternalError("Failed to record vote", err)
	}

	s.cache.InvalidateVoteCaches(ctx, year, voter.ID, candidate.ID)

	if vote.HasComment() {
		go s.notifyCandidate(voter, candidate, *vote.Comment)
	}

	penalty := s.detector.Record(voter.ID)
	if penalty {
		s.schedulePenaltyVote(voter.ID, year)
	}

	s.logger.WithFields(map[string]interface{}{
		"voter_id":     voter.ID,
		"candidate_id": candidate.ID,
		"year":         year,
		"has_comment":  vote.HasComment(),
		"penalty":      penalty,
	}).Info("Vote recorded")

	return &domain.VoteResponse{
		Success:          true,
		Vote:             vote,
		Voter:            voter.Ref(),
		Candidate:        candidate.Ref(),
		PenaltyTriggered: penalty,
	}, nil
}

// Feed returns the newest votes of the current year, cached briefly
func (s *VotingService) Feed(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if limit > 100 {
		limit = 100
	}

	year := s.now().Year()
	key := s.cache.Keys().KeyFeed(year, limit)

	var cached []domain.FeedItem
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	items, err := s.votes.ListFeed(ctx, year, limit)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load vote feed", err)
	}
	if items == nil {
		items = []domain.FeedItem{}
	}

	s.cache.SetJSON(ctx, key, items, redis.TTLFeed)
	return items, nil
}

// notifyCandidate delivers the justification SMS, fire-and-forget
func (s *VotingService) notifyCandidate(voter, candidate *domain.Profile, comment string) {
	err := s.notifier.SendVoteNotification(sms.VoteNotification{
		RecipientPhone: candidate.Phone,
		RecipientName:  candidate.Name,
		VoterName:      voter.Name,
		Comment:        comment,
	})
	if err != nil {
		s.logger.WithError(err).WithField("candidate_id", candidate.ID).
			Warn("Vote notification delivery failed")
	}
}

// schedulePenaltyVote inserts the rage-click self-vote after the standard
// delay. The penalty is its own fire-and-forget write, the triggering
// request does not wait for it.
func (s *VotingService) schedulePenaltyVote(voterID string, year int) {
	time.AfterFunc(rageclick.DefaultPenaltyDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		penalty := domain.Vote{
			ID:          uuid.NewString(),
			VoterID:     voterID,
			CandidateID: voterID,
			Year:        year,
		}
		if err := s.votes.Create(ctx, &penalty); err != nil {
			s.logger.WithError(err).WithField("voter_id", voterID).
				Error("Failed to record penalty self-vote")
			return
		}
		s.cache.InvalidateVoteCaches(ctx, year, voterID)
		s.logger.WithField("voter_id", voterID).Info("Penalty self-vote recorded")
	})
}
