package service

import (
	"context"
	"time"

	"lele-api/internal/domain"
	"lele-api/internal/ranking"
	"lele-api/internal/repository"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
	"lele-api/pkg/redis"
)

// RecentActivityLimit caps the participant page's activity list
const RecentActivityLimit = 20

// ParticipantService builds the per-participant stats page
type ParticipantService struct {
	votes    *repository.VoteRepository
	profiles *repository.ProfileRepository
	cache    *CacheService
	policy   ranking.ScoringPolicy
	loc      *time.Location
	logger   *logger.Logger

	now func() time.Time
}

func NewParticipantService(
	votes *repository.VoteRepository,
	profiles *repository.ProfileRepository,
	cache *CacheService,
	policy ranking.ScoringPolicy,
	loc *time.Location,
	logger *logger.Logger,
) *ParticipantService {
	return &ParticipantService{
		votes:    votes,
		profiles: profiles,
		cache:    cache,
		policy:   policy,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// Participant assembles the full stats bundle for one participant
func (s *ParticipantService) Participant(ctx context.Context, id string) (*domain.ParticipantBundle, error) {
	year := s.now().Year()
	key := s.cache.Keys().KeyParticipant(id, year)

	var cached domain.ParticipantBundle
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	subject, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load profile", err)
	}
	if subject == nil {
		return nil, errors.NewNotFoundError("Participant not found")
	}

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load profiles", err)
	}
	votes, err := s.votes.ListByYear(ctx, year)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load votes", err)
	}

	board := ranking.Leaderboard(profiles, votes, year, s.policy)
	rank, total := ranking.RankOf(board, id)

	var received, given, comments int
	for i := range votes {
		v := &votes[i]
		if v.CandidateID == id {
			received += s.policy.Weight(v)
			if v.HasComment() {
				comments++
			}
		}
		if v.VoterID == id {
			given += s.policy.Weight(v)
		}
	}

	bundle := &domain.ParticipantBundle{
		Profile: subject.Ref(),
		Stats: domain.ParticipantStats{
			VotesReceived:     received,
			VotesGiven:        given,
			VotesThisWeek:     ranking.VotesThisWeek(votes, id, year, s.now(), s.policy),
			Rank:              rank,
			TotalParticipants: total,
			CommentsReceived:  comments,
		},
		TopHaters:       ranking.TopHaters(profiles, votes, id, year),
		TopTargets:      ranking.TopTargets(profiles, votes, id, year),
		RecentActivity:  ranking.RecentActivity(profiles, votes, id, year, RecentActivityLimit),
		MutualRivalries: ranking.MutualRivalries(profiles, votes, id, year),
		FunStats: domain.FunStats{
			MostActiveDay: ranking.MostActiveDay(votes, id, year, s.loc),
		},
	}

	s.cache.SetJSON(ctx, key, bundle, redis.TTLParticipant)
	return bundle, nil
}
