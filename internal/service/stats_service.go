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

// StatsService serves the leaderboard and the aggregate stats bundle. All
// aggregation happens in internal/ranking over an in-memory snapshot of the
// year's votes; this layer only loads the snapshot and caches the result.
type StatsService struct {
	votes    *repository.VoteRepository
	profiles *repository.ProfileRepository
	cache    *CacheService
	policy   ranking.ScoringPolicy
	loc      *time.Location
	logger   *logger.Logger

	now func() time.Time
}

func NewStatsService(
	votes *repository.VoteRepository,
	profiles *repository.ProfileRepository,
	cache *CacheService,
	policy ranking.ScoringPolicy,
	loc *time.Location,
	logger *logger.Logger,
) *StatsService {
	return &StatsService{
		votes:    votes,
		profiles: profiles,
		cache:    cache,
		policy:   policy,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// snapshot loads every profile and the year's full vote log
func (s *StatsService) snapshot(ctx context.Context, year int) ([]domain.Profile, []domain.Vote, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, nil, errors.NewInternalError("Failed to load profiles", err)
	}
	votes, err := s.votes.ListByYear(ctx, year)
	if err != nil {
		return nil, nil, errors.NewInternalError("Failed to load votes", err)
	}
	return profiles, votes, nil
}

// Leaderboard returns the current year's ranked leaderboard
func (s *StatsService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	year := s.now().Year()
	key := s.cache.Keys().KeyLeaderboard(year)

	var cached []domain.LeaderboardEntry
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	profiles, votes, err := s.snapshot(ctx, year)
	if err != nil {
		return nil, err
	}

	board := ranking.Leaderboard(profiles, votes, year, s.policy)
	if board == nil {
		board = []domain.LeaderboardEntry{}
	}

	s.cache.SetJSON(ctx, key, board, redis.TTLLeaderboard)
	return board, nil
}

// Stats returns the full aggregate bundle behind the charts page
func (s *StatsService) Stats(ctx context.Context) (*domain.StatsBundle, error) {
	year := s.now().Year()
	key := s.cache.Keys().KeyStats(year)

	var cached domain.StatsBundle
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	profiles, votes, err := s.snapshot(ctx, year)
	if err != nil {
		return nil, err
	}

	now := s.now()
	overTime, top5 := ranking.VotesOverTime(profiles, votes, year, now, s.policy)
	racePoints, raceNames := ranking.Race(profiles, votes, year, s.policy)

	bundle := &domain.StatsBundle{
		VoteDistribution:          ranking.VoteDistribution(profiles, votes, year, s.policy),
		VotesOverTime:             overTime,
		TopVoters:                 ranking.TopVoters(profiles, votes, year, s.policy),
		WhoVotesForWho:            ranking.VoteMatrix(profiles, votes, year, s.policy),
		DailyActivity:             ranking.DailyActivity(votes, year, s.loc, s.policy),
		HotStreak:                 ranking.HotStreak(profiles, votes, year, now, s.policy),
		Top5Candidates:            top5,
		LeaderboardRace:           racePoints,
		LeaderboardRaceCandidates: raceNames,
	}

	s.cache.SetJSON(ctx, key, bundle, redis.TTLStats)
	return bundle, nil
}
