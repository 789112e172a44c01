// Package container wires the application's dependencies together.
package container

import (
	"context"

	"lele-api/internal/config"
	"lele-api/internal/rageclick"
	"lele-api/internal/ranking"
	"lele-api/internal/repository"
	"lele-api/internal/service"
	"lele-api/internal/service/auth"
	"lele-api/pkg/database"
	"lele-api/pkg/logger"
	"lele-api/pkg/redis"
	"lele-api/pkg/sms"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *logger.Logger
	DB     *database.PostgresDB
	Redis  *redis.Client

	ProfileRepo      *repository.ProfileRepository
	VoteRepo         *repository.VoteRepository
	WinnerRepo       *repository.WinnerRepository
	InviteRepo       *repository.InviteRepository
	AllowedPhoneRepo *repository.AllowedPhoneRepository

	AuthService        service.AuthService
	CacheService       *service.CacheService
	ProfileService     *service.ProfileService
	VotingService      *service.VotingService
	StatsService       *service.StatsService
	ParticipantService *service.ParticipantService
	AccessService      *service.AccessService
	AdminService       *service.AdminService
}

// New creates a new dependency injection container
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	redisClient, err := redis.NewClient(cfg.RedisURL, cfg.Environment, log.Logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  redisClient,
	}

	c.ProfileRepo = repository.NewProfileRepository(db)
	c.VoteRepo = repository.NewVoteRepository(db)
	c.WinnerRepo = repository.NewWinnerRepository(db)
	c.InviteRepo = repository.NewInviteRepository(db)
	c.AllowedPhoneRepo = repository.NewAllowedPhoneRepository(db)

	policy := ranking.PolicyFromName(cfg.ScoringMode)
	loc := cfg.Location()
	notifier := sms.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromPhone, log.Logger)
	detector := rageclick.New()

	c.AuthService = auth.NewService(cfg.SupabaseJWTSecret, log)
	c.CacheService = service.NewCacheService(redisClient, log)
	c.ProfileService = service.NewProfileService(c.ProfileRepo, c.AllowedPhoneRepo, log)
	c.VotingService = service.NewVotingService(c.VoteRepo, c.ProfileRepo, c.CacheService, detector, notifier, log)
	c.StatsService = service.NewStatsService(c.VoteRepo, c.ProfileRepo, c.CacheService, policy, loc, log)
	c.ParticipantService = service.NewParticipantService(c.VoteRepo, c.ProfileRepo, c.CacheService, policy, loc, log)
	c.AccessService = service.NewAccessService(c.AllowedPhoneRepo, c.InviteRepo, c.CacheService, log)
	c.AdminService = service.NewAdminService(c.AllowedPhoneRepo, c.InviteRepo, c.WinnerRepo, c.VoteRepo, c.ProfileRepo, c.CacheService, log)

	log.WithFields(map[string]interface{}{
		"scoring_policy": policy.Name(),
		"timezone":       loc.String(),
	}).Info("Container initialized")

	return c, nil
}
