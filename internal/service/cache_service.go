package service

import (
	"context"
	"encoding/json"
	"time"

	"lele-api/pkg/logger"
	"lele-api/pkg/redis"
)

// DefaultFeedLimit is the feed page size used when the client asks for none
const DefaultFeedLimit = 20

// CacheService wraps the Redis client with JSON cache-aside helpers. The
// cache is always best-effort: a Redis failure degrades to a database read,
// never to a request failure.
type CacheService struct {
	cache  *redis.Client
	logger *logger.Logger
}

func NewCacheService(cache *redis.Client, logger *logger.Logger) *CacheService {
	return &CacheService{cache: cache, logger: logger}
}

// Keys exposes the environment-prefixed key builder
func (s *CacheService) Keys() *redis.KeyBuilder {
	return s.cache.KeyBuilder
}

// GetJSON loads and unmarshals a cached payload. Returns false on a miss,
// a Redis error or a decode failure.
func (s *CacheService) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	val, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		s.logger.WithError(err).Warn("Discarding undecodable cache entry")
		return false
	}
	return true
}

// SetJSON stores a payload with the given TTL, best-effort
func (s *CacheService) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.WithError(err).Error("Failed to marshal cache payload")
		return
	}
	_ = s.cache.Set(ctx, key, data, ttl)
}

// InvalidateVoteCaches drops the year's aggregate caches and the affected
// participants' pages after a vote insert or a reset. Non-default feed page
// sizes are left to expire with their short TTL.
func (s *CacheService) InvalidateVoteCaches(ctx context.Context, year int, participantIDs ...string) {
	kb := s.cache.KeyBuilder
	keys := []string{
		kb.KeyLeaderboard(year),
		kb.KeyStats(year),
		kb.KeyFeed(year, DefaultFeedLimit),
	}
	for _, id := range participantIDs {
		keys = append(keys, kb.KeyParticipant(id, year))
	}
	_ = s.cache.Delete(ctx, keys...)
}

// AcquireInviteLock takes the redemption idempotency lock for a code.
// Returns false when another redemption currently holds it.
func (s *CacheService) AcquireInviteLock(ctx context.Context, code, userID string) (bool, error) {
	key := s.cache.KeyBuilder.KeyInviteLock(code)
	return s.cache.SetNX(ctx, key, userID, redis.TTLInviteLock)
}
