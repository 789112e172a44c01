package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lele-api/internal/domain"
	"lele-api/pkg/logger"
	"lele-api/pkg/redis"
)

func newTestCacheService(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := redis.NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	log, err := logger.New("error")
	require.NoError(t, err)

	return NewCacheService(client, log), mr
}

func TestCacheServiceRoundTrip(t *testing.T) {
	svc, _ := newTestCacheService(t)
	ctx := context.Background()

	board := []domain.LeaderboardEntry{
		{ID: "a", Name: "Alice", VoteCount: 7},
		{ID: "b", Name: "Bob", VoteCount: 0},
	}
	key := svc.Keys().KeyLeaderboard(2025)

	svc.SetJSON(ctx, key, board, time.Minute)

	var got []domain.LeaderboardEntry
	require.True(t, svc.GetJSON(ctx, key, &got))
	assert.Equal(t, board, got)
}

func TestCacheServiceMiss(t *testing.T) {
	svc, _ := newTestCacheService(t)

	var got []domain.LeaderboardEntry
	assert.False(t, svc.GetJSON(context.Background(), svc.Keys().KeyLeaderboard(2025), &got))
}

func TestCacheServiceDiscardsGarbage(t *testing.T) {
	svc, mr := newTestCacheService(t)
	key := svc.Keys().KeyStats(2025)

	require.NoError(t, mr.Set(key, "{not json"))

	var got domain.StatsBundle
	assert.False(t, svc.GetJSON(context.Background(), key, &got))
}

func TestInvalidateVoteCaches(t *testing.T) {
	svc, mr := newTestCacheService(t)
	ctx := context.Background()

	keys := []string{
		svc.Keys().KeyLeaderboard(2025),
		svc.Keys().KeyStats(2025),
		svc.Keys().KeyFeed(2025, DefaultFeedLimit),
		svc.Keys().KeyParticipant("u1", 2025),
	}
	for _, k := range keys {
		require.NoError(t, mr.Set(k, "x"))
	}
	// A different year's cache must survive
	other := svc.Keys().KeyLeaderboard(2024)
	require.NoError(t, mr.Set(other, "x"))

	svc.InvalidateVoteCaches(ctx, 2025, "u1")

	for _, k := range keys {
		assert.False(t, mr.Exists(k), "expected %s to be invalidated", k)
	}
	assert.True(t, mr.Exists(other))
}

func TestAcquireInviteLock(t *testing.T) {
	svc, _ := newTestCacheService(t)
	ctx := context.Background()

	ok, err := svc.AcquireInviteLock(ctx, "ABC123", "user-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.AcquireInviteLock(ctx, "ABC123", "user-2")
	require.NoError(t, err)
	assert.False(t, ok, "second redeemer must not take the lock")
}
