package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestNewClientInvalidURL(t *testing.T) {
	client, err := NewClient("invalid://url", "test", zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestClientGetSet(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	_, err := client.Get(ctx, "missing")
	assert.Equal(t, Nil, err)

	require.NoError(t, client.Set(ctx, "key", "value", time.Minute))

	val, err := client.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", val)
}

func TestClientSetNX(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	ok, err := client.SetNX(ctx, "lock", "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "first SetNX acquires")

	ok, err = client.SetNX(ctx, "lock", "1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second SetNX is rejected")
}

func TestClientExistsAndDelete(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, client.Set(ctx, "b", "2", time.Minute))

	n, err := client.Exists(ctx, "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, client.Delete(ctx, "a", "b"))

	n, err = client.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, client.Delete(ctx), "deleting nothing is a no-op")
}

func TestClientSetExpiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "ttl", "x", time.Second))
	mr.FastForward(2 * time.Second)

	_, err := client.Get(ctx, "ttl")
	assert.Equal(t, Nil, err)
}

func TestPrefixForLog(t *testing.T) {
	assert.Equal(t, "prod:board", prefixForLog("prod:board:participant:abc:2025"))
	assert.Equal(t, "short", prefixForLog("short"))
}
