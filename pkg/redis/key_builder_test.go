package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKeyBuilder(t *testing.T) {
	tests := []struct {
		environment string
		wantPrefix  string
	}{
		{"production", "prod"},
		{"development", "staging"},
		{"staging", "staging"},
		{"test", "staging"},
		{"", "prod"},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			kb := NewKeyBuilder(tt.environment)
			assert.Equal(t, tt.wantPrefix, kb.GetPrefix())
		})
	}
}

func TestKeyBuilderKeys(t *testing.T) {
	kb := NewKeyBuilder("production")

	assert.Equal(t, "prod:board:leaderboard:2025", kb.KeyLeaderboard(2025))
	assert.Equal(t, "prod:board:stats:2025", kb.KeyStats(2025))
	assert.Equal(t, "prod:board:feed:2025:20", kb.KeyFeed(2025, 20))
	assert.Equal(t, "prod:board:participant:abc:2025", kb.KeyParticipant("abc", 2025))
	assert.Equal(t, "prod:access:invite:XK2M9A:lock", kb.KeyInviteLock("XK2M9A"))
	assert.Equal(t, "prod:custom:1", kb.KeyCustom("custom:%d", 1))
}
