package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string // Environment prefix (staging/prod)
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = "staging"
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

func (kb *KeyBuilder) KeyLeaderboard(year int) string {
	return kb.BuildKey(fmt.Sprintf(KeyLeaderboard, year))
}

func (kb *KeyBuilder) KeyStats(year int) string {
	return kb.BuildKey(fmt.Sprintf(KeyStats, year))
}

func (kb *KeyBuilder) KeyFeed(year, limit int) string {
	return kb.BuildKey(fmt.Sprintf(KeyFeed, year, limit))
}

func (kb *KeyBuilder) KeyParticipant(id string, year int) string {
	return kb.BuildKey(fmt.Sprintf(KeyParticipant, id, year))
}

func (kb *KeyBuilder) KeyInviteLock(code string) string {
	return kb.BuildKey(fmt.Sprintf(KeyInviteLock, code))
}

// KeyCustom builds an ad-hoc namespaced key
func (kb *KeyBuilder) KeyCustom(format string, args ...interface{}) string {
	return kb.BuildKey(fmt.Sprintf(format, args...))
}
