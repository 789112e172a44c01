package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lele-api/pkg/logger"
)

const testSecret = "super-secret-test-key"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newTestService(t *testing.T, secret string) *Service {
	t.Helper()
	log, err := logger.New("error")
	require.NoError(t, err)
	return NewService(secret, log).(*Service)
}

func TestValidateTokenSuccess(t *testing.T) {
	svc := newTestService(t, testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-1",
		"phone": "5511999300861",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]interface{}{
			"name": "Alice",
		},
	})

	profile, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.Sub)
	assert.Equal(t, "5511999300861", profile.Phone)
	assert.Equal(t, "Alice", profile.Name)
}

func TestValidateTokenNoMetadata(t *testing.T) {
	svc := newTestService(t, testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-2",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	profile, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-2", profile.Sub)
	assert.Empty(t, profile.Phone)
	assert.Empty(t, profile.Name)
}

func TestValidateTokenFailures(t *testing.T) {
	svc := newTestService(t, testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "wrong secret",
			token: signToken(t, "another-secret", jwt.MapClaims{"sub": "u", "exp": time.Now().Add(time.Hour).Unix()}),
		},
		{
			name:  "expired",
			token: signToken(t, testSecret, jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Hour).Unix()}),
		},
		{
			name:  "missing subject",
			token: signToken(t, testSecret, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}),
		},
		{
			name:  "garbage",
			token: "not.a.jwt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(context.Background(), tt.token)
			assert.Error(t, err)
		})
	}
}

func TestValidateTokenUnconfiguredSecret(t *testing.T) {
	svc := newTestService(t, "")

	token := signToken(t, testSecret, jwt.MapClaims{"sub": "u", "exp": time.Now().Add(time.Hour).Unix()})
	_, err := svc.ValidateToken(context.Background(), token)
	assert.Error(t, err)
}
