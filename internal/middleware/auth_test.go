package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lele-api/internal/domain"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
)

type stubAuthService struct {
	user *domain.UserProfile
}

func (s *stubAuthService) ValidateToken(ctx context.Context, token string) (*domain.UserProfile, error) {
	if token != "good-token" {
		return nil, errors.NewAuthenticationError("Invalid or expired token")
	}
	return s.user, nil
}

func newAuthTestHandler(t *testing.T) (http.Handler, *bool) {
	t.Helper()

	log, err := logger.New("error")
	require.NoError(t, err)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		user, ok := UserFromContext(r.Context())
		require.True(t, ok, "authenticated handler must see the user")
		assert.Equal(t, "user-1", user.Sub)
		w.WriteHeader(http.StatusOK)
	})

	svc := &stubAuthService{user: &domain.UserProfile{Sub: "user-1"}}
	return Auth(svc, log)(next), &reached
}

func TestAuthRejectsUnauthenticated(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"bad token", "Bearer expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, reached := newAuthTestHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, *reached, "handler must not run before authentication")
		})
	}
}

func TestAuthPassesValidToken(t *testing.T) {
	handler, reached := newAuthTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
}
