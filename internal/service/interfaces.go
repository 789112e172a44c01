package service

import (
	"context"

	"lele-api/internal/domain"
)

// AuthService validates session tokens and resolves the caller's identity
type AuthService interface {
	ValidateToken(ctx context.Context, token string) (*domain.UserProfile, error)
}
