// Package auth validates Supabase phone-OTP session tokens.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"lele-api/internal/domain"
	"lele-api/internal/service"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
)

// Service validates Supabase JWTs signed with the project's HS256 secret
type Service struct {
	jwtSecret []byte
	logger    *logger.Logger
}

// NewService creates a new auth service
func NewService(jwtSecret string, logger *logger.Logger) service.AuthService {
	return &Service{jwtSecret: []byte(jwtSecret), logger: logger}
}

// ValidateToken verifies the token signature and expiry and extracts the
// caller's identity from the Supabase claims.
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.UserProfile, error) {
	if len(s.jwtSecret) == 0 {
		s.logger.Error("SUPABASE_JWT_SECRET not configured")
		return nil, errors.NewAuthenticationError("JWT validation not configured")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Supabase signs access tokens with HS256
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		s.logger.WithError(err).Debug("JWT validation failed")
		return nil, errors.NewAuthenticationError("Invalid or expired token")
	}
	if !token.Valid {
		return nil, errors.NewAuthenticationError("Invalid or expired token")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.NewAuthenticationError("Token has no subject")
	}

	profile := &domain.UserProfile{Sub: sub}
	if phone, ok := claims["phone"].(string); ok {
		profile.Phone = phone
	}
	// Display name lives in user_metadata when the client set one
	if meta, ok := claims["user_metadata"].(map[string]interface{}); ok {
		if name, ok := meta["name"].(string); ok {
			profile.Name = name
		}
	}

	return profile, nil
}
