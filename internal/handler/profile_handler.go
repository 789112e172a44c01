package handler

import (
	"encoding/json"
	"net/http"

	"lele-api/internal/domain"
	"lele-api/internal/service"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
)

// ProfileHandler serves the caller's own profile
type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *logger.Logger
}

func NewProfileHandler(profileService *service.ProfileService, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, logger: logger}
}

// GetProfile handles GET /profile, provisioning the profile from the
// allow-list on first access.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := userFromRequest(r)
	if user == nil {
		respondError(w, errors.NewAuthenticationError("Authentication required"), h.logger)
		return
	}

	profile, err := h.profileService.EnsureProfile(r.Context(), user)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles POST /profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := userFromRequest(r)
	if user == nil {
		respondError(w, errors.NewAuthenticationError("Authentication required"), h.logger)
		return
	}

	var req domain.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	profile, err := h.profileService.UpdateProfile(r.Context(), user, &req)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}
