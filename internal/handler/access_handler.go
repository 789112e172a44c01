package handler

import (
	"encoding/json"
	"net/http"

	"lele-api/internal/domain"
	"lele-api/internal/service"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
)

// AccessHandler serves the public signup gate: phone allow-list checks and
// invite code verification/redemption.
type AccessHandler struct {
	accessService *service.AccessService
	logger        *logger.Logger
}

func NewAccessHandler(accessService *service.AccessService, logger *logger.Logger) *AccessHandler {
	return &AccessHandler{accessService: accessService, logger: logger}
}

// VerifyPhone handles POST /phone/verify
func (h *AccessHandler) VerifyPhone(w http.ResponseWriter, r *http.Request) {
	var req domain.PhoneVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	result, err := h.accessService.VerifyPhone(r.Context(), req.Phone)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// VerifyInvite handles POST /invite/verify
func (h *AccessHandler) VerifyInvite(w http.ResponseWriter, r *http.Request) {
	var req domain.InviteVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	valid, err := h.accessService.VerifyInvite(r.Context(), req.Code)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"valid": valid})
}

// RedeemInvite handles POST /invite/redeem
func (h *AccessHandler) RedeemInvite(w http.ResponseWriter, r *http.Request) {
	user := userFromRequest(r)
	if user == nil {
		respondError(w, errors.NewAuthenticationError("Authentication required"), h.logger)
		return
	}

	var req domain.InviteRedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	if err := h.accessService.RedeemInvite(r.Context(), req.Code, user.Sub); err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
