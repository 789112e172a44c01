package handler

import (
	"encoding/json"
	"net/http"

	"lele-api/internal/domain"
	"lele-api/internal/service"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
)

// AdminHandler serves the admin surface: allow-list management, invite
// generation and the yearly reset. All routes sit behind the AdminOnly
// middleware.
type AdminHandler struct {
	adminService *service.AdminService
	logger       *logger.Logger
}

func NewAdminHandler(adminService *service.AdminService, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{adminService: adminService, logger: logger}
}

// AddPhone handles POST /admin/phones
func (h *AdminHandler) AddPhone(w http.ResponseWriter, r *http.Request) {
	var req domain.AllowedPhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	entry, err := h.adminService.AddAllowedPhone(r.Context(), &req)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// ListPhones handles GET /admin/phones
func (h *AdminHandler) ListPhones(w http.ResponseWriter, r *http.Request) {
	entries, err := h.adminService.ListAllowedPhones(r.Context())
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// GenerateInvite handles POST /admin/invite
func (h *AdminHandler) GenerateInvite(w http.ResponseWriter, r *http.Request) {
	invite, err := h.adminService.GenerateInvite(r.Context())
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusCreated, invite)
}

// ListInvites handles GET /admin/invite
func (h *AdminHandler) ListInvites(w http.ResponseWriter, r *http.Request) {
	invites, err := h.adminService.ListUnusedInvites(r.Context())
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, invites)
}

// ResetYear handles POST /admin/reset
func (h *AdminHandler) ResetYear(w http.ResponseWriter, r *http.Request) {
	var req domain.ResetRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, errors.NewValidationError("Invalid request body", nil), h.logger)
			return
		}
	}

	result, err := h.adminService.ResetYear(r.Context(), &req)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ListWinners handles GET /admin/winners
func (h *AdminHandler) ListWinners(w http.ResponseWriter, r *http.Request) {
	winners, err := h.adminService.ListWinners(r.Context())
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, winners)
}
