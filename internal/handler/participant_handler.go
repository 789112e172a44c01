package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lele-api/internal/service"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
)

// ParticipantHandler serves the per-participant stats page
type ParticipantHandler struct {
	participantService *service.ParticipantService
	logger             *logger.Logger
}

func NewParticipantHandler(participantService *service.ParticipantService, logger *logger.Logger) *ParticipantHandler {
	return &ParticipantHandler{participantService: participantService, logger: logger}
}

// GetParticipant handles GET /participant/{id}
func (h *ParticipantHandler) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, errors.NewValidationError("Participant id is required", nil), h.logger)
		return
	}

	bundle, err := h.participantService.Participant(r.Context(), id)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondCacheable(w, r, bundle, 30)
}
