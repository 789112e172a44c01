package handler

import (
	"net/http"

	"lele-api/internal/service"
	"lele-api/pkg/logger"
)

// StatsHandler serves the leaderboard and the aggregate charts payload
type StatsHandler struct {
	statsService *service.StatsService
	logger       *logger.Logger
}

func NewStatsHandler(statsService *service.StatsService, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{statsService: statsService, logger: logger}
}

// GetLeaderboard handles GET /leaderboard
func (h *StatsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.statsService.Leaderboard(r.Context())
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondCacheable(w, r, board, 30)
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.statsService.Stats(r.Context())
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondCacheable(w, r, bundle, 60)
}
