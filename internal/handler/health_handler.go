package handler

import (
	"net/http"
	"time"

	"lele-api/pkg/database"
	"lele-api/pkg/logger"
	"lele-api/pkg/redis"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	db     *database.PostgresDB
	cache  *redis.Client
	logger *logger.Logger
}

func NewHealthHandler(db *database.PostgresDB, cache *redis.Client, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, logger: logger}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Service   string            `json:"service"`
	Checks    map[string]string `json:"checks"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   "lele-api",
		Checks:    map[string]string{"database": "ok", "redis": "ok"},
	}
	status := http.StatusOK

	if err := h.db.Health(ctx); err != nil {
		h.logger.WithError(err).Error("Database health check failed")
		response.Status = "unhealthy"
		response.Checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := h.cache.Health(ctx); err != nil {
		h.logger.WithError(err).Error("Redis health check failed")
		response.Status = "unhealthy"
		response.Checks["redis"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, response)
}
