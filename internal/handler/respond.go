package handler

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lele-api/internal/domain"
	"lele-api/internal/middleware"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError maps an error onto the JSON error envelope. Anything that is
// not an AppError becomes an opaque 500.
func respondError(w http.ResponseWriter, err error, log *logger.Logger) {
	appErr := errors.AsAppError(err)
	if appErr == nil {
		appErr = errors.NewInternalError("Internal server error", err)
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		log.WithError(appErr).Error("Request failed")
	} else {
		log.WithError(appErr).Debug("Request rejected")
	}

	response := &errors.ErrorResponse{}
	response.Error.Type = appErr.Type
	response.Error.Message = appErr.Message
	response.Error.Details = appErr.Details
	response.Error.Timestamp = time.Now().UTC().Format(time.RFC3339)

	respondJSON(w, appErr.StatusCode, response)
}

// respondCacheable writes the payload with an ETag and a short private
// Cache-Control, answering 304 when the client already holds it. Private
// because most of these payloads sit behind a session; shared caches must
// not serve one caller's copy to another.
func respondCacheable(w http.ResponseWriter, r *http.Request, data interface{}, maxAge int) {
	etag := generateETag(data)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", maxAge))
	respondJSON(w, http.StatusOK, data)
}

func generateETag(data interface{}) string {
	jsonData, _ := json.Marshal(data)
	hash := md5.Sum(jsonData)
	return fmt.Sprintf(`"%x"`, hash)
}

// userFromRequest returns the authenticated user, nil on unauthenticated
// routes.
func userFromRequest(r *http.Request) *domain.UserProfile {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		return nil
	}
	return user
}
