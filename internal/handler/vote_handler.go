package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"unicode/utf8"

	"lele-api/internal/domain"
	"lele-api/internal/service"
	"lele-api/pkg/errors"
	"lele-api/pkg/logger"
)

// VoteHandler serves vote submission and the public vote feed
type VoteHandler struct {
	votingService  *service.VotingService
	profileService *service.ProfileService
	logger         *logger.Logger
}

func NewVoteHandler(
	votingService *service.VotingService,
	profileService *service.ProfileService,
	logger *logger.Logger,
) *VoteHandler {
	return &VoteHandler{
		votingService:  votingService,
		profileService: profileService,
		logger:         logger,
	}
}

// SubmitVote handles POST /votes
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := userFromRequest(r)
	if user == nil {
		respondError(w, errors.NewAuthenticationError("Authentication required"), h.logger)
		return
	}

	var req domain.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	if err := h.validateVoteRequest(&req); err != nil {
		respondError(w, err, h.logger)
		return
	}

	// Provisions the voter from the allow-list on first access
	voter, err := h.profileService.EnsureProfile(ctx, user)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	response, err := h.votingService.SubmitVote(ctx, voter.ID, &req)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusCreated, response)
}

// GetFeed handles GET /feed
func (h *VoteHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, errors.NewValidationError("Invalid limit", map[string]interface{}{
				"field": "limit",
			}), h.logger)
			return
		}
		limit = parsed
	}

	items, err := h.votingService.Feed(r.Context(), limit)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondCacheable(w, r, items, 15)
}

func (h *VoteHandler) validateVoteRequest(req *domain.VoteRequest) *errors.AppError {
	if req.CandidateID == "" {
		return errors.NewValidationError("Candidate is required", map[string]interface{}{
			"field": "candidateId",
		})
	}
	// Bound is in characters, not bytes
	if utf8.RuneCountInString(req.Comment) > domain.MaxCommentLength {
		return errors.NewValidationError("Comment is too long", map[string]interface{}{
			"field":      "comment",
			"max_length": domain.MaxCommentLength,
		})
	}
	return nil
}
