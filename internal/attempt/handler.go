package attempt

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/well-living/nurse-exam-app/internal/auth"
	"github.com/well-living/nurse-exam-app/internal/config"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := h.requireStoredUser(w, r)
	if !ok {
		return
	}

	var req SubmitAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := uuid.Parse(req.QuestionID); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid question id")
		return
	}

	result, err := h.service.Submit(r.Context(), userID, req.QuestionID, req.SelectedAnswer)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			config.Error(w, http.StatusNotFound, "question not found")
			return
		}
		log.WithError(err).Error("failed to submit attempt")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := h.requireStoredUser(w, r)
	if !ok {
		return
	}

	limit := clampLimit(r.URL.Query().Get("limit"))
	offset := clampOffset(r.URL.Query().Get("offset"))

	resp, err := h.service.List(r.Context(), userID, limit, offset)
	if err != nil {
		log.WithError(err).Error("failed to list attempts")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := h.requireStoredUser(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Stats(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("failed to compute stats")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

// requireStoredUser resolves the authenticated caller to a stored user id.
// Attempts cannot be recorded or queried without persistence, so a missing
// service or an identity without a stored row both answer 503.
func (h *Handler) requireStoredUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	if h.service == nil || identity.UserID == nil {
		config.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return uuid.Nil, false
	}
	return *identity.UserID, true
}

func clampLimit(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return defaultLimit
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}

func clampOffset(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
