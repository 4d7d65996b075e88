package question

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/well-living/nurse-exam-app/internal/config"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if h.repo == nil {
		config.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	filter := ListFilter{
		Limit:  clampLimit(r.URL.Query().Get("limit")),
		Offset: clampOffset(r.URL.Query().Get("offset")),
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			config.Error(w, http.StatusBadRequest, "invalid year")
			return
		}
		filter.Year = year
	}
	filter.Category = r.URL.Query().Get("category")

	questions, err := h.repo.List(r.Context(), filter)
	if err != nil {
		log.WithError(err).Error("failed to list questions")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := ListQuestionsResponse{
		Questions: make([]QuestionResponse, 0, len(questions)),
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, toResponse(q))
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if h.repo == nil {
		config.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid question id")
		return
	}

	q, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("failed to load question")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if q == nil {
		config.Error(w, http.StatusNotFound, "question not found")
		return
	}

	config.JSON(w, http.StatusOK, toResponse(q))
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
