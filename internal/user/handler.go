package user

import (
	"net/http"

	"github.com/well-living/nurse-exam-app/internal/auth"
	"github.com/well-living/nurse-exam-app/internal/config"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// GetUser returns the authenticated caller. When persistence is available the
// stored row is included; otherwise only the resolved email is returned.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if h.repo == nil || identity.UserID == nil {
		config.JSON(w, http.StatusOK, identity)
		return
	}

	u, err := h.repo.FindByEmail(r.Context(), identity.Email)
	if err != nil {
		log.WithError(err).Error("failed to load user")
		config.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	if u == nil {
		config.JSON(w, http.StatusOK, identity)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
