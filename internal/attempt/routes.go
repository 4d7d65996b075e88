package attempt

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.SubmitAttempt)
	r.Get("/", h.ListAttempts)
	return r
}
