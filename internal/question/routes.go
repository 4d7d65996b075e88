package question

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListQuestions)
	r.Get("/{id}", h.GetQuestion)
	return r
}
