package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/well-living/nurse-exam-app/internal/attempt"
	"github.com/well-living/nurse-exam-app/internal/auth"
	"github.com/well-living/nurse-exam-app/internal/chat"
	"github.com/well-living/nurse-exam-app/internal/config"
	"github.com/well-living/nurse-exam-app/internal/middlewares"
	"github.com/well-living/nurse-exam-app/internal/question"
	"github.com/well-living/nurse-exam-app/internal/user"
)

type RouterConfig struct {
	Config          *config.Config
	UserStore       auth.UserStore
	UserHandler     *user.Handler
	QuestionHandler *question.Handler
	AttemptHandler  *attempt.Handler
	ChatHandler     *chat.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.Config))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(cfg.Config, cfg.UserStore))

		r.Mount("/chat", chat.Routes(cfg.ChatHandler))
		r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))
		r.Mount("/questions", question.Routes(cfg.QuestionHandler))
		r.Mount("/users", user.Routes(cfg.UserHandler))

		r.Get("/stats", cfg.AttemptHandler.GetStats)
	})

	return r
}
