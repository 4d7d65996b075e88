package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/well-living/nurse-exam-app/internal/config"
)

// Cors builds the CORS middleware from the configured origin list. The debug
// and IAP identity headers must be allowed through for the browser client.
func Cors(cfg *config.Config) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOriginList(),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Goog-Authenticated-User-Email", "X-Debug-Email"},
		AllowCredentials: true,
	})
}
