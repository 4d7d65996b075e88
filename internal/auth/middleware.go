package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/well-living/nurse-exam-app/internal/config"
)

// Header names. The IAP header is injected by the identity-aware proxy in the
// form "accounts.google.com:email@example.com"; the debug header is only
// honored when the service runs in debug mode.
const (
	IAPEmailHeader   = "X-Goog-Authenticated-User-Email"
	DebugEmailHeader = "X-Debug-Email"
)

// UserStore registers a caller on their first authenticated request.
type UserStore interface {
	EnsureUser(ctx context.Context, email string) (uuid.UUID, error)
}

// Middleware resolves the caller identity from the inbound headers, applies
// the allowlist policy and stores the Identity in the request context.
// Settings are injected here instead of being read from globals so the
// authorization decision stays a pure function of (cfg, headers).
func Middleware(cfg *config.Config, store UserStore) func(http.Handler) http.Handler {
	allowed := cfg.AllowedEmails()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			email := resolveEmail(cfg, r)
			if email == "" {
				config.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}

			if !cfg.Debug && len(allowed) > 0 {
				if _, ok := allowed[email]; !ok {
					log.WithField("email", email).Warn("email not in allowlist")
					config.Error(w, http.StatusForbidden, "access denied")
					return
				}
			}

			identity := Identity{Email: email}
			if store != nil {
				id, err := store.EnsureUser(r.Context(), email)
				if err != nil {
					// Persistence being down does not block an authenticated
					// caller; endpoints that need the stored row answer 503.
					log.WithError(err).Warn("could not register user")
				} else {
					identity.UserID = &id
				}
			}

			ctx := ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveEmail extracts the caller email. The debug header, when enabled,
// overrides the IAP header unconditionally.
func resolveEmail(cfg *config.Config, r *http.Request) string {
	var email string

	if v := r.Header.Get(IAPEmailHeader); v != "" {
		parts := strings.SplitN(v, ":", 2)
		if len(parts) == 2 {
			email = parts[1]
		} else {
			email = parts[0]
		}
	}

	if cfg.Debug {
		if v := r.Header.Get(DebugEmailHeader); v != "" {
			email = v
		}
	}

	return email
}
