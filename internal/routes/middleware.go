package routes

import (
	"net/http"
	"time"

	"tweetx/internal/auth"
	"tweetx/internal/session"

	"github.com/google/uuid"
)

// gate applies the auth decision to every request before any handler runs.
func (a *App) gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.IsPublic(r.URL.Path) {
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		}

		_, hasSession := session.Get(r)
		switch auth.Decide(r.URL.Path, hasSession) {
		case auth.RedirectLogin:
			http.Redirect(w, r, auth.LoginRoute, http.StatusSeeOther)
		case auth.RedirectHome:
			http.Redirect(w, r, auth.HomeRoute, http.StatusSeeOther)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// requestLogger tags each request with an id and logs its outcome.
func (a *App) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		a.log.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
