package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/mcoot/leaguebot-go/internal/api/apierr"
	"github.com/mcoot/leaguebot-go/internal/api/response"
)

// RequireToken rejects requests whose Authorization header does not carry
// the configured static bearer token. If token is empty, auth is disabled
// and all requests pass through.
func RequireToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			presented, ok := extractToken(r)
			if !ok {
				response.WriteError(w, apierr.NewUnauthorizedError("missing bearer token"))
				return
			}
			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				response.WriteError(w, apierr.NewUnauthorizedError("invalid bearer token"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	return strings.TrimPrefix(header, prefix), true
}
