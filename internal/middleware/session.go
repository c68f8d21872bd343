package middleware

import (
	"net/http"
	"strings"

	"wedding-site/internal/auth"
)

// SessionCookieName holds the bearer token for browser clients; API
// clients send it as an Authorization header instead.
const SessionCookieName = "session"

// SessionMiddleware gates domain mutations behind a valid session token.
// The token is accepted from either the Authorization header
// ("Bearer <token>") or the session cookie.
type SessionMiddleware struct {
	jwtManager *auth.JWTManager
}

func NewSessionMiddleware(jwtManager *auth.JWTManager) *SessionMiddleware {
	return &SessionMiddleware{jwtManager: jwtManager}
}

// TokenFromRequest extracts the session token, header first
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if strings.HasPrefix(h, "Bearer ") {
			return strings.TrimPrefix(h, "Bearer ")
		}
		return ""
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// RequireSession rejects requests without a valid session token.
// Missing token is a 401, a bad or expired one is a 403; clients treat
// both as "re-enter the password".
func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			sessionReject(w, http.StatusUnauthorized, "authentication required")
			return
		}

		if err := m.jwtManager.Validate(token); err != nil {
			sessionReject(w, http.StatusForbidden, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func sessionReject(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"detail": "` + detail + `"}`))
}
