package middleware

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

const (
	// CSRFCookieName is the cookie the token endpoint sets. Deliberately
	// not HttpOnly: browser clients read it back to fill the header.
	CSRFCookieName = "csrftoken"
	// CSRFHeaderName must accompany every mutating request.
	CSRFHeaderName = "X-CSRFToken"
)

// NewCSRFToken returns a fresh random token value
func NewCSRFToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// SetCSRFCookie writes the token cookie on the response
func SetCSRFCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 7,
		Secure:   secure,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

// CSRFProtect rejects mutating requests whose X-CSRFToken header does not
// match the csrftoken cookie (double-submit check). Safe methods pass
// through untouched.
func CSRFProtect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(CSRFCookieName)
		if err != nil || cookie.Value == "" {
			csrfReject(w, "CSRF cookie not set")
			return
		}

		header := r.Header.Get(CSRFHeaderName)
		if header == "" {
			csrfReject(w, "CSRF token missing")
			return
		}

		if !hmac.Equal([]byte(cookie.Value), []byte(header)) {
			csrfReject(w, "CSRF token incorrect")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func csrfReject(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(`{"detail": "` + detail + `"}`))
}
