package web

import (
	"crypto/hmac"
	"net/http"

	"wedding-site/internal/middleware"
)

// Flag cookie names; "true" or absent, matching how the original kept
// them in browser storage
const (
	authenticatedCookie = "isAuthenticated"
	registeredCookie    = "isGuestRegistered"
)

func flagSet(r *http.Request, name string) bool {
	c, err := r.Cookie(name)
	return err == nil && c.Value == "true"
}

func (s *Server) setFlag(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "true",
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 30,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 30,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSession removes every gate cookie, sending the visitor back
// through the password page
func (s *Server) clearSession(w http.ResponseWriter) {
	for _, name := range []string{authenticatedCookie, registeredCookie, middleware.SessionCookieName} {
		http.SetCookie(w, &http.Cookie{Name: name, Value: "", Path: "/", MaxAge: -1})
	}
}

// requireAuthenticated redirects visitors who have not passed the
// password gate
func (s *Server) requireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !flagSet(r, authenticatedCookie) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireRegistered redirects authenticated visitors who have not
// finished guest registration
func (s *Server) requireRegistered(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !flagSet(r, registeredCookie) {
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// csrfForms verifies the hidden csrfmiddlewaretoken form field against
// the csrftoken cookie on page form posts. HTML forms cannot set the
// X-CSRFToken header, so the token travels in the body instead.
func (s *Server) csrfForms(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(middleware.CSRFCookieName)
		if err != nil || cookie.Value == "" {
			http.Error(w, "CSRF cookie not set. Please reload the page.", http.StatusForbidden)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		field := r.PostFormValue("csrfmiddlewaretoken")
		if field == "" || !hmac.Equal([]byte(cookie.Value), []byte(field)) {
			http.Error(w, "CSRF verification failed. Please reload the page.", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// pageCSRFToken reuses the existing cookie token or issues a fresh one
// so every rendered form carries a token to echo back
func (s *Server) pageCSRFToken(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(middleware.CSRFCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	token, err := middleware.NewCSRFToken()
	if err != nil {
		return ""
	}
	middleware.SetCSRFCookie(w, token, s.secure)
	return token
}
