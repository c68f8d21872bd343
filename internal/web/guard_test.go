package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"wedding-site/internal/auth"
	"wedding-site/internal/client"
	"wedding-site/internal/config"
	"wedding-site/internal/middleware"
	"wedding-site/internal/models"
	"wedding-site/internal/services"
)

func okHandler(reached *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthenticatedRedirects(t *testing.T) {
	s := &Server{}
	reached := false
	h := s.requireAuthenticated(okHandler(&reached))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/register", nil))

	if reached {
		t.Fatal("unauthenticated visitor must not reach the page")
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestRequireAuthenticatedPassesWithCookie(t *testing.T) {
	s := &Server{}
	reached := false
	h := s.requireAuthenticated(okHandler(&reached))

	req := httptest.NewRequest(http.MethodGet, "/register", nil)
	req.AddCookie(&http.Cookie{Name: authenticatedCookie, Value: "true"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !reached {
		t.Fatal("flagged visitor must pass")
	}
}

func TestRequireRegisteredRedirectsToRegister(t *testing.T) {
	s := &Server{}
	reached := false
	h := s.requireRegistered(okHandler(&reached))

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: authenticatedCookie, Value: "true"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if reached {
		t.Fatal("unregistered visitor must not reach gated pages")
	}
	if rec.Header().Get("Location") != "/register" {
		t.Fatalf("expected redirect to /register, got %q", rec.Header().Get("Location"))
	}
}

func TestCSRFFormsMismatch(t *testing.T) {
	s := &Server{}
	reached := false
	h := s.csrfForms(okHandler(&reached))

	form := url.Values{"csrfmiddlewaretoken": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/rsvp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: "right"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if reached || rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCSRFFormsMatch(t *testing.T) {
	s := &Server{}
	reached := false
	h := s.csrfForms(okHandler(&reached))

	form := url.Values{"csrfmiddlewaretoken": {"token"}}
	req := httptest.NewRequest(http.MethodPost, "/rsvp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: "token"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !reached {
		t.Fatalf("matching token must pass, got %d", rec.Code)
	}
}

func TestClearSessionExpiresCookies(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()
	s.clearSession(rec)

	cleared := map[string]bool{}
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared[c.Name] = true
		}
	}
	for _, name := range []string{authenticatedCookie, registeredCookie, middleware.SessionCookieName} {
		if !cleared[name] {
			t.Fatalf("cookie %s not cleared", name)
		}
	}
}

func TestServiceGuestCreatorRejectsStaleToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "secret"
	cfg.Auth.TokenTTLHours = 1
	authSvc := services.NewAuthService("", auth.NewJWTManager(cfg))

	creator := &serviceGuestCreator{auth: authSvc, token: "stale"}
	_, err := creator.CreateGuest(httptest.NewRequest(http.MethodPost, "/", nil).Context(), &models.CreateGuestRequest{})

	var authErr *client.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError for a stale token, got %v", err)
	}
}

func TestFormFromRequestParsesRepeatedFields(t *testing.T) {
	form := url.Values{
		"name":                          {"Alice", "Bob"},
		"email":                         {"a@example.com", "b@example.com"},
		"phone":                         {"+441111111111", "+442222222222"},
		"dietary_restrictions":          {"VEG", "N/A"},
		"specific_dietary_restrictions": {"", ""},
	}
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := req.ParseForm(); err != nil {
		t.Fatal(err)
	}

	parsed := formFromRequest(req)
	if len(parsed.Drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(parsed.Drafts))
	}
	if parsed.Drafts[1].Name != "Bob" || parsed.Drafts[1].Dietary != "N/A" {
		t.Fatalf("second draft mis-parsed: %+v", parsed.Drafts[1])
	}
	if parsed.Drafts[0].Dietary != "VEG" {
		t.Fatalf("first draft dietary mis-parsed: %+v", parsed.Drafts[0])
	}
}
