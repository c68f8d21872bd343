package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"wedding-site/internal/auth"
	"wedding-site/internal/config"
)

func testJWTManager(t *testing.T) *auth.JWTManager {
	t.Helper()
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTLHours = 1
	return auth.NewJWTManager(cfg)
}

func TestRequireSessionMissingToken(t *testing.T) {
	m := NewSessionMiddleware(testJWTManager(t))
	h := m.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/guests/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireSessionInvalidToken(t *testing.T) {
	m := NewSessionMiddleware(testJWTManager(t))
	h := m.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a bad token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/guests/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireSessionAcceptsHeaderAndCookie(t *testing.T) {
	jm := testJWTManager(t)
	token, err := jm.Generate()
	if err != nil {
		t.Fatal(err)
	}

	m := NewSessionMiddleware(jm)
	reached := 0
	h := m.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached++
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/guests/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPost, "/api/guests/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if reached != 2 {
		t.Fatalf("both token transports must be accepted, reached=%d", reached)
	}
}

func TestTokenFromRequestHeaderWins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})

	if got := TokenFromRequest(req); got != "header-token" {
		t.Fatalf("header must take precedence, got %q", got)
	}
}
