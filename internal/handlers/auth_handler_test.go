package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wedding-site/internal/auth"
	"wedding-site/internal/config"
	"wedding-site/internal/middleware"
	"wedding-site/internal/models"
	"wedding-site/internal/services"

	"golang.org/x/crypto/bcrypt"
)

func newAuthHandler(t *testing.T, password string) *AuthHandler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTLHours = 1

	svc := services.NewAuthService(string(hash), auth.NewJWTManager(cfg))
	return NewAuthHandler(svc)
}

func postPassword(t *testing.T, h *AuthHandler, password string) (*httptest.ResponseRecorder, models.EnterPasswordResponse) {
	t.Helper()
	body := strings.NewReader(`{"password": "` + password + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/enter_password/", body)
	rec := httptest.NewRecorder()
	h.EnterPassword(rec, req)

	var resp models.EnterPasswordResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("response decode failed: %v", err)
	}
	return rec, resp
}

func TestEnterPasswordCorrect(t *testing.T) {
	h := newAuthHandler(t, "open sesame")

	rec, resp := postPassword(t, h, "open sesame")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !resp.IsAuthenticated {
		t.Fatal("expected is_authenticated=true")
	}
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}
}

func TestEnterPasswordWrongIsStill200(t *testing.T) {
	h := newAuthHandler(t, "open sesame")

	rec, resp := postPassword(t, h, "wrong")
	if rec.Code != http.StatusOK {
		t.Fatalf("a wrong passphrase is a 200, got %d", rec.Code)
	}
	if resp.IsAuthenticated {
		t.Fatal("expected is_authenticated=false")
	}
	if resp.Token != "" {
		t.Fatal("no token may be issued for a wrong passphrase")
	}
}

func TestEnterPasswordBadBody(t *testing.T) {
	h := newAuthHandler(t, "open sesame")

	req := httptest.NewRequest(http.MethodPost, "/api/enter_password/", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.EnterPassword(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCSRFCookieIssuesTokenBothWays(t *testing.T) {
	h := newAuthHandler(t, "x")

	req := httptest.NewRequest(http.MethodGet, "/api/csrf_cookie/", nil)
	rec := httptest.NewRecorder()
	h.CSRFCookie(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp models.CSRFResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.CSRFToken == "" {
		t.Fatal("token missing from the body")
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.CSRFCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("token cookie not set")
	}
	if cookie.Value != resp.CSRFToken {
		t.Fatal("cookie and body must carry the same token")
	}
	if cookie.HttpOnly {
		t.Fatal("the CSRF cookie must stay readable by scripts")
	}
}

func TestAuthStatus(t *testing.T) {
	h := newAuthHandler(t, "open sesame")
	_, resp := postPassword(t, h, "open sesame")

	req := httptest.NewRequest(http.MethodGet, "/api/auth_status/", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec := httptest.NewRecorder()
	h.AuthStatus(rec, req)

	var status models.AuthStatusResponse
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatal(err)
	}
	if !status.IsAuthenticated {
		t.Fatal("a fresh token must validate")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/auth_status/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	h.AuthStatus(rec, req)
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatal(err)
	}
	if status.IsAuthenticated {
		t.Fatal("garbage tokens must not validate")
	}
}
