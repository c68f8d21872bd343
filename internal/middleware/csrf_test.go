package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func protectedEcho() (http.Handler, *bool) {
	reached := false
	h := CSRFProtect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))
	return h, &reached
}

func TestCSRFSafeMethodsPass(t *testing.T) {
	h, reached := protectedEcho()

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		*reached = false
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(method, "/api/guests/", nil))
		if !*reached {
			t.Fatalf("%s must bypass the CSRF check", method)
		}
	}
}

func TestCSRFMissingCookie(t *testing.T) {
	h, reached := protectedEcho()

	req := httptest.NewRequest(http.MethodPost, "/api/guests/", nil)
	req.Header.Set(CSRFHeaderName, "token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if *reached || rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (reached=%v)", rec.Code, *reached)
	}
	if !strings.Contains(rec.Body.String(), "CSRF cookie not set") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCSRFMissingHeader(t *testing.T) {
	h, reached := protectedEcho()

	req := httptest.NewRequest(http.MethodPost, "/api/guests/", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if *reached || rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCSRFMismatch(t *testing.T) {
	h, reached := protectedEcho()

	req := httptest.NewRequest(http.MethodPost, "/api/guests/", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token-a"})
	req.Header.Set(CSRFHeaderName, "token-b")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if *reached || rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCSRFMatchPasses(t *testing.T) {
	h, reached := protectedEcho()

	req := httptest.NewRequest(http.MethodPost, "/api/guests/", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token"})
	req.Header.Set(CSRFHeaderName, "token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !*reached || rec.Code != http.StatusOK {
		t.Fatalf("matching pair must pass, got %d", rec.Code)
	}
}
