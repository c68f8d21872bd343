package handlers

import (
	"encoding/json"
	"net/http"

	"wedding-site/internal/middleware"
	"wedding-site/internal/models"
	"wedding-site/internal/services"

	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	Service *services.AuthService
	// Secure marks issued cookies as HTTPS-only in production
	Secure bool
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// CSRFCookie issues a fresh CSRF token as both cookie and response body,
// so clients may source it either way. Safe to call repeatedly; each call
// simply replaces the cookie.
func (h *AuthHandler) CSRFCookie(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.NewCSRFToken()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"detail": "failed to issue CSRF token",
		})
		return
	}

	middleware.SetCSRFCookie(w, token, h.Secure)
	writeJSON(w, http.StatusOK, models.CSRFResponse{CSRFToken: token})
}

// EnterPassword validates the shared passphrase. A wrong passphrase is a
// normal 200 with is_authenticated=false; only infrastructure problems
// become errors.
func (h *AuthHandler) EnterPassword(w http.ResponseWriter, r *http.Request) {
	var req models.EnterPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ok, token, err := h.Service.CheckPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("Password check failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"detail": "internal server error",
		})
		return
	}

	if !ok {
		writeJSON(w, http.StatusOK, models.EnterPasswordResponse{IsAuthenticated: false})
		return
	}

	writeJSON(w, http.StatusOK, models.EnterPasswordResponse{
		IsAuthenticated: true,
		Token:           token,
	})
}

// AuthStatus reports whether the presented session token is still valid
func (h *AuthHandler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromRequest(r)
	valid := token != "" && h.Service.ValidateToken(token)
	writeJSON(w, http.StatusOK, models.AuthStatusResponse{IsAuthenticated: valid})
}
