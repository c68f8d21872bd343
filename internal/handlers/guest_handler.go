package handlers

import (
	"encoding/json"
	"net/http"

	"wedding-site/internal/models"
	"wedding-site/internal/services"
)

type GuestHandler struct {
	Service *services.GuestService
}

func NewGuestHandler(service *services.GuestService) *GuestHandler {
	return &GuestHandler{Service: service}
}

// CreateGuest registers one guest. The batch submitter calls this once
// per draft; each call stands alone so one bad entry never poisons the
// rest of the batch.
func (h *GuestHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	guest, err := h.Service.RegisterGuest(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, guest)
}

// ListGuests returns the roster for the name pickers
func (h *GuestHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := h.Service.ListGuests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, guests)
}
