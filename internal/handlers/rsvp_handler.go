package handlers

import (
	"encoding/json"
	"net/http"

	"wedding-site/internal/models"
	"wedding-site/internal/services"
)

type RSVPHandler struct {
	Service *services.RSVPService
}

func NewRSVPHandler(service *services.RSVPService) *RSVPHandler {
	return &RSVPHandler{Service: service}
}

// CreateRSVP stores one RSVP submission
func (h *RSVPHandler) CreateRSVP(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRSVPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rsvp, err := h.Service.SubmitRSVP(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, rsvp)
}
