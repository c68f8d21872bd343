package handlers

import (
	"encoding/json"
	"net/http"

	"wedding-site/internal/models"
	"wedding-site/internal/services"
)

type SongRequestHandler struct {
	Service *services.SongRequestService
}

func NewSongRequestHandler(service *services.SongRequestService) *SongRequestHandler {
	return &SongRequestHandler{Service: service}
}

// CreateSongRequest stores one song request
func (h *SongRequestHandler) CreateSongRequest(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSongRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	request, err := h.Service.SubmitRequest(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, request)
}

// ListSongRequests returns every requested song
func (h *SongRequestHandler) ListSongRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.ListRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requests)
}
