package handlers

import (
	"encoding/json"
	"net/http"

	"wedding-site/internal/models"
	"wedding-site/internal/services"
	"wedding-site/internal/ws"
)

type MemoryHandler struct {
	Service *services.MemoryService
	Hub     *ws.Hub
}

func NewMemoryHandler(service *services.MemoryService, hub *ws.Hub) *MemoryHandler {
	return &MemoryHandler{Service: service, Hub: hub}
}

// CreateMemory stores one shared memory and pushes it to live listeners
func (h *MemoryHandler) CreateMemory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	memory, err := h.Service.ShareMemory(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	if h.Hub != nil {
		h.Hub.Broadcast(memory)
	}

	writeJSON(w, http.StatusCreated, memory)
}

// ListMemories returns every shared memory for the conveyor belt
func (h *MemoryHandler) ListMemories(w http.ResponseWriter, r *http.Request) {
	memories, err := h.Service.ListMemories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, memories)
}

// LiveFeed upgrades to a websocket that streams newly shared memories
func (h *MemoryHandler) LiveFeed(w http.ResponseWriter, r *http.Request) {
	h.Hub.Serve(w, r)
}
