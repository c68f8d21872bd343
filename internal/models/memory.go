package models

import "time"

// MaxMemoryTextLength caps how much a guest can write in one shared memory
const MaxMemoryTextLength = 100

type Memory struct {
	ID         int       `json:"id"`
	GuestID    int       `json:"guest_id"`
	GuestName  string    `json:"guest_name"` // denormalized for display
	MemoryText string    `json:"memory_text"`
	DateShared time.Time `json:"date_shared"`
}

// CreateMemoryRequest is the request body for POST /api/memories/
type CreateMemoryRequest struct {
	GuestID    int    `json:"guest_id"`
	MemoryText string `json:"memory_text"`
}
