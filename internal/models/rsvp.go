package models

import "time"

// Wedding selection choices (the couple celebrates twice)
const (
	WeddingEngland   = "ENG"
	WeddingAustralia = "AUS"
	WeddingBoth      = "BOTH"
)

// WeddingChoices lists every accepted wedding_selection value
var WeddingChoices = []string{WeddingEngland, WeddingAustralia, WeddingBoth}

// WeddingLabels maps choice codes to their display labels.
var WeddingLabels = map[string]string{
	WeddingEngland:   "England",
	WeddingAustralia: "Australia",
	WeddingBoth:      "Both",
}

type RSVP struct {
	ID               int       `json:"id"`
	GuestID          int       `json:"guest_id"`
	WeddingSelection string    `json:"wedding_selection"`
	IsAttending      bool      `json:"is_attending"`
	AdditionalNotes  string    `json:"additional_notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateRSVPRequest is the request body for POST /api/rsvp/
type CreateRSVPRequest struct {
	GuestID          int    `json:"guest_id"`
	WeddingSelection string `json:"wedding_selection"`
	IsAttending      bool   `json:"is_attending"`
	AdditionalNotes  string `json:"additional_notes,omitempty"`
}
