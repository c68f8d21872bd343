package models

import "time"

// Dietary restriction choices, mirrored by the registration form
const (
	DietaryNone     = "N/A"
	DietaryVeg      = "VEG"
	DietaryVegan    = "VGN"
	DietaryGF       = "GF"
	DietaryNutFree  = "NUT"
	DietaryLacFree  = "LAC"
	DietarySpecific = "SPE"
)

// DietaryChoices lists every accepted dietary_restrictions value.
// The empty string is accepted for guests who skip the field entirely.
var DietaryChoices = []string{
	DietaryNone, DietaryVeg, DietaryVegan, DietaryGF,
	DietaryNutFree, DietaryLacFree, DietarySpecific, "",
}

// DietaryLabels maps choice codes to their display labels.
var DietaryLabels = map[string]string{
	DietaryNone:     "Not Applicable",
	DietaryVeg:      "Vegetarian",
	DietaryVegan:    "Vegan",
	DietaryGF:       "Gluten-Free",
	DietaryNutFree:  "Nut-Free",
	DietaryLacFree:  "Lactose-Free",
	DietarySpecific: "Specific",
}

type Guest struct {
	ID                          int       `json:"id"`
	Name                        string    `json:"name"`
	Email                       string    `json:"email"`
	Phone                       string    `json:"phone"`
	DietaryRestrictions         string    `json:"dietary_restrictions"`
	SpecificDietaryRestrictions string    `json:"specific_dietary_restrictions,omitempty"`
	CreatedAt                   time.Time `json:"created_at"`
}

// CreateGuestRequest is the request body for registering one guest
type CreateGuestRequest struct {
	Name                        string `json:"name"`
	Email                       string `json:"email"`
	Phone                       string `json:"phone"`
	DietaryRestrictions         string `json:"dietary_restrictions"`
	SpecificDietaryRestrictions string `json:"specific_dietary_restrictions,omitempty"`
}

// GuestSummary is the roster entry returned by GET /api/guests/,
// trimmed to what the pickers need
type GuestSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
