package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wedding-site/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError answers service failures. Validation errors become a 400
// whose body is the bare field→messages map, matching what the
// registration form parses. Unknown guest references are a 400 too.
func writeError(w http.ResponseWriter, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, ve.Fields)
		return
	}

	if errors.Is(err, services.ErrUnknownGuest) {
		writeJSON(w, http.StatusBadRequest, map[string][]string{
			"guest_id": {"guest does not exist"},
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"detail": "internal server error",
	})
}
