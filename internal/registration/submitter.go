package registration

import (
	"context"
	"errors"

	"wedding-site/internal/client"
	"wedding-site/internal/models"

	"github.com/rs/zerolog"
)

// GuestCreator is the one API call the submitter needs
type GuestCreator interface {
	CreateGuest(ctx context.Context, req *models.CreateGuestRequest) (*models.Guest, error)
}

// EntryStatus records what happened to one draft during a batch run
type EntryStatus struct {
	// Attempted is false for entries skipped after an auth abort
	Attempted bool
	// OK means the backend accepted this entry
	OK bool
	// Guest is the created record when OK
	Guest *models.Guest
}

// Result is the outcome of one batch submission
type Result struct {
	Entries []EntryStatus
	// AuthFailure means the session was rejected mid-batch; the caller
	// must clear stored credentials and send the user back to the gate.
	AuthFailure bool
}

// Complete reports full success: every entry attempted and accepted.
// Only a complete batch may mark the session as registered.
func (r *Result) Complete() bool {
	if r.AuthFailure || len(r.Entries) == 0 {
		return false
	}
	for _, e := range r.Entries {
		if !e.Attempted || !e.OK {
			return false
		}
	}
	return true
}

// Submitter registers a form's drafts as one logical action with
// per-entry error isolation. Entries go out one at a time, in order, so
// error attribution stays deterministic.
type Submitter struct {
	api GuestCreator
	log zerolog.Logger
}

func NewSubmitter(api GuestCreator, logger zerolog.Logger) *Submitter {
	return &Submitter{api: api, log: logger}
}

// Submit sends every draft. A validation failure marks its own entry and
// moves on; the remaining entries are still submitted. An auth failure
// aborts the rest of the batch immediately. Field errors are written
// onto the drafts themselves so the form can show them in place.
func (s *Submitter) Submit(ctx context.Context, form *Form) *Result {
	result := &Result{Entries: make([]EntryStatus, len(form.Drafts))}

	for i := range form.Drafts {
		draft := &form.Drafts[i]
		draft.GeneralError = ""

		guest, err := s.api.CreateGuest(ctx, draft.Request())
		if err == nil {
			result.Entries[i] = EntryStatus{Attempted: true, OK: true, Guest: guest}
			continue
		}

		result.Entries[i].Attempted = true

		var ve *client.ValidationError
		var ae *client.AuthError
		switch {
		case errors.As(err, &ve):
			for field := range ve.Fields {
				draft.Errors[field] = ve.Fields.Display(field)
			}
			s.log.Debug().Int("entry", i).Msg("Guest entry rejected by validation")
			// Keep going: one bad entry must not lose the others

		case errors.As(err, &ae):
			s.log.Warn().Int("entry", i).Int("status", ae.StatusCode).Msg("Session rejected mid-batch")
			draft.GeneralError = "Your session expired. Please enter the password again."
			result.AuthFailure = true
			return result

		default:
			s.log.Warn().Err(err).Int("entry", i).Msg("Guest entry failed")
			draft.GeneralError = "Failed to register. Please try again."
		}
	}

	return result
}
