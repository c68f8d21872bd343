package services

import (
	"context"
	"errors"
	"strings"

	"wedding-site/internal/models"
	"wedding-site/internal/repositories"
)

// ErrUnknownGuest is returned when a submission references a guest id
// that was never registered
var ErrUnknownGuest = errors.New("guest does not exist")

type RSVPService struct {
	RSVPRepo  *repositories.RSVPRepository
	GuestRepo *repositories.GuestRepository
}

func NewRSVPService(rsvpRepo *repositories.RSVPRepository, guestRepo *repositories.GuestRepository) *RSVPService {
	return &RSVPService{
		RSVPRepo:  rsvpRepo,
		GuestRepo: guestRepo,
	}
}

// SubmitRSVP validates and stores one RSVP. Multiple RSVPs per guest are
// allowed; the newest one is what the couple reads.
func (s *RSVPService) SubmitRSVP(ctx context.Context, req *models.CreateRSVPRequest) (*models.RSVP, error) {
	ve := &ValidationError{}

	if req.GuestID <= 0 {
		ve.add("guest_id", msgRequired)
	}

	if !validWeddingChoice(req.WeddingSelection) {
		ve.add("wedding_selection", `"`+req.WeddingSelection+`" `+msgInvalidChoice)
	}

	if !ve.ok() {
		return nil, ve
	}

	if _, err := s.GuestRepo.Get(ctx, req.GuestID); err != nil {
		return nil, ErrUnknownGuest
	}

	rsvp := &models.RSVP{
		GuestID:          req.GuestID,
		WeddingSelection: req.WeddingSelection,
		IsAttending:      req.IsAttending,
		AdditionalNotes:  strings.TrimSpace(req.AdditionalNotes),
	}

	if err := s.RSVPRepo.Create(ctx, rsvp); err != nil {
		return nil, err
	}

	return rsvp, nil
}

func validWeddingChoice(choice string) bool {
	for _, c := range models.WeddingChoices {
		if choice == c {
			return true
		}
	}
	return false
}
