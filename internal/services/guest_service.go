package services

import (
	"context"
	"regexp"
	"strings"

	"wedding-site/internal/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// E.164-ish: optional +, 7 to 15 digits, spaces and dashes tolerated
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,18}[0-9]$`)
)

// GuestStore is the repository surface guest registration needs.
// Satisfied by repositories.GuestRepository.
type GuestStore interface {
	Create(ctx context.Context, guest *models.Guest) error
	List(ctx context.Context) ([]models.GuestSummary, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type GuestService struct {
	GuestRepo GuestStore
}

func NewGuestService(guestRepo GuestStore) *GuestService {
	return &GuestService{GuestRepo: guestRepo}
}

// RegisterGuest validates and stores one guest. Field problems come back
// as a *ValidationError so the handler can answer with a 400 field map.
func (s *GuestService) RegisterGuest(ctx context.Context, req *models.CreateGuestRequest) (*models.Guest, error) {
	ve := &ValidationError{}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	if name == "" {
		ve.add("name", msgRequired)
	}

	if email == "" {
		ve.add("email", msgRequired)
	} else if !emailPattern.MatchString(email) {
		ve.add("email", msgInvalidEmail)
	}

	if phone == "" {
		ve.add("phone", msgRequired)
	} else if !phonePattern.MatchString(phone) {
		ve.add("phone", msgInvalidPhone)
	}

	if !validDietaryChoice(req.DietaryRestrictions) {
		ve.add("dietary_restrictions", `"`+req.DietaryRestrictions+`" `+msgInvalidChoice)
	}

	// Soft invariant from the form: SPE needs the free-text detail
	if req.DietaryRestrictions == models.DietarySpecific &&
		strings.TrimSpace(req.SpecificDietaryRestrictions) == "" {
		ve.add("specific_dietary_restrictions", msgSpecificNeeded)
	}

	if !ve.ok() {
		return nil, ve
	}

	// Mirrors the unique email index so duplicates come back as a field
	// message instead of a constraint error
	taken, err := s.GuestRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		ve.add("email", msgEmailTaken)
		return nil, ve
	}

	guest := &models.Guest{
		Name:                        name,
		Email:                       email,
		Phone:                       phone,
		DietaryRestrictions:         req.DietaryRestrictions,
		SpecificDietaryRestrictions: strings.TrimSpace(req.SpecificDietaryRestrictions),
	}

	if err := s.GuestRepo.Create(ctx, guest); err != nil {
		return nil, err
	}

	return guest, nil
}

// ListGuests returns the roster used by the name pickers
func (s *GuestService) ListGuests(ctx context.Context) ([]models.GuestSummary, error) {
	return s.GuestRepo.List(ctx)
}

func validDietaryChoice(choice string) bool {
	for _, c := range models.DietaryChoices {
		if choice == c {
			return true
		}
	}
	return false
}
