package registration

import (
	"errors"

	"wedding-site/internal/models"
)

// Form field names, matching the wire names so server-side field errors
// land on the right input
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldDietary  = "dietary_restrictions"
	FieldSpecific = "specific_dietary_restrictions"
)

// ErrLastDraft is returned when removing would leave the form empty.
// A registration always carries at least one guest.
var ErrLastDraft = errors.New("cannot remove the last guest")

// Draft is one not-yet-submitted guest within the batch, together with
// its display errors. Errors are field-scoped: editing a field clears
// only that field's message.
type Draft struct {
	Name     string
	Email    string
	Phone    string
	Dietary  string
	Specific string

	// Errors maps field name to a ready-to-display message
	Errors map[string]string
	// GeneralError covers non-field failures for this entry
	GeneralError string
}

func newDraft() Draft {
	return Draft{
		Dietary: models.DietaryNone,
		Errors:  map[string]string{},
	}
}

// Request converts the draft into the create-guest payload
func (d *Draft) Request() *models.CreateGuestRequest {
	return &models.CreateGuestRequest{
		Name:                        d.Name,
		Email:                       d.Email,
		Phone:                       d.Phone,
		DietaryRestrictions:         d.Dietary,
		SpecificDietaryRestrictions: d.Specific,
	}
}

// Form is the editable, ordered list of guest drafts
type Form struct {
	Drafts []Draft
}

// NewForm starts with a single empty draft
func NewForm() *Form {
	return &Form{Drafts: []Draft{newDraft()}}
}

// Append adds another empty draft; always allowed
func (f *Form) Append() {
	f.Drafts = append(f.Drafts, newDraft())
}

// Remove drops the draft at index i. Refused when only one draft
// remains: the list can never shrink to zero.
func (f *Form) Remove(i int) error {
	if len(f.Drafts) <= 1 {
		return ErrLastDraft
	}
	if i < 0 || i >= len(f.Drafts) {
		return errors.New("draft index out of range")
	}
	f.Drafts = append(f.Drafts[:i], f.Drafts[i+1:]...)
	return nil
}

// SetField updates one field of one draft and clears that field's prior
// error, leaving every other message in place
func (f *Form) SetField(i int, field, value string) {
	if i < 0 || i >= len(f.Drafts) {
		return
	}
	d := &f.Drafts[i]

	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldDietary:
		d.Dietary = value
	case FieldSpecific:
		d.Specific = value
	default:
		return
	}

	delete(d.Errors, field)
}

// HasErrors reports whether any draft still shows a message
func (f *Form) HasErrors() bool {
	for i := range f.Drafts {
		if len(f.Drafts[i].Errors) > 0 || f.Drafts[i].GeneralError != "" {
			return true
		}
	}
	return false
}
