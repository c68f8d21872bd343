package registration

import (
	"errors"
	"testing"

	"wedding-site/internal/models"
)

func TestNewFormStartsWithOneDraft(t *testing.T) {
	f := NewForm()
	if len(f.Drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(f.Drafts))
	}
	if f.Drafts[0].Dietary != models.DietaryNone {
		t.Fatalf("expected dietary default %q, got %q", models.DietaryNone, f.Drafts[0].Dietary)
	}
}

func TestAppendAndRemove(t *testing.T) {
	f := NewForm()
	f.Append()
	f.Append()

	f.SetField(1, FieldName, "Bob")
	if err := f.Remove(1); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(f.Drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(f.Drafts))
	}
	for i := range f.Drafts {
		if f.Drafts[i].Name == "Bob" {
			t.Fatal("removed draft still present")
		}
	}
}

func TestRemoveLastDraftRefused(t *testing.T) {
	f := NewForm()
	if err := f.Remove(0); !errors.Is(err, ErrLastDraft) {
		t.Fatalf("expected ErrLastDraft, got %v", err)
	}
	if len(f.Drafts) != 1 {
		t.Fatal("the last draft must survive")
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	f := NewForm()
	f.Append()
	if err := f.Remove(5); err == nil {
		t.Fatal("expected an error for an out-of-range index")
	}
}

func TestSetFieldClearsOnlyThatError(t *testing.T) {
	f := NewForm()
	f.Drafts[0].Errors[FieldEmail] = "Enter a valid email address."
	f.Drafts[0].Errors[FieldPhone] = "Enter a valid phone number."

	f.SetField(0, FieldEmail, "alice@example.com")

	if _, ok := f.Drafts[0].Errors[FieldEmail]; ok {
		t.Fatal("editing a field must clear its error")
	}
	if _, ok := f.Drafts[0].Errors[FieldPhone]; !ok {
		t.Fatal("other field errors must stay in place")
	}
	if f.Drafts[0].Email != "alice@example.com" {
		t.Fatalf("field value not set: %q", f.Drafts[0].Email)
	}
}

func TestSetFieldIgnoresBadIndexAndField(t *testing.T) {
	f := NewForm()
	f.SetField(3, FieldName, "x")
	f.SetField(0, "unknown_field", "x")
	if f.Drafts[0].Name != "" {
		t.Fatal("unknown field must not change the draft")
	}
}

func TestHasErrors(t *testing.T) {
	f := NewForm()
	if f.HasErrors() {
		t.Fatal("fresh form must be clean")
	}

	f.Drafts[0].GeneralError = "Failed to register. Please try again."
	if !f.HasErrors() {
		t.Fatal("a general error counts")
	}
}
