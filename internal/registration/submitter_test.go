package registration

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"wedding-site/internal/client"
	"wedding-site/internal/models"

	"github.com/rs/zerolog"
)

// scriptedCreator returns one scripted outcome per call, in order
type scriptedCreator struct {
	outcomes []error
	calls    int
}

func (c *scriptedCreator) CreateGuest(ctx context.Context, req *models.CreateGuestRequest) (*models.Guest, error) {
	err := c.outcomes[c.calls]
	c.calls++
	if err != nil {
		return nil, err
	}
	return &models.Guest{ID: c.calls, Name: req.Name}, nil
}

func buildForm(names ...string) *Form {
	f := NewForm()
	for i := 1; i < len(names); i++ {
		f.Append()
	}
	for i, name := range names {
		f.SetField(i, FieldName, name)
	}
	return f
}

func newSubmitter(api GuestCreator) *Submitter {
	return NewSubmitter(api, zerolog.Nop())
}

func TestSubmitAllSucceed(t *testing.T) {
	api := &scriptedCreator{outcomes: []error{nil, nil}}
	form := buildForm("Alice", "Bob")

	result := newSubmitter(api).Submit(context.Background(), form)

	if !result.Complete() {
		t.Fatal("expected a complete batch")
	}
	if api.calls != 2 {
		t.Fatalf("expected 2 submissions, got %d", api.calls)
	}
	if result.Entries[0].Guest.ID == 0 {
		t.Fatal("created guest record missing")
	}
}

func TestSubmitContinuesPastValidationFailure(t *testing.T) {
	api := &scriptedCreator{outcomes: []error{
		&client.ValidationError{Fields: client.FieldErrors{
			"email": {"enter a valid email address"},
		}},
		nil,
	}}
	form := buildForm("Alice", "Bob")

	result := newSubmitter(api).Submit(context.Background(), form)

	if result.Complete() {
		t.Fatal("a batch with a rejected entry is not complete")
	}
	if api.calls != 2 {
		t.Fatalf("the second entry must still be submitted, calls=%d", api.calls)
	}
	if !result.Entries[1].OK {
		t.Fatal("the valid entry must succeed")
	}

	got := form.Drafts[0].Errors["email"]
	if got != "Enter a valid email address" {
		t.Fatalf("expected capitalized display message, got %q", got)
	}
}

func TestSubmitAbortsOnAuthFailure(t *testing.T) {
	api := &scriptedCreator{outcomes: []error{
		nil,
		&client.AuthError{StatusCode: http.StatusForbidden},
		nil,
	}}
	form := buildForm("Alice", "Bob", "Cara")

	result := newSubmitter(api).Submit(context.Background(), form)

	if !result.AuthFailure {
		t.Fatal("expected the auth failure flag")
	}
	if api.calls != 2 {
		t.Fatalf("entries after the auth failure must be skipped, calls=%d", api.calls)
	}
	if result.Entries[2].Attempted {
		t.Fatal("the third entry must be marked unattempted")
	}
	if result.Complete() {
		t.Fatal("an aborted batch is never complete")
	}
	if form.Drafts[1].GeneralError == "" {
		t.Fatal("the failing entry must carry the session-expired message")
	}
}

func TestSubmitGenericFailureContinues(t *testing.T) {
	api := &scriptedCreator{outcomes: []error{
		&client.TransportError{Op: "create guest", Err: errors.New("connection refused")},
		nil,
	}}
	form := buildForm("Alice", "Bob")

	result := newSubmitter(api).Submit(context.Background(), form)

	if result.AuthFailure {
		t.Fatal("a transport error is not an auth failure")
	}
	if api.calls != 2 {
		t.Fatal("the batch must continue past a transport error")
	}
	if form.Drafts[0].GeneralError != "Failed to register. Please try again." {
		t.Fatalf("unexpected general error: %q", form.Drafts[0].GeneralError)
	}
	if result.Complete() {
		t.Fatal("a failed entry blocks completion")
	}
}
