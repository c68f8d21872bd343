package client

import (
	"encoding/json"
	"testing"
)

func TestFieldErrorListUnionDecode(t *testing.T) {
	var fields FieldErrors
	payload := `{
		"email": ["enter a valid email address."],
		"name": "this field is required",
		"phone": ["too short", "invalid characters"]
	}`
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(fields["email"]) != 1 || fields["email"][0] != "enter a valid email address." {
		t.Fatalf("list shape mishandled: %v", fields["email"])
	}
	if len(fields["name"]) != 1 || fields["name"][0] != "this field is required" {
		t.Fatalf("string shape mishandled: %v", fields["name"])
	}
	if len(fields["phone"]) != 2 {
		t.Fatalf("multi-message list mishandled: %v", fields["phone"])
	}
}

func TestFieldErrorListRejectsOtherShapes(t *testing.T) {
	var l FieldErrorList
	if err := json.Unmarshal([]byte(`{"nested": true}`), &l); err == nil {
		t.Fatal("objects are not a valid message shape")
	}
}

func TestDisplay(t *testing.T) {
	fields := FieldErrors{
		"email": {"enter a valid email address."},
		"phone": {"too short", "invalid characters"},
	}

	if got := fields.Display("email"); got != "Enter a valid email address." {
		t.Fatalf("unexpected display: %q", got)
	}
	if got := fields.Display("phone"); got != "Too short; Invalid characters" {
		t.Fatalf("unexpected joined display: %q", got)
	}
	if got := fields.Display("missing"); got != "" {
		t.Fatalf("missing field must display empty, got %q", got)
	}
}
