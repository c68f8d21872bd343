package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrNotBootstrapped is returned by every mutating call attempted before
// InitializeSecurity has succeeded. There is no retry loop; the caller
// surfaces "security token unavailable; reload" and stops.
var ErrNotBootstrapped = errors.New("security token unavailable; reload")

// FieldErrorList tolerates both error payload shapes the backend family
// produces per field: a bare string or a list of strings.
type FieldErrorList []string

func (l *FieldErrorList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = FieldErrorList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = FieldErrorList(many)
	return nil
}

// FieldErrors maps field names to their validation messages
type FieldErrors map[string]FieldErrorList

// Display normalizes a field's messages into one display string:
// first letter capitalized, messages joined with "; ". Empty when the
// field has no errors.
func (f FieldErrors) Display(field string) string {
	msgs := f[field]
	if len(msgs) == 0 {
		return ""
	}

	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = capitalizeFirst(m)
	}
	return strings.Join(out, "; ")
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ValidationError is a 400-class response with per-field messages.
// Recoverable: the user fixes the fields and resubmits.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// AuthError is a 401/403 response. Fatal to the session: the stored
// token is stale and the user must pass the password gate again.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected (status %d)", e.StatusCode)
}

// TransportError covers network failures, 5xx responses and bodies that
// would not decode. Recoverable by retrying the whole operation.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
