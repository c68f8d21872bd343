package services

// ValidationError carries per-field messages for a rejected create request.
// Handlers serialize Fields directly as the 400 response body, the same
// shape per field the frontend expects: a list of lower-case messages.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// add appends a message to a field, allocating the map lazily
func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// ok reports whether no field collected a message
func (e *ValidationError) ok() bool {
	return len(e.Fields) == 0
}

// Shared validation messages, kept lower-case; display layers capitalize
const (
	msgRequired       = "this field is required"
	msgInvalidEmail   = "enter a valid email address"
	msgInvalidPhone   = "enter a valid phone number"
	msgInvalidChoice  = "is not a valid choice"
	msgSpecificNeeded = "this field is required when dietary restrictions is specific"
	msgEmailTaken     = "guest with this email already exists"
	msgTooLong        = "ensure this field has no more than 100 characters"
)
