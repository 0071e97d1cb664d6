package teams

import (
	"errors"
	"strings"
)

var (
	// ErrTeamNotFound is returned when no team matches an id or name lookup
	ErrTeamNotFound = errors.New("team not found")
	// ErrDuplicateTeamName is returned when a write would break name uniqueness
	ErrDuplicateTeamName = errors.New("duplicate team name")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field constraint an input violated.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
