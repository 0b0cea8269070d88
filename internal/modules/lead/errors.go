package lead

import "errors"

var (
	ErrLeadNotFound = errors.New("lead not found")
)

// ValidationError carries per-field failures back to the envelope:
// {"phone": ["Номер телефона слишком короткий"]}.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string { return "validation error" }

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) empty() bool { return len(e.Fields) == 0 }
